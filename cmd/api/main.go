package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrsteppenwolf627/sentiment-api-mlops/internal/adapter/client"
	"github.com/mrsteppenwolf627/sentiment-api-mlops/internal/adapter/http/router"
	"github.com/mrsteppenwolf627/sentiment-api-mlops/internal/infrastructure/config"
	"github.com/mrsteppenwolf627/sentiment-api-mlops/internal/infrastructure/logger"
	"github.com/mrsteppenwolf627/sentiment-api-mlops/internal/infrastructure/metrics"
	"github.com/mrsteppenwolf627/sentiment-api-mlops/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	log.Info("application starting",
		zap.String("version", cfg.App.Version),
		zap.String("model", cfg.Model.Name),
	)

	// Metrics
	m := metrics.New()

	// Analyzer provider. The build runs exactly once per process.
	inferenceClient := client.NewInferenceClient(cfg.Model.ServerURL, cfg.Model.MaxLength, cfg.Model.Timeout)
	provider := usecase.NewProvider(func(ctx context.Context) (*usecase.Analyzer, error) {
		classifier, err := client.NewModelClassifier(ctx, inferenceClient)
		if err != nil {
			return nil, err
		}
		return usecase.NewAnalyzer(classifier, log), nil
	})

	// Fail fast: the model must be loaded before we accept any traffic.
	startupCtx, cancel := context.WithTimeout(context.Background(), cfg.Model.Timeout)
	analyzer, err := provider.Get(startupCtx)
	cancel()
	if err != nil {
		log.Error("application startup failed", zap.Error(err))
		return fmt.Errorf("failed to initialize analyzer: %w", err)
	}
	log.Info("application ready",
		zap.Bool("model_loaded", true),
		zap.String("model_version", analyzer.ModelVersion()),
	)

	// Setup router
	r := router.Setup(provider, cfg, m, log)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("starting server", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
	return nil
}
