package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrsteppenwolf627/sentiment-api-mlops/internal/adapter/http/handler"
	"github.com/mrsteppenwolf627/sentiment-api-mlops/internal/adapter/http/middleware"
	"github.com/mrsteppenwolf627/sentiment-api-mlops/internal/infrastructure/config"
	"github.com/mrsteppenwolf627/sentiment-api-mlops/internal/infrastructure/metrics"
	"github.com/mrsteppenwolf627/sentiment-api-mlops/internal/usecase"
)

// Setup creates and configures the Gin router
func Setup(provider *usecase.Provider, cfg *config.Config, m *metrics.Metrics, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	// Handlers
	healthHandler := handler.NewHealthHandler(provider, cfg, m, logger)
	analyzeHandler := handler.NewAnalyzeHandler(provider, cfg, m, logger)

	// Routes
	router.GET("/", healthHandler.Info)
	router.GET("/health", healthHandler.Health)
	router.POST("/analyze", analyzeHandler.Analyze)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(m.Handler()))

	return router
}
