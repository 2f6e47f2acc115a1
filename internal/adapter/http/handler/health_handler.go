package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrsteppenwolf627/sentiment-api-mlops/internal/infrastructure/config"
	"github.com/mrsteppenwolf627/sentiment-api-mlops/internal/infrastructure/metrics"
	"github.com/mrsteppenwolf627/sentiment-api-mlops/internal/usecase"
)

// HealthHandler handles the health check and root info endpoints
type HealthHandler struct {
	provider *usecase.Provider
	cfg      *config.Config
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(provider *usecase.Provider, cfg *config.Config, m *metrics.Metrics, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		provider: provider,
		cfg:      cfg,
		metrics:  m,
		logger:   logger,
	}
}

// Health handles GET /health.
// The analyzer is constructed on demand, so a cold process answers its first
// health probe only after the model is confirmed loaded.
func (h *HealthHandler) Health(c *gin.Context) {
	analyzer, err := h.provider.Get(c.Request.Context())
	if err != nil {
		h.metrics.RequestsTotal.WithLabelValues("/health", metrics.StatusError).Inc()
		h.logger.Error("health check failed", zap.Error(err))
		respondDetail(c, http.StatusServiceUnavailable, "Service unhealthy")
		return
	}

	h.metrics.RequestsTotal.WithLabelValues("/health", metrics.StatusSuccess).Inc()

	c.JSON(http.StatusOK, HealthResponse{
		Status:      "healthy",
		Version:     h.cfg.App.Version,
		ModelLoaded: analyzer != nil,
	})
}

// Info handles GET /
func (h *HealthHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, InfoResponse{
		Message: h.cfg.App.Name,
		Version: h.cfg.App.Version,
		Docs:    "https://github.com/mrsteppenwolf627/sentiment-api-mlops#readme",
		Health:  "/health",
		Metrics: "/metrics",
	})
}
