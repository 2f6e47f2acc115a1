package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/mrsteppenwolf627/sentiment-api-mlops/internal/infrastructure/config"
	"github.com/mrsteppenwolf627/sentiment-api-mlops/internal/infrastructure/metrics"
	"github.com/mrsteppenwolf627/sentiment-api-mlops/internal/usecase"
)

// AnalyzeHandler handles sentiment analysis requests
type AnalyzeHandler struct {
	provider *usecase.Provider
	cfg      *config.Config
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(provider *usecase.Provider, cfg *config.Config, m *metrics.Metrics, logger *zap.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		provider: provider,
		cfg:      cfg,
		metrics:  m,
		logger:   logger,
	}
}

// Analyze handles POST /analyze
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondDetail(c, http.StatusUnprocessableEntity, "invalid request body: "+err.Error())
		return
	}
	if err := ValidateAnalyzeRequest(&req); err != nil {
		respondDetail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	timer := prometheus.NewTimer(h.metrics.RequestDuration.WithLabelValues("/analyze"))
	defer timer.ObserveDuration()

	analyzer, err := h.provider.Get(c.Request.Context())
	if err != nil {
		h.fail(c, err, len(req.Text))
		return
	}

	result, err := analyzer.Analyze(c.Request.Context(), req.Text)
	if err != nil {
		h.fail(c, err, len(req.Text))
		return
	}

	resp := AnalyzeResponse{
		Text:             req.Text,
		Sentiment:        result.Sentiment.String(),
		Confidence:       result.Confidence,
		ProcessingTimeMs: result.ProcessingTimeMs,
		ModelVersion:     analyzer.ModelVersion(),
		Timestamp:        time.Now().UTC(),
		CostEstimateUSD:  h.cfg.Model.CostPerInferenceUSD,
	}

	h.logger.Info("sentiment analyzed",
		zap.String("sentiment", resp.Sentiment),
		zap.Float64("confidence", resp.Confidence),
		zap.Float64("processing_time_ms", resp.ProcessingTimeMs),
		zap.Int("text_length", len(req.Text)),
		zap.Float64("cost_usd", resp.CostEstimateUSD),
		zap.String("request_id", c.GetString("request_id")),
	)

	h.metrics.RequestsTotal.WithLabelValues("/analyze", metrics.StatusSuccess).Inc()
	h.metrics.PredictionsTotal.WithLabelValues(resp.Sentiment).Inc()

	c.JSON(http.StatusOK, resp)
}

func (h *AnalyzeHandler) fail(c *gin.Context, err error, textLength int) {
	h.metrics.RequestsTotal.WithLabelValues("/analyze", metrics.StatusError).Inc()

	h.logger.Error("analysis request failed",
		zap.Error(err),
		zap.Int("text_length", textLength),
		zap.String("request_id", c.GetString("request_id")),
	)

	respondDetail(c, http.StatusInternalServerError, "Analysis failed: "+err.Error())
}
