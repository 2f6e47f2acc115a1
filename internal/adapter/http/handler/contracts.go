package handler

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
)

// Text length bounds accepted by /analyze, in characters.
const (
	MinTextLength = 1
	MaxTextLength = 5000
)

// AnalyzeRequest represents the body of POST /analyze
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// ValidateAnalyzeRequest checks the request against the contract.
// It runs before the analyzer is ever invoked, so invalid input
// never reaches the model.
func ValidateAnalyzeRequest(req *AnalyzeRequest) error {
	length := utf8.RuneCountInString(req.Text)
	if length < MinTextLength {
		return errors.New("text must not be empty")
	}
	if length > MaxTextLength {
		return fmt.Errorf("text must be at most %d characters", MaxTextLength)
	}
	return nil
}

// AnalyzeResponse represents the analysis result returned to the caller
type AnalyzeResponse struct {
	Text             string    `json:"text"`
	Sentiment        string    `json:"sentiment"`
	Confidence       float64   `json:"confidence"`
	ProcessingTimeMs float64   `json:"processing_time_ms"`
	ModelVersion     string    `json:"model_version"`
	Timestamp        time.Time `json:"timestamp"`
	CostEstimateUSD  float64   `json:"cost_estimate_usd"`
}

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	ModelLoaded bool   `json:"model_loaded"`
}

// InfoResponse represents the root endpoint payload
type InfoResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
	Health  string `json:"health"`
	Metrics string `json:"metrics"`
}

// ErrorResponse carries a short, non-leaking error description
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func respondDetail(c *gin.Context, status int, detail string) {
	c.JSON(status, ErrorResponse{Detail: detail})
}
