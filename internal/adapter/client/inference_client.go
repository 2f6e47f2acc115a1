package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// PredictRequest represents a request to the model server
type PredictRequest struct {
	Text      string `json:"text"`
	Truncate  bool   `json:"truncate"`
	MaxLength int    `json:"max_length,omitempty"`
}

// PredictResponse represents the model server's prediction
type PredictResponse struct {
	Label        string  `json:"label"`
	Score        float64 `json:"score"`
	ModelVersion string  `json:"model_version"`
}

// HealthResponse represents the model server's health check response
type HealthResponse struct {
	Status       string `json:"status"`
	ModelLoaded  bool   `json:"model_loaded"`
	ModelVersion string `json:"model_version"`
}

// InferenceClient is an HTTP client for the sentiment model server.
// Truncation is requested on every prediction so over-long inputs are cut
// to the token ceiling server-side instead of erroring.
type InferenceClient struct {
	baseURL    string
	maxLength  int
	httpClient *http.Client
}

// NewInferenceClient creates a new model server client
func NewInferenceClient(baseURL string, maxLength int, timeout time.Duration) *InferenceClient {
	return &InferenceClient{
		baseURL:   baseURL,
		maxLength: maxLength,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Predict sends a single text for classification
func (c *InferenceClient) Predict(ctx context.Context, text string) (*PredictResponse, error) {
	reqBody := PredictRequest{
		Text:      text,
		Truncate:  true,
		MaxLength: c.maxLength,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("model server returned status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("model server returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var result PredictResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}

// Health checks the model server health
func (c *InferenceClient) Health(ctx context.Context) (*HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model server returned status %d", resp.StatusCode)
	}

	var result HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}
