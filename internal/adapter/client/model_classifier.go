package client

import (
	"context"
	"fmt"

	"github.com/mrsteppenwolf627/sentiment-api-mlops/internal/domain/service"
)

// ModelClassifier adapts InferenceClient to the Classifier interface.
type ModelClassifier struct {
	client  *InferenceClient
	version string
}

// NewModelClassifier verifies the model server has its model loaded and
// captures the reported model version. Construction fails when the server
// is unreachable or the model is not loaded, so the caller can refuse to
// serve traffic.
func NewModelClassifier(ctx context.Context, client *InferenceClient) (service.Classifier, error) {
	health, err := client.Health(ctx)
	if err != nil {
		return nil, fmt.Errorf("model server health check failed: %w", err)
	}
	if !health.ModelLoaded {
		return nil, fmt.Errorf("model server reports model not loaded (status %q)", health.Status)
	}

	return &ModelClassifier{
		client:  client,
		version: health.ModelVersion,
	}, nil
}

// Classify classifies a single text
func (c *ModelClassifier) Classify(ctx context.Context, text string) (*service.ClassificationResult, error) {
	resp, err := c.client.Predict(ctx, text)
	if err != nil {
		return nil, err
	}

	return &service.ClassificationResult{
		Label: resp.Label,
		Score: resp.Score,
	}, nil
}

// ModelVersion returns the version reported by the model server at construction
func (c *ModelClassifier) ModelVersion() string {
	return c.version
}
