package service

import "context"

// ClassificationResult is the raw output of the classification capability.
type ClassificationResult struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classifier defines the interface to the pretrained classification capability.
type Classifier interface {
	// Classify runs inference on a single text.
	Classify(ctx context.Context, text string) (*ClassificationResult, error)

	// ModelVersion identifies the underlying model.
	ModelVersion() string
}
