package usecase

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mrsteppenwolf627/sentiment-api-mlops/internal/domain/entity"
	"github.com/mrsteppenwolf627/sentiment-api-mlops/internal/domain/service"
)

// AnalyzeResult represents the outcome of a sentiment analysis call
type AnalyzeResult struct {
	Sentiment        entity.Sentiment
	Confidence       float64
	ProcessingTimeMs float64
}

// Analyzer wraps the classification capability behind a stable, typed API.
// It is safe for concurrent use: after construction it holds no mutable state.
type Analyzer struct {
	classifier service.Classifier
	logger     *zap.Logger
}

// NewAnalyzer creates a new Analyzer
func NewAnalyzer(classifier service.Classifier, logger *zap.Logger) *Analyzer {
	return &Analyzer{
		classifier: classifier,
		logger:     logger,
	}
}

// ModelVersion identifies the underlying model
func (a *Analyzer) ModelVersion() string {
	return a.classifier.ModelVersion()
}

// Analyze classifies text and maps the raw model label onto the canonical
// sentiment vocabulary. The reported processing time covers the whole call,
// truncation included. On failure the elapsed time is logged and the error
// returned as-is; there is no retry and no partial result.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*AnalyzeResult, error) {
	start := time.Now()

	result, err := a.classifier.Classify(ctx, text)
	elapsed := elapsedMs(start)
	if err != nil {
		a.logger.Error("analysis failed",
			zap.Error(err),
			zap.Float64("processing_time_ms", elapsed),
			zap.Int("text_length", len(text)),
		)
		return nil, err
	}

	sentiment := entity.SentimentFromLabel(result.Label)
	confidence := clamp01(result.Score)

	a.logger.Debug("analysis complete",
		zap.String("sentiment", sentiment.String()),
		zap.Float64("confidence", confidence),
		zap.Float64("processing_time_ms", elapsed),
	)

	return &AnalyzeResult{
		Sentiment:        sentiment,
		Confidence:       confidence,
		ProcessingTimeMs: elapsed,
	}, nil
}

func elapsedMs(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// BuildFunc constructs the Analyzer. It runs at most once per Provider.
type BuildFunc func(ctx context.Context) (*Analyzer, error)

// Provider hands out the process-wide Analyzer, constructing it exactly once
// on first use. Concurrent first callers block until the single construction
// completes; afterwards Get returns the cached instance without locking cost.
// A construction error is cached too, so the owning process can treat it as
// fatal at startup.
type Provider struct {
	build    BuildFunc
	once     sync.Once
	analyzer *Analyzer
	err      error
}

// NewProvider creates a Provider around the given build function
func NewProvider(build BuildFunc) *Provider {
	return &Provider{build: build}
}

// Get returns the cached Analyzer, constructing it on first call
func (p *Provider) Get(ctx context.Context) (*Analyzer, error) {
	p.once.Do(func() {
		p.analyzer, p.err = p.build(ctx)
	})
	return p.analyzer, p.err
}
