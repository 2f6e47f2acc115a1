package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metric label values for request outcomes.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Metrics holds the Prometheus instruments exposed on /metrics.
// All instruments live on a private registry so tests can create
// independent instances without collisions.
type Metrics struct {
	registry *prometheus.Registry

	// RequestsTotal counts requests by endpoint and outcome.
	RequestsTotal *prometheus.CounterVec

	// PredictionsTotal counts predictions by canonical sentiment.
	PredictionsTotal *prometheus.CounterVec

	// RequestDuration observes request latency in seconds by endpoint.
	RequestDuration *prometheus.HistogramVec
}

// New creates the metric instruments on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sentiment_api_requests_total",
				Help: "Total number of requests received",
			},
			[]string{"endpoint", "status"},
		),
		PredictionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sentiment_api_predictions_total",
				Help: "Total number of predictions by sentiment",
			},
			[]string{"sentiment"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sentiment_api_request_duration_seconds",
				Help:    "Request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
	}
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
