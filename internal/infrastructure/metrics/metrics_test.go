package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.RequestsTotal.WithLabelValues("/analyze", StatusSuccess).Inc()
	m.RequestsTotal.WithLabelValues("/analyze", StatusSuccess).Inc()
	m.RequestsTotal.WithLabelValues("/health", StatusError).Inc()
	m.PredictionsTotal.WithLabelValues("positive").Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/analyze", StatusSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/health", StatusError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PredictionsTotal.WithLabelValues("positive")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.PredictionsTotal.WithLabelValues("negative")))
}

func TestMetrics_IndependentInstances(t *testing.T) {
	a := New()
	b := New()

	a.RequestsTotal.WithLabelValues("/analyze", StatusSuccess).Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.RequestsTotal.WithLabelValues("/analyze", StatusSuccess)))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.RequestsTotal.WithLabelValues("/analyze", StatusSuccess)))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.RequestsTotal.WithLabelValues("/analyze", StatusSuccess).Inc()
	m.RequestDuration.WithLabelValues("/analyze").Observe(0.05)

	req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Body.String(), "sentiment_api_requests_total")
	assert.Contains(t, w.Body.String(), "sentiment_api_request_duration_seconds")
}
