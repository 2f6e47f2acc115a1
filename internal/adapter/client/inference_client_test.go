package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferenceClient_Predict(t *testing.T) {
	t.Run("successful prediction", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/predict", r.URL.Path)
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req PredictRequest
			err := json.NewDecoder(r.Body).Decode(&req)
			require.NoError(t, err)
			assert.Equal(t, "I love this product", req.Text)
			assert.True(t, req.Truncate)
			assert.Equal(t, 512, req.MaxLength)

			resp := PredictResponse{
				Label:        "POSITIVE",
				Score:        0.9987,
				ModelVersion: "distilbert-base-uncased-finetuned-sst-2-english",
			}
			w.Header().Set("Content-Type", "application/json")
			err = json.NewEncoder(w).Encode(resp)
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewInferenceClient(server.URL, 512, 5*time.Second)
		result, err := client.Predict(context.Background(), "I love this product")

		require.NoError(t, err)
		assert.Equal(t, "POSITIVE", result.Label)
		assert.Equal(t, 0.9987, result.Score)
		assert.Equal(t, "distilbert-base-uncased-finetuned-sst-2-english", result.ModelVersion)
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, err := w.Write([]byte("inference error"))
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewInferenceClient(server.URL, 512, 5*time.Second)
		_, err := client.Predict(context.Background(), "text")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("connection error", func(t *testing.T) {
		client := NewInferenceClient("http://localhost:99999", 512, 1*time.Second)
		_, err := client.Predict(context.Background(), "text")

		assert.Error(t, err)
	})

	t.Run("context cancellation aborts request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(500 * time.Millisecond)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewInferenceClient(server.URL, 512, 5*time.Second)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := client.Predict(ctx, "text")
		assert.Error(t, err)
	})
}

func TestInferenceClient_Health(t *testing.T) {
	t.Run("healthy server", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)
			assert.Equal(t, "GET", r.Method)

			resp := HealthResponse{
				Status:       "healthy",
				ModelLoaded:  true,
				ModelVersion: "distilbert-base-uncased-finetuned-sst-2-english",
			}
			w.Header().Set("Content-Type", "application/json")
			err := json.NewEncoder(w).Encode(resp)
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewInferenceClient(server.URL, 512, 5*time.Second)
		result, err := client.Health(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "healthy", result.Status)
		assert.True(t, result.ModelLoaded)
	})

	t.Run("unavailable server", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewInferenceClient(server.URL, 512, 5*time.Second)
		_, err := client.Health(context.Background())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "503")
	})
}
