package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPredictor(baseURL string) Predictor {
	return NewHTTPPredictor(PredictorConfig{
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
	})
}

func TestPredictCrop_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/predictCrop", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Len(t, payload["features"], 3)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"crop":"wheat"}`))
	}))
	defer srv.Close()

	p := newTestPredictor(srv.URL)

	result, err := p.PredictCrop(context.Background(), []any{1, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, map[string]any{"crop": "wheat"}, result.Body)
}

func TestPredictFertilizer_ForwardsDownstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/predictFertilizer", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte(`{"fertilizer":"urea"}`))
	}))
	defer srv.Close()

	p := newTestPredictor(srv.URL)

	result, err := p.PredictFertilizer(context.Background(), []any{"loamy", "maize"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusAccepted, result.StatusCode)
}

func TestPredictDisease_SendsBase64Payload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/predict-disease", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "aGVsbG8=", payload["image"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"disease":"rust"}`))
	}))
	defer srv.Close()

	p := newTestPredictor(srv.URL)

	result, err := p.PredictDisease(context.Background(), "aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
}

func TestPost_DownstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := newTestPredictor(srv.URL)

	_, err := p.PredictCrop(context.Background(), []any{1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPredictorUnavailable))
}

func TestPost_ConnectionRefused(t *testing.T) {
	// a closed server yields a transport-level failure
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	p := newTestPredictor(srv.URL)

	_, err := p.PredictCrop(context.Background(), []any{1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPredictorUnavailable))
}

func TestPost_MalformedResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	p := newTestPredictor(srv.URL)

	_, err := p.PredictCrop(context.Background(), []any{1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPredictorUnavailable))
}

func TestNewHTTPPredictor_Retries(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			http.Error(w, "temporarily down", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"crop":"rice"}`))
	}))
	defer srv.Close()

	p := NewHTTPPredictor(PredictorConfig{
		BaseURL:          srv.URL,
		Timeout:          2 * time.Second,
		RetryCount:       3,
		RetryWaitTime:    time.Millisecond,
		RetryMaxWaitTime: 5 * time.Millisecond,
	})

	result, err := p.PredictCrop(context.Background(), []any{1, 2})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, 3, attempts)
}
