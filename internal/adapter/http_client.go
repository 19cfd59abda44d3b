package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/agrohive/agrigate/models"
)

// ErrPredictorUnavailable signals that the downstream call failed at the
// transport level or returned a non-2xx status. Callers translate it to a
// generic user-facing failure; the raw transport detail stays in the
// wrapped error for logging only.
var ErrPredictorUnavailable = errors.New("prediction service unavailable")

// PredictorConfig carries the connection settings for the downstream
// prediction service.
type PredictorConfig struct {
	BaseURL          string
	Timeout          time.Duration
	RetryCount       int
	RetryWaitTime    time.Duration
	RetryMaxWaitTime time.Duration
}

// httpPredictor is the resty-backed implementation of [Predictor].
type httpPredictor struct {
	client *resty.Client
}

// NewHTTPPredictor constructs a [Predictor] bound to cfg.BaseURL. Every
// call carries the configured timeout; failed calls are retried up to
// cfg.RetryCount times with exponential backoff between RetryWaitTime
// and RetryMaxWaitTime.
func NewHTTPPredictor(cfg PredictorConfig) Predictor {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:5000"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			// retry transport failures and 5xx; 4xx are final
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})

	if cfg.RetryWaitTime > 0 {
		cli.SetRetryWaitTime(cfg.RetryWaitTime)
	}
	if cfg.RetryMaxWaitTime > 0 {
		cli.SetRetryMaxWaitTime(cfg.RetryMaxWaitTime)
	}

	return &httpPredictor{client: cli}
}

func (p *httpPredictor) PredictCrop(ctx context.Context, features []any) (models.PredictionResult, error) {
	return p.post(ctx, "/predictCrop", map[string]any{"features": features})
}

func (p *httpPredictor) PredictFertilizer(ctx context.Context, features []any) (models.PredictionResult, error) {
	return p.post(ctx, "/predictFertilizer", map[string]any{"features": features})
}

func (p *httpPredictor) PredictDisease(ctx context.Context, imageBase64 string) (models.PredictionResult, error) {
	return p.post(ctx, "/predict-disease", map[string]any{"image": imageBase64})
}

// post relays body as JSON and decodes the downstream response. The 2xx
// status code is captured verbatim so the transport layer can forward it
// unchanged.
func (p *httpPredictor) post(ctx context.Context, path string, body any) (models.PredictionResult, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return models.PredictionResult{}, fmt.Errorf("%w: %w", ErrPredictorUnavailable, err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return models.PredictionResult{}, fmt.Errorf("%w: http %d", ErrPredictorUnavailable, resp.StatusCode())
	}

	var decoded any
	if err := json.Unmarshal(resp.Body(), &decoded); err != nil {
		return models.PredictionResult{}, fmt.Errorf("%w: decode response: %w", ErrPredictorUnavailable, err)
	}

	return models.PredictionResult{
		StatusCode: resp.StatusCode(),
		Body:       decoded,
	}, nil
}
