package adapter

import (
	"context"

	"github.com/agrohive/agrigate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/predictor_mock.go -package=mock

// Predictor is the client-side contract of the downstream ML prediction
// service. The downstream is a black box: implementations relay the
// payload, bound the call with a timeout and bounded retries, and hand
// back the decoded body together with the verbatim HTTP status.
type Predictor interface {
	// PredictCrop relays a feature vector to POST /predictCrop.
	PredictCrop(ctx context.Context, features []any) (models.PredictionResult, error)

	// PredictFertilizer relays a feature vector to POST /predictFertilizer.
	PredictFertilizer(ctx context.Context, features []any) (models.PredictionResult, error)

	// PredictDisease relays a base64-encoded image to POST /predict-disease.
	PredictDisease(ctx context.Context, imageBase64 string) (models.PredictionResult, error)
}
