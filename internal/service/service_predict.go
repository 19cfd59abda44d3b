package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/agrohive/agrigate/internal/adapter"
	"github.com/agrohive/agrigate/internal/logger"
	"github.com/agrohive/agrigate/models"
)

// Client-facing validation messages for prediction payloads.
const (
	msgFeaturesRequired = "The features field is required."
	msgImageRequired    = "The image field is required."
	msgImageInvalidType = "The image field must be a file of type: jpeg, png, jpg, gif."
	msgImageTooLarge    = "The image field must not be greater than 2048 kilobytes."
)

// maxImageBytes caps disease images at 2048 KB.
const maxImageBytes = 2048 * 1024

// allowedImageMIMEs lists the accepted upload content types.
var allowedImageMIMEs = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/gif":  {},
}

// predictionService validates prediction inputs and relays them to the
// downstream predictor. Downstream failures of any kind surface as
// ErrPredictionFailed; the transport detail is logged but never shown
// to the client.
type predictionService struct {
	predictor adapter.Predictor
	logger    *logger.Logger
}

// NewPredictionService constructs a PredictionService on top of the
// given downstream adapter.
func NewPredictionService(predictor adapter.Predictor, logger *logger.Logger) PredictionService {
	return &predictionService{
		predictor: predictor,
		logger:    logger,
	}
}

func (p *predictionService) PredictCrop(ctx context.Context, features []any) (models.PredictionResult, error) {
	if len(features) == 0 {
		return models.PredictionResult{}, NewValidationError(msgFeaturesRequired)
	}

	result, err := p.predictor.PredictCrop(ctx, features)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("crop prediction request failed")
		return models.PredictionResult{}, fmt.Errorf("%w: %w", ErrPredictionFailed, err)
	}

	return result, nil
}

func (p *predictionService) PredictFertilizer(ctx context.Context, features []any) (models.PredictionResult, error) {
	if len(features) == 0 {
		return models.PredictionResult{}, NewValidationError(msgFeaturesRequired)
	}

	result, err := p.predictor.PredictFertilizer(ctx, features)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("fertilizer prediction request failed")
		return models.PredictionResult{}, fmt.Errorf("%w: %w", ErrPredictionFailed, err)
	}

	return result, nil
}

// PredictDisease validates the uploaded image and relays it downstream
// as a base64 string.
func (p *predictionService) PredictDisease(ctx context.Context, image models.ImageUpload) (models.PredictionResult, error) {
	if err := validateImage(image); err != nil {
		return models.PredictionResult{}, err
	}

	encoded := base64.StdEncoding.EncodeToString(image.Content)

	result, err := p.predictor.PredictDisease(ctx, encoded)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("disease prediction request failed")
		return models.PredictionResult{}, fmt.Errorf("%w: %w", ErrPredictionFailed, err)
	}

	return result, nil
}

func validateImage(image models.ImageUpload) error {
	if len(image.Content) == 0 {
		return NewValidationError(msgImageRequired)
	}
	if _, ok := allowedImageMIMEs[image.MIME]; !ok {
		return NewValidationError(msgImageInvalidType)
	}
	if image.Size > maxImageBytes {
		return NewValidationError(msgImageTooLarge)
	}

	return nil
}
