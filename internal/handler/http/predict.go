package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/agrohive/agrigate/internal/logger"
	"github.com/agrohive/agrigate/internal/service"
	"github.com/agrohive/agrigate/internal/utils"
	"github.com/agrohive/agrigate/models"
)

// Prediction response messages. The success texts carry over the
// misspelling from the product copy.
const (
	msgCropPredicted       = "Crop prediction is successfull performed"
	msgFertilizerPredicted = "Fertilizer prediction is successfull performed"
	msgDiseasePredicted    = "Disease prediction is successfull performed"

	msgCropFailed       = "Failed to make Crop prediction"
	msgFertilizerFailed = "Failed to make Fertilizer prediction"
	msgDiseaseFailed    = "Failed to make Disease prediction"
)

// multipartMaxMemory bounds the in-memory part of multipart parsing;
// larger uploads spill to temporary files.
const multipartMaxMemory = 4 << 20

func (h *Handler) predictCrop(w http.ResponseWriter, r *http.Request) {
	req := decodeFeatures(r)

	result, err := h.services.Prediction.PredictCrop(r.Context(), req.Features)
	if err != nil {
		h.writePredictionError(w, r, err, msgCropFailed)
		return
	}

	utils.WriteJSON(w, models.NewEnvelope(true, msgCropPredicted, result.Body), result.StatusCode)
}

func (h *Handler) predictFertilizer(w http.ResponseWriter, r *http.Request) {
	req := decodeFeatures(r)

	result, err := h.services.Prediction.PredictFertilizer(r.Context(), req.Features)
	if err != nil {
		h.writePredictionError(w, r, err, msgFertilizerFailed)
		return
	}

	utils.WriteJSON(w, models.NewEnvelope(true, msgFertilizerPredicted, result.Body), result.StatusCode)
}

func (h *Handler) predictDisease(w http.ResponseWriter, r *http.Request) {
	image, err := readImageUpload(r)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("image part missing or unreadable")
	}

	result, err := h.services.Prediction.PredictDisease(r.Context(), image)
	if err != nil {
		h.writePredictionError(w, r, err, msgDiseaseFailed)
		return
	}

	utils.WriteJSON(w, models.NewEnvelope(true, msgDiseasePredicted, result.Body), result.StatusCode)
}

// decodeFeatures tolerates malformed JSON: an undecodable body yields an
// empty feature list, which validation rejects with the proper message.
func decodeFeatures(r *http.Request) models.FeatureRequest {
	var req models.FeatureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("request body is not valid JSON")
	}

	return req
}

// readImageUpload extracts the "image" part from a multipart form. A
// missing or unreadable part yields a zero ImageUpload, which validation
// rejects with the required-field message.
func readImageUpload(r *http.Request) (models.ImageUpload, error) {
	if err := r.ParseMultipartForm(multipartMaxMemory); err != nil {
		return models.ImageUpload{}, err
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		return models.ImageUpload{}, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return models.ImageUpload{}, err
	}

	mime := header.Header.Get("Content-Type")
	if mime == "" {
		mime = http.DetectContentType(content)
	}

	return models.ImageUpload{
		Content:  content,
		MIME:     mime,
		Size:     header.Size,
		Filename: header.Filename,
	}, nil
}

// writePredictionError reports validation failures with their own
// message and collapses everything else, downstream failures included,
// into the endpoint's generic failure text with a 422.
func (h *Handler) writePredictionError(w http.ResponseWriter, r *http.Request, err error, failMessage string) {
	log := logger.FromRequest(r)

	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		log.Debug().Err(err).Msg("prediction request rejected")
		utils.WriteJSON(w, models.NewEnvelope(false, vErr.Message, nil), http.StatusUnprocessableEntity)
		return
	}

	log.Err(err).Msg("prediction request failed")
	utils.WriteJSON(w, models.NewEnvelope(false, failMessage, nil), http.StatusUnprocessableEntity)
}
