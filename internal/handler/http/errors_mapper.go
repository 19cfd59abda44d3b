package http

import (
	"errors"
	"net/http"

	"github.com/agrohive/agrigate/internal/logger"
	"github.com/agrohive/agrigate/internal/service"
	"github.com/agrohive/agrigate/internal/store"
	"github.com/agrohive/agrigate/internal/utils"
	"github.com/agrohive/agrigate/models"
)

// Client-facing messages for mapped sentinel errors. Every failure body
// is an Envelope; raw error text never leaks to the client.
const (
	msgInvalidCredentials = "email or password are incorrect."
	msgInvalidToken       = "Invalid token or user not authenticated."
)

var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials:      http.StatusUnprocessableEntity,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrPredictionFailed:        http.StatusUnprocessableEntity,

	store.ErrEmailAlreadyExists: http.StatusUnprocessableEntity,
	store.ErrNoUserWasFound:     http.StatusUnprocessableEntity,
	store.ErrTokenNotFound:      http.StatusUnauthorized,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusUnprocessableEntity
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError picks the client-facing text for err.
func messageFromError(err error) string {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Message
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return msgInvalidCredentials
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return msgInvalidToken
	default:
		return http.StatusText(statusFromError(err))
	}
}

// writeError logs err and responds with a failure Envelope carrying the
// mapped status and client-facing message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Msg("request rejected")
	}

	utils.WriteJSON(w, models.NewEnvelope(false, messageFromError(err), nil), status)
}
