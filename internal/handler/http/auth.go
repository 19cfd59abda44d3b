package http

import (
	"encoding/json"
	"net/http"

	"github.com/agrohive/agrigate/internal/logger"
	"github.com/agrohive/agrigate/internal/utils"
	"github.com/agrohive/agrigate/models"
)

const (
	msgLoggedIn  = "User logged in successfully."
	msgLoggedOut = "User logged out successfully."
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// malformed JSON degrades to empty fields so validation reports the
	// first missing field
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug().Err(err).Msg("request body is not valid JSON")
	}

	user, err := h.services.Auth.Register(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.Token.Issue(ctx, user)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully registered")

	payload := models.AuthPayload{User: user, Token: token.SignedString}
	utils.WriteJSON(w, models.NewEnvelope(true, msgLoggedIn, payload), http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug().Err(err).Msg("request body is not valid JSON")
	}

	user, err := h.services.Auth.Login(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.Token.Issue(ctx, user)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully logged in")

	payload := models.AuthPayload{User: user, Token: token.SignedString}
	utils.WriteJSON(w, models.NewEnvelope(true, msgLoggedIn, payload), http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tokenID, ok := utils.GetTokenIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no token ID in context of an authenticated request")
		utils.WriteJSON(w, models.NewEnvelope(false, msgInvalidToken, nil), http.StatusUnauthorized)
		return
	}

	if err := h.services.Token.Revoke(ctx, tokenID); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewEnvelope(true, msgLoggedOut, nil), http.StatusOK)
}
