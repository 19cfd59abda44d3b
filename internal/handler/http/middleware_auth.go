package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/agrohive/agrigate/internal/logger"
	"github.com/agrohive/agrigate/internal/utils"
	"github.com/agrohive/agrigate/models"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token, resolves it via the token service and, on success, stores the
// authenticated user's ID and the token's ID in the request context
// under [utils.UserIDCtxKey] and [utils.TokenIDCtxKey] before
// delegating to the next handler.
//
// Every rejection responds 401 with a failure Envelope carrying one
// uniform message, so a missing header is indistinguishable from a
// forged or revoked token.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			writeUnauthorized(w)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			writeUnauthorized(w)
			return
		}

		ctx := r.Context()
		user, token, err := h.services.Token.Authenticate(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("token did not authenticate")
			writeUnauthorized(w)
			return
		}

		// downstream handlers read both IDs without re-parsing the token
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, user.UserID)
		ctx = context.WithValue(ctx, utils.TokenIDCtxKey, token.ID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeUnauthorized(w http.ResponseWriter) {
	utils.WriteJSON(w, models.NewEnvelope(false, msgInvalidToken, nil), http.StatusUnauthorized)
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" header value of the "<scheme> <token>" form.
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] when the header has fewer than
//     two space-separated parts.
//   - [ErrEmptyToken] when the second part is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
