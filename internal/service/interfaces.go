package service

import (
	"context"

	"github.com/agrohive/agrigate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService implements the registration and login workflows against the
// credential store.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
}

// TokenService is the token issuer: it mints bearer tokens bound to a
// user identity, resolves presented tokens back to their owner, and
// revokes them on logout.
type TokenService interface {
	// Issue mints a new token for user. Issuing has no effect on the
	// user's other live tokens.
	Issue(ctx context.Context, user models.User) (models.Token, error)

	// Authenticate resolves a presented signed token to its owning user
	// and its stored record, or fails with ErrTokenIsExpiredOrInvalid.
	Authenticate(ctx context.Context, signedString string) (models.User, models.Token, error)

	// Revoke deletes exactly the token with the given ID.
	Revoke(ctx context.Context, tokenID string) error
}

// PredictionService validates prediction payloads and relays them to the
// downstream predictor, normalizing every downstream failure.
type PredictionService interface {
	PredictCrop(ctx context.Context, features []any) (models.PredictionResult, error)
	PredictFertilizer(ctx context.Context, features []any) (models.PredictionResult, error)
	PredictDisease(ctx context.Context, image models.ImageUpload) (models.PredictionResult, error)
}

// AppInfoService exposes build/version information about the running
// application.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
