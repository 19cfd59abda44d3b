// Package store implements the persistence layer: the credential store
// (user records) and the token table. PostgreSQL is the primary backend;
// SQLite serves local development. Both are reached through database/sql
// with queries built by squirrel so that placeholder formats stay
// backend-agnostic.
package store

import (
	"context"

	"github.com/agrohive/agrigate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository owns User records: creation at registration time and
// lookups during login and token authentication.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// TokenRepository owns Token records. Deletion is atomic; a token whose
// row is gone no longer authenticates.
type TokenRepository interface {
	SaveToken(ctx context.Context, token models.Token) error
	FindToken(ctx context.Context, tokenID string) (models.Token, error)
	DeleteToken(ctx context.Context, tokenID string) error
}
