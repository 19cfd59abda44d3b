// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The AgriGate Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/agrohive/agrigate/internal/logger"
	"github.com/agrohive/agrigate/internal/store"
	"github.com/agrohive/agrigate/models"
)

// TokenConfig carries the signing settings for issued bearer tokens.
type TokenConfig struct {
	// SignKey is the HMAC secret used to sign and verify tokens.
	SignKey string

	// Issuer is placed into the iss claim and required on verification.
	Issuer string

	// Duration bounds a token's lifetime. Zero means tokens never expire
	// on their own and live until revoked.
	Duration time.Duration
}

// tokenService mints, resolves and revokes bearer tokens. A token is an
// HS256-signed JWT whose jti is persisted in the tokens table; the row
// is the source of truth for liveness, so deleting it revokes the token
// regardless of the exp claim.
type tokenService struct {
	tokens store.TokenRepository
	users  store.UserRepository
	cfg    TokenConfig
	logger *logger.Logger
}

// NewTokenService constructs a TokenService backed by the given
// repositories.
func NewTokenService(tokens store.TokenRepository, users store.UserRepository, cfg TokenConfig, logger *logger.Logger) TokenService {
	return &tokenService{
		tokens: tokens,
		users:  users,
		cfg:    cfg,
		logger: logger,
	}
}

// Issue mints a new signed token for user and persists its record.
// Every call produces a distinct token; existing tokens of the same
// user are untouched.
func (t *tokenService) Issue(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	tokenID := newTokenID()
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Issuer:   t.cfg.Issuer,
		Subject:  strconv.FormatInt(user.UserID, 10),
		ID:       tokenID,
		IssuedAt: jwt.NewNumericDate(now),
	}

	var expiresAt *time.Time
	if t.cfg.Duration > 0 {
		exp := now.Add(t.cfg.Duration)
		claims.ExpiresAt = jwt.NewNumericDate(exp)
		expiresAt = &exp
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(t.cfg.SignKey))
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("token signing failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	token := models.Token{
		ID:           tokenID,
		UserID:       user.UserID,
		SignedString: signed,
		CreatedAt:    now,
		ExpiresAt:    expiresAt,
	}

	if err := t.tokens.SaveToken(ctx, token); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("token persistence failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Authenticate verifies the signature and claims of signedString,
// resolves its jti to a live stored token and loads the owning user.
// Every failure mode collapses into ErrTokenIsExpiredOrInvalid so a
// caller cannot distinguish a forged token from a revoked one.
func (t *tokenService) Authenticate(ctx context.Context, signedString string) (models.User, models.Token, error) {
	claims := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(signedString, claims,
		func(*jwt.Token) (any, error) { return []byte(t.cfg.SignKey), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.cfg.Issuer),
	)
	if err != nil {
		return models.User{}, models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return models.User{}, models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	stored, err := t.tokens.FindToken(ctx, claims.ID)
	if err != nil {
		if !errors.Is(err, store.ErrTokenNotFound) {
			logger.FromContext(ctx).Err(err).Msg("token lookup failed")
		}
		return models.User{}, models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	if stored.UserID != userID {
		return models.User{}, models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := t.users.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrNoUserWasFound) {
			logger.FromContext(ctx).Err(err).Msg("token owner lookup failed")
		}
		return models.User{}, models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return user, stored, nil
}

// Revoke deletes the token with the given ID. Revoking an already
// revoked token reports ErrTokenIsExpiredOrInvalid.
func (t *tokenService) Revoke(ctx context.Context, tokenID string) error {
	if err := t.tokens.DeleteToken(ctx, tokenID); err != nil {
		if errors.Is(err, store.ErrTokenNotFound) {
			return ErrTokenIsExpiredOrInvalid
		}

		logger.FromContext(ctx).Err(err).Str("token_id", tokenID).Msg("token deletion failed")
		return fmt.Errorf("token deletion failed: %w", err)
	}

	return nil
}

// newTokenID returns a time-ordered UUID, falling back to a random one
// when the monotonic source fails.
func newTokenID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
