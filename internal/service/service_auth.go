// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The AgriGate Authors

package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/agrohive/agrigate/internal/logger"
	"github.com/agrohive/agrigate/internal/store"
	"github.com/agrohive/agrigate/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration and credential verification using a
// UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// users is the data-access layer used to create and look up users.
	users store.UserRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(users store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		users:  users,
		logger: logger,
	}
}

// Register creates a new user account.
//
// The request is validated field by field in declaration order (name,
// email, password); the first failing rule is returned as a
// *ValidationError whose message is shown to the client verbatim. On
// success the password is hashed with bcrypt (one-way, salted) and the
// user is persisted.
//
// A concurrent registration racing past the uniqueness pre-check is
// caught by the store's unique constraint and reported with the same
// validation message.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validateRegister(ctx, req); err != nil {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	created, err := a.users.CreateUser(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, NewValidationError(msgEmailTaken)
		}

		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// Login authenticates an existing user.
//
// It validates the request shape, looks up the account by email, and
// compares the supplied password against the stored bcrypt hash.
//
// Returns the authenticated user record or:
//   - *ValidationError if the email or password fields fail shape checks.
//   - ErrInvalidCredentials if the user does not exist or the password
//     does not match. Both cases share one error on purpose.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateLogin(req); err != nil {
		return models.User{}, err
	}

	found, err := a.users.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(req.Password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	return found, nil
}
