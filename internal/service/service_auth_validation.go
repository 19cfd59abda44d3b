package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/agrohive/agrigate/internal/store"
	"github.com/agrohive/agrigate/models"
)

// Client-facing validation messages. Checks run in field-declaration
// order and only the first failure is reported.
const (
	msgNameRequired = "The name field is required."
	msgNameTooLong  = "The name field must not be greater than 255 characters."

	msgEmailRequired = "The email field is required."
	msgEmailInvalid  = "The email field must be a valid email address."
	msgEmailTooLong  = "The email field must not be greater than 255 characters."
	msgEmailTaken    = "The email has already been taken."

	msgPasswordRequired = "The password field is required."
	msgPasswordTooShort = "The password field must be at least 8 characters."
	msgPasswordMismatch = "The password field confirmation does not match."
)

const maxFieldLength = 255

// validateRegister checks a registration request field by field. The
// email uniqueness check hits the store, so races with a concurrent
// registration are still possible; Register handles the resulting
// constraint violation.
func (a *authService) validateRegister(ctx context.Context, req models.RegisterRequest) error {
	if req.Name == "" {
		return NewValidationError(msgNameRequired)
	}
	if len(req.Name) > maxFieldLength {
		return NewValidationError(msgNameTooLong)
	}

	if req.Email == "" {
		return NewValidationError(msgEmailRequired)
	}
	if !isValidEmail(req.Email) {
		return NewValidationError(msgEmailInvalid)
	}
	if len(req.Email) > maxFieldLength {
		return NewValidationError(msgEmailTooLong)
	}
	if err := a.checkEmailIsFree(ctx, req.Email); err != nil {
		return err
	}

	if req.Password == "" {
		return NewValidationError(msgPasswordRequired)
	}
	if len(req.Password) < 8 {
		return NewValidationError(msgPasswordTooShort)
	}
	if req.Password != req.PasswordConfirmation {
		return NewValidationError(msgPasswordMismatch)
	}

	return nil
}

// validateLogin checks only the request shape. Credential correctness is
// Login's job.
func validateLogin(req models.LoginRequest) error {
	if req.Email == "" {
		return NewValidationError(msgEmailRequired)
	}
	if !isValidEmail(req.Email) {
		return NewValidationError(msgEmailInvalid)
	}

	if req.Password == "" {
		return NewValidationError(msgPasswordRequired)
	}

	return nil
}

func (a *authService) checkEmailIsFree(ctx context.Context, email string) error {
	_, err := a.users.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		return NewValidationError(msgEmailTaken)
	case errors.Is(err, store.ErrNoUserWasFound):
		return nil
	default:
		return fmt.Errorf("email uniqueness check failed: %w", err)
	}
}

// isValidEmail accepts addresses of the plain user@host form. Addresses
// with a display name are rejected even though net/mail parses them.
func isValidEmail(email string) bool {
	parsed, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}

	return parsed.Address == email
}
