package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login for both an unknown email
	// and a wrong password. The single sentinel keeps the two cases
	// indistinguishable to callers (account-enumeration resistance).
	ErrInvalidCredentials = errors.New("email or password are incorrect")

	// ErrTokenIsExpiredOrInvalid is returned by Authenticate for every
	// token failure: bad signature, wrong issuer, expired, revoked, or
	// owner mismatch.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrTokenCreationFailed wraps signing or persistence failures during
	// token issuance.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrPredictionFailed wraps every downstream predictor failure. The
	// transport detail stays in the wrapped error and never reaches the
	// client.
	ErrPredictionFailed = errors.New("prediction failed")
)

// ValidationError carries the first validation failure encountered while
// checking a request, in field-declaration order. Its message is shown to
// the client verbatim.
type ValidationError struct {
	Message string
}

// NewValidationError builds a *ValidationError with the given
// client-facing message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}
