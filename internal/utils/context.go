// Package utils provides small helpers shared across layers: type-safe
// context keys and JSON response writing.
package utils

import (
	"context"
)

// contextKey is a private type for context keys. A dedicated type
// prevents collisions with string-based keys from other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey stores the authenticated user's ID in the request
// context after the auth middleware has resolved the bearer token.
var UserIDCtxKey = contextKey("userID")

// TokenIDCtxKey stores the ID of the presented token so that logout can
// revoke exactly the token used on the request.
var TokenIDCtxKey = contextKey("tokenID")

// GetUserIDFromContext retrieves the authenticated user's ID from ctx.
// ok is false when the value is missing or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetTokenIDFromContext retrieves the presented token's ID from ctx.
// ok is false when the value is missing or has an unexpected type.
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDCtxKey).(string)
	return tokenID, ok
}
