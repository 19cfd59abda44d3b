package models

import "time"

// Token is a bearer credential bound to exactly one user.
//
// The client-facing form is the compact signed JWT in SignedString; the
// server keeps a row keyed by ID (the "jti" claim) so that logout can
// invalidate a token immediately by deleting the row. A structurally
// valid JWT whose ID no longer resolves to a stored row is rejected.
type Token struct {
	// ID is the unique token identifier carried in the "jti" claim.
	// It is the primary key of the tokens table.
	ID string `json:"-"`

	// UserID is the owner of the token.
	UserID int64 `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature). This is the value
	// presented by clients in the Authorization header.
	SignedString string `json:"-"`

	// CreatedAt is the timestamp the token was issued.
	CreatedAt time.Time `json:"-"`

	// ExpiresAt is the optional expiry of the token. Nil means the token
	// never expires and remains valid until explicitly revoked.
	ExpiresAt *time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Token model.
func (t Token) TableName() string {
	return "tokens"
}

// String returns the compact signed serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
