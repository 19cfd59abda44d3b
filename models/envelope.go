package models

// Envelope is the uniform wrapper for every outward JSON response.
//
// Invariant: Status == false implies Message describes the failure and
// Data is absent. Data always holds a single payload object, never an
// array wrapping of one.
type Envelope struct {
	// Status reports whether the request succeeded.
	Status bool `json:"status"`

	// Message is a human-readable description of the outcome. On failure
	// it carries the first validation error or a generic failure text.
	Message string `json:"message"`

	// Data is the optional response payload. Omitted when empty, which
	// is the case on every failure path.
	Data any `json:"data,omitempty"`
}

// NewEnvelope builds a response Envelope. Pass nil data for
// message-only responses.
func NewEnvelope(status bool, message string, data any) Envelope {
	return Envelope{
		Status:  status,
		Message: message,
		Data:    data,
	}
}

// AuthPayload is the Envelope data returned by successful register and
// login requests.
type AuthPayload struct {
	// User is the authenticated account. The password hash is excluded
	// by the User model's JSON tags.
	User User `json:"user"`

	// Token is the issued bearer token in its client-facing form.
	Token string `json:"token"`
}
