package models

// FeatureRequest is the inbound payload for the crop and fertilizer
// prediction endpoints. Features is an ordered sequence of numeric or
// categorical values; it must be non-empty.
type FeatureRequest struct {
	Features []any `json:"features"`
}

// ImageUpload describes an uploaded image destined for the disease
// prediction endpoint. It is transient and never persisted.
type ImageUpload struct {
	// Content is the raw image bytes.
	Content []byte

	// MIME is the content type declared by the client for the uploaded
	// file part (e.g. "image/jpeg").
	MIME string

	// Size is the declared size of the upload in bytes.
	Size int64

	// Filename is the original name of the uploaded file. Informational
	// only; it takes no part in validation.
	Filename string
}

// PredictionResult carries a downstream prediction response back to the
// transport layer: the verbatim HTTP status code and the decoded JSON
// body.
type PredictionResult struct {
	// StatusCode is the HTTP status returned by the downstream service.
	// It is forwarded to the client unchanged on success.
	StatusCode int

	// Body is the decoded JSON response body.
	Body any
}
