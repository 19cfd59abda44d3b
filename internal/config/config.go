// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The AgriGate Authors

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// agrigate application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token signing
	// parameters and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the credential store database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Predictor holds connection settings for the downstream ML
	// prediction service.
	Predictor Predictor `envPrefix:"PREDICTOR_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// lifecycle and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify issued
	// bearer tokens. Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// It identifies the service that issued the token and is validated
	// on every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an issued token remains valid
	// (e.g. "24h"). Zero means tokens never expire and stay valid until
	// explicitly revoked on logout.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the Data Source Name used to open the database connection.
	// A "postgres://" scheme selects the PostgreSQL backend; any other
	// value is treated as a SQLite file path for local development.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Predictor holds connection settings for the downstream prediction
// service. The downstream is treated as a black-box HTTP API.
type Predictor struct {
	// BaseURL is the base address of the prediction service
	// (e.g. "http://localhost:5000").
	// Env: PREDICTOR_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Timeout bounds every outbound prediction call.
	// Env: PREDICTOR_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// RetryCount is the number of retries attempted after a failed
	// outbound call. Zero disables retries.
	// Env: PREDICTOR_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`

	// RetryWaitTime is the initial wait between retries.
	// Env: PREDICTOR_RETRY_WAIT_TIME
	RetryWaitTime time.Duration `env:"RETRY_WAIT_TIME"`

	// RetryMaxWaitTime caps the exponential backoff between retries.
	// Env: PREDICTOR_RETRY_MAX_WAIT_TIME
	RetryMaxWaitTime time.Duration `env:"RETRY_MAX_WAIT_TIME"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
