// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The AgriGate Authors

package config

import "time"

// Defaults applied to fields that remain zero after all configuration
// sources have been merged.
const (
	defaultHTTPAddress      = ":8080"
	defaultRequestTimeout   = 30 * time.Second
	defaultDSN              = "agrigate.db"
	defaultTokenIssuer      = "agrigate"
	defaultPredictorBaseURL = "http://localhost:5000"
	defaultPredictorTimeout = 15 * time.Second
	defaultRetryCount       = 3
	defaultRetryWaitTime    = 100 * time.Millisecond
	defaultRetryMaxWaitTime = 2 * time.Second
)

// applyDefaults fills zero-valued fields with sane defaults so the server
// can run locally without any configuration beyond the token sign key.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultDSN
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.Predictor.BaseURL == "" {
		cfg.Predictor.BaseURL = defaultPredictorBaseURL
	}
	if cfg.Predictor.Timeout == 0 {
		cfg.Predictor.Timeout = defaultPredictorTimeout
	}
	if cfg.Predictor.RetryCount == 0 {
		cfg.Predictor.RetryCount = defaultRetryCount
	}
	if cfg.Predictor.RetryWaitTime == 0 {
		cfg.Predictor.RetryWaitTime = defaultRetryWaitTime
	}
	if cfg.Predictor.RetryMaxWaitTime == 0 {
		cfg.Predictor.RetryMaxWaitTime = defaultRetryMaxWaitTime
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Predictor.BaseURL == "" {
		return ErrInvalidPredictorConfigs
	}

	return nil
}
