// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The AgriGate Authors

// Package service implements the application workflows: registration,
// login, token lifecycle and prediction relaying. Services depend on
// store repositories and the downstream adapter through interfaces and
// carry no transport concerns.
package service

import (
	"github.com/agrohive/agrigate/internal/adapter"
	"github.com/agrohive/agrigate/internal/config"
	"github.com/agrohive/agrigate/internal/logger"
	"github.com/agrohive/agrigate/internal/store"
)

// Services bundles every application service behind one handle for the
// transport layer.
type Services struct {
	Auth       AuthService
	Token      TokenService
	Prediction PredictionService
	AppInfo    AppInfoService
}

// NewServices wires the full service layer on top of the given storages
// and downstream predictor.
func NewServices(storages *store.Storages, predictor adapter.Predictor, cfg *config.StructuredConfig, log *logger.Logger) *Services {
	return &Services{
		Auth: NewAuthService(storages.UserRepository, log),
		Token: NewTokenService(storages.TokenRepository, storages.UserRepository, TokenConfig{
			SignKey:  cfg.App.TokenSignKey,
			Issuer:   cfg.App.TokenIssuer,
			Duration: cfg.App.TokenDuration,
		}, log),
		Prediction: NewPredictionService(predictor, log),
		AppInfo:    NewAppInfoService(cfg.App.Version),
	}
}
