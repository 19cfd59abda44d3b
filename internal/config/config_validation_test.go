package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsZeroFields(t *testing.T) {
	cfg := &StructuredConfig{}

	cfg.applyDefaults()

	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, defaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, defaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, defaultPredictorBaseURL, cfg.Predictor.BaseURL)
	assert.Equal(t, defaultPredictorTimeout, cfg.Predictor.Timeout)
	assert.Equal(t, defaultRetryCount, cfg.Predictor.RetryCount)
}

func TestApplyDefaults_KeepsSetFields(t *testing.T) {
	cfg := &StructuredConfig{
		Server:    Server{HTTPAddress: "localhost:9999", RequestTimeout: time.Minute},
		Predictor: Predictor{BaseURL: "http://predictor:5000"},
	}

	cfg.applyDefaults()

	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://predictor:5000", cfg.Predictor.BaseURL)
}

func TestValidate_MissingTokenSignKey(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	err := cfg.validate()

	require.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestValidate_Success(t *testing.T) {
	cfg := &StructuredConfig{
		App: App{TokenSignKey: "secret"},
	}
	cfg.applyDefaults()

	require.NoError(t, cfg.validate())
}
