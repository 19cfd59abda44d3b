package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h", "0" for no expiry)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-predictor-base-url downstream prediction service base URL
//	-predictor-timeout downstream call timeout (e.g., "15s")
//	-predictor-retry-count downstream retry count
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var predictorBaseURL string
	var predictorTimeout time.Duration
	var predictorRetryCount int

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h; 0 = no expiry)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&predictorBaseURL, "predictor-base-url", "", "Prediction service base URL")
	flag.DurationVar(&predictorTimeout, "predictor-timeout", 0, "Prediction call timeout (e.g., 15s)")
	flag.IntVar(&predictorRetryCount, "predictor-retry-count", 0, "Prediction call retry count")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Predictor: Predictor{
			BaseURL:    predictorBaseURL,
			Timeout:    predictorTimeout,
			RetryCount: predictorRetryCount,
		},
		JSONFilePath: jsonConfigPath,
	}
}
