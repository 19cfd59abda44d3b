package main

import (
	"context"
	"fmt"

	"github.com/agrohive/agrigate/internal/adapter"
	"github.com/agrohive/agrigate/internal/config"
	"github.com/agrohive/agrigate/internal/handler"
	"github.com/agrohive/agrigate/internal/logger"
	"github.com/agrohive/agrigate/internal/server"
	"github.com/agrohive/agrigate/internal/service"
	"github.com/agrohive/agrigate/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("agrigate-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	predictor := adapter.NewHTTPPredictor(adapter.PredictorConfig{
		BaseURL:          cfg.Predictor.BaseURL,
		Timeout:          cfg.Predictor.Timeout,
		RetryCount:       cfg.Predictor.RetryCount,
		RetryWaitTime:    cfg.Predictor.RetryWaitTime,
		RetryMaxWaitTime: cfg.Predictor.RetryMaxWaitTime,
	})

	services := service.NewServices(storages, predictor, cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
