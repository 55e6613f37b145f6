package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/invite-cards/internal/config"
	"github.com/MKhiriev/invite-cards/internal/handler"
	"github.com/MKhiriev/invite-cards/internal/logger"
	"github.com/MKhiriev/invite-cards/internal/server"
	"github.com/MKhiriev/invite-cards/internal/service"
	"github.com/MKhiriev/invite-cards/internal/store"
	"github.com/MKhiriev/invite-cards/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("invites-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if !logger.SetLevel(cfg.App.LogLevel) {
		log.Warn().Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("storage_driver", cfg.Storage.Driver).
		Str("public_origin", cfg.App.PublicOrigin).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, workers.NewWorkers(services, cfg.Workers, log), log)
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
