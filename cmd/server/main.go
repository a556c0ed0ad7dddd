package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/agent-portal/internal/adapter"
	"github.com/MKhiriev/agent-portal/internal/config"
	"github.com/MKhiriev/agent-portal/internal/handler"
	"github.com/MKhiriev/agent-portal/internal/logger"
	"github.com/MKhiriev/agent-portal/internal/server"
	"github.com/MKhiriev/agent-portal/internal/service"
	"github.com/MKhiriev/agent-portal/internal/store"
	"github.com/MKhiriev/agent-portal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("agent-portal")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("target", cfg.App.TargetName).
		Str("catalog", cfg.Catalog.BaseURL).
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	catalog, err := adapter.NewHTTPCatalogAdapter(cfg.Catalog, cfg.Agent, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating catalog adapter")
	}

	services := service.NewServices(storages, catalog, buildInfo, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, cfg.App.TargetName, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
