package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/agent-portal/internal/adapter"
	"github.com/MKhiriev/agent-portal/internal/client"
	"github.com/MKhiriev/agent-portal/internal/config"
	"github.com/MKhiriev/agent-portal/internal/logger"
	"github.com/MKhiriev/agent-portal/internal/service"
	"github.com/MKhiriev/agent-portal/internal/tui"
	"github.com/MKhiriev/agent-portal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewFileLogger("agent-portal-client", cfg.Log.File)
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	portalAdapter, err := adapter.NewHTTPPortalAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create portal adapter")
	}

	services := service.NewClientServices(portalAdapter)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
