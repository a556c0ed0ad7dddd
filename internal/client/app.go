package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/agent-portal/internal/logger"
	"github.com/MKhiriev/agent-portal/internal/service"
)

const portalProbeTimeout = 5 * time.Second

var errNoConsole = errors.New("client app needs a console")

type App struct {
	services *service.ClientServices
	console  Console

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, console Console, logger *logger.Logger) (*App, error) {
	if services == nil || console == nil {
		return nil, errNoConsole
	}

	return &App{services: services, console: console, logger: logger}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.probePortal(ctx)

	if err := a.console.Run(ctx); err != nil {
		return fmt.Errorf("console: %w", err)
	}

	return nil
}

// probePortal logs the portal build. An unreachable portal is not fatal:
// the console reports it on every failing action.
func (a *App) probePortal(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, portalProbeTimeout)
	defer cancel()

	version, err := a.services.CharacterService.PortalVersion(probeCtx)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "App.probePortal").Msg("portal is not reachable yet")
		return
	}

	a.logger.Info().
		Str("portal_version", version.Version).
		Str("portal_commit", version.Commit).
		Msg("connected to portal")
}
