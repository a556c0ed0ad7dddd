package tui

import (
	"context"

	"github.com/MKhiriev/agent-portal/internal/logger"
	"github.com/MKhiriev/agent-portal/internal/service"
	"github.com/MKhiriev/agent-portal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the terminal console of the portal.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.CharacterService == nil {
		return nil, ErrNoServices
	}

	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run blocks until the operator quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newConsoleModel(ctx, t.services.CharacterService, t.buildInfo)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("console stopped with error")
		return err
	}

	t.logger.Info().Msg("console closed by operator")
	return nil
}
