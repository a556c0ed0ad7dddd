package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/agent-portal/internal/logger"
	"github.com/MKhiriev/agent-portal/internal/mock"
	"github.com/MKhiriev/agent-portal/internal/service"
	"github.com/MKhiriev/agent-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeConsole struct {
	runs int
	err  error
}

func (f *fakeConsole) Run(context.Context) error {
	f.runs++
	return f.err
}

func newTestApp(t *testing.T, console Console) (*App, *mock.MockClientCharacterService) {
	t.Helper()

	svc := mock.NewMockClientCharacterService(gomock.NewController(t))
	app, err := NewApp(&service.ClientServices{CharacterService: svc}, console, logger.Nop())
	require.NoError(t, err)
	return app, svc
}

func TestNewApp_RequiresConsole(t *testing.T) {
	_, err := NewApp(&service.ClientServices{}, nil, logger.Nop())
	assert.ErrorIs(t, err, errNoConsole)
}

func TestApp_RunsConsoleAfterProbe(t *testing.T) {
	console := &fakeConsole{}
	app, svc := newTestApp(t, console)
	svc.EXPECT().PortalVersion(gomock.Any()).Return(models.VersionResponse{Version: "1.0.0"}, nil)

	require.NoError(t, app.run(context.Background()))
	assert.Equal(t, 1, console.runs)
}

func TestApp_UnreachablePortalIsNotFatal(t *testing.T) {
	console := &fakeConsole{}
	app, svc := newTestApp(t, console)
	svc.EXPECT().PortalVersion(gomock.Any()).Return(models.VersionResponse{}, service.ErrPortalUnavailable)

	require.NoError(t, app.run(context.Background()))
	assert.Equal(t, 1, console.runs)
}

func TestApp_ConsoleError(t *testing.T) {
	broken := errors.New("no tty")
	app, svc := newTestApp(t, &fakeConsole{err: broken})
	svc.EXPECT().PortalVersion(gomock.Any()).Return(models.VersionResponse{}, nil)

	err := app.run(context.Background())
	assert.ErrorIs(t, err, broken)
}
