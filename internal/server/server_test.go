package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/agent-portal/internal/config"
	"github.com/MKhiriev/agent-portal/internal/handler"
	myGRPC "github.com/MKhiriev/agent-portal/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/agent-portal/internal/handler/http"
	"github.com/MKhiriev/agent-portal/internal/logger"
	"github.com/MKhiriev/agent-portal/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func testHandlers() *handler.Handlers {
	return &handler.Handlers{
		HTTP: myHTTP.NewHandler(&service.Services{}, "Spectrum", logger.Nop()),
		GRPC: myGRPC.NewHandler(logger.Nop()),
	}
}

// ─────────────────────────────────────────────
// NewServer
// ─────────────────────────────────────────────

func TestNewServer_NoAddresses(t *testing.T) {
	srv, err := NewServer(testHandlers(), config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewServer_HTTPOnly(t *testing.T) {
	srv, err := NewServer(testHandlers(), config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Minute}, logger.Nop())
	require.NoError(t, err)

	s := srv.(*server)
	require.NotNil(t, s.httpServer)
	assert.Nil(t, s.gRPCServer)
	assert.Equal(t, time.Minute, s.httpServer.server.WriteTimeout)
}

func TestNewServer_GRPCAddressInUse(t *testing.T) {
	first, err := NewServer(testHandlers(), config.Server{GRPCAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)
	defer first.Shutdown()

	taken := first.(*server).gRPCServer.listener.Addr().String()

	_, err = NewServer(testHandlers(), config.Server{GRPCAddress: taken}, logger.Nop())
	assert.ErrorIs(t, err, ErrListeningGRPC)
}

func TestRun_NothingToRun(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}

// ─────────────────────────────────────────────
// run: lifecycle
// ─────────────────────────────────────────────

func TestRun_ServesHealthAndStopsOnCancel(t *testing.T) {
	handlers := testHandlers()
	srv, err := NewServer(handlers, config.Server{GRPCAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)
	s := srv.(*server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	conn, err := grpc.NewClient(s.gRPCServer.listener.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	client := healthpb.NewHealthClient(conn)
	require.Eventually(t, func() bool {
		checkCtx, checkCancel := context.WithTimeout(context.Background(), time.Second)
		defer checkCancel()

		resp, checkErr := client.Check(checkCtx, &healthpb.HealthCheckRequest{Service: myGRPC.PortalServiceName})
		return checkErr == nil && resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
	}, 5*time.Second, 50*time.Millisecond)

	cancel()

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}
}

func TestHTTPServer_ShutdownBeforeRun(t *testing.T) {
	h := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	h.Shutdown()
	h.RunServer()
}
