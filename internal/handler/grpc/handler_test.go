package grpc

import (
	"context"
	"testing"

	"github.com/MKhiriev/agent-portal/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

func check(t *testing.T, h *Handler, name string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()

	resp, err := h.HealthServer().Check(context.Background(), &healthpb.HealthCheckRequest{Service: name})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestNewHandler_StartsNotServing(t *testing.T) {
	h := NewHandler(logger.Nop())

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, h, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, h, PortalServiceName))
}

func TestHandler_MarkServing(t *testing.T) {
	h := NewHandler(logger.Nop())

	h.MarkServing()

	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, h, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, h, PortalServiceName))
}

func TestHandler_ShutdownIsFinal(t *testing.T) {
	h := NewHandler(logger.Nop())
	h.MarkServing()

	h.Shutdown()
	h.MarkServing()

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, h, ""))
}

func TestHandler_UnknownService(t *testing.T) {
	h := NewHandler(logger.Nop())

	_, err := h.HealthServer().Check(context.Background(), &healthpb.HealthCheckRequest{Service: "unknown"})

	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestHandler_Register(t *testing.T) {
	h := NewHandler(logger.Nop())
	server := grpc.NewServer()
	defer server.Stop()

	h.Register(server)

	_, ok := server.GetServiceInfo()[healthpb.Health_ServiceDesc.ServiceName]
	assert.True(t, ok)
}
