package grpc

import (
	"github.com/MKhiriev/agent-portal/internal/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// PortalServiceName is the health entry reported next to the overall ("")
// status.
const PortalServiceName = "agentportal.Portal"

// Handler is the root gRPC transport handler.
//
// The portal exposes no domain RPCs over gRPC; the handler carries the
// standard grpc.health.v1 service so orchestrators can probe the process.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Every status starts as NOT_SERVING
// until [Handler.MarkServing] is called.
func NewHandler(logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register attaches the health service to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// MarkServing flips all entries to SERVING. Call it once the listeners are up.
func (h *Handler) MarkServing() {
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
	h.logger.Info().Str("service", PortalServiceName).Msg("health status: SERVING")
}

// Shutdown reports NOT_SERVING and ignores every later status change.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
	h.logger.Info().Str("service", PortalServiceName).Msg("health status: NOT_SERVING")
}

// HealthServer exposes the underlying health implementation.
func (h *Handler) HealthServer() healthpb.HealthServer {
	return h.health
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(PortalServiceName, status)
}
