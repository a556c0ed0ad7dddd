package handler

import (
	"github.com/MKhiriev/agent-portal/internal/config"
	"github.com/MKhiriev/agent-portal/internal/handler/grpc"
	"github.com/MKhiriev/agent-portal/internal/handler/http"
	"github.com/MKhiriev/agent-portal/internal/logger"
	"github.com/MKhiriev/agent-portal/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds a transport handler for every configured address.
// defaultTarget is synchronized when a page or API call names no character.
func NewHandlers(services *service.Services, cfg config.Server, defaultTarget string, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, defaultTarget, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
