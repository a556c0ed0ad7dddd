package http

import (
	"github.com/MKhiriev/agent-portal/internal/logger"
	"github.com/MKhiriev/agent-portal/internal/service"
	"github.com/MKhiriev/agent-portal/internal/utils"
)

type Handler struct {
	services *service.Services

	// defaultTarget is synchronized when a request names no character.
	defaultTarget string
	traceIDs      *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, defaultTarget string, logger *logger.Logger) *Handler {
	logger.Info().Str("default_target", defaultTarget).Msg("http handler created")
	return &Handler{
		services:      services,
		defaultTarget: defaultTarget,
		traceIDs:      utils.NewUUIDGenerator(),
		logger:        logger,
	}
}

// targetOrDefault picks the requested name, falling back to the configured
// default target when the request names nobody.
func (h *Handler) targetOrDefault(name string) string {
	if name == "" {
		return h.defaultTarget
	}
	return name
}
