package http

import (
	"net/http"

	"github.com/MKhiriev/agent-portal/internal/utils"
	"github.com/MKhiriev/agent-portal/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetBuildInfo(r.Context())

	utils.WriteJSON(w, models.NewVersionResponse(buildInfo), http.StatusOK)
}
