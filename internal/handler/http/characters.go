package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/agent-portal/internal/logger"
	"github.com/MKhiriev/agent-portal/internal/utils"
	"github.com/MKhiriev/agent-portal/models"
)

func (h *Handler) listCharacters(w http.ResponseWriter, r *http.Request) {
	characters, err := h.services.CharacterService.ListAllCharacters(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listCharacters", err)
		return
	}

	utils.WriteJSON(w, models.CharactersResponse{
		Characters: characters,
		Length:     len(characters),
	}, http.StatusOK)
}

func (h *Handler) purgeCharacters(w http.ResponseWriter, r *http.Request) {
	if err := h.services.CharacterService.PurgeAll(r.Context()); err != nil {
		writeError(w, r, "*Handler.purgeCharacters", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// synchronize accepts an optional {"name": "..."} body; an absent body or
// an empty name selects the default target.
func (h *Handler) synchronize(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, r, "*Handler.synchronize", fmt.Errorf("%w: %w", ErrInvalidSyncRequest, err))
		return
	}

	target := h.targetOrDefault(request.Name)
	report, err := h.services.CharacterService.Synchronize(r.Context(), target)
	if err != nil {
		writeError(w, r, "*Handler.synchronize", err)
		return
	}

	log.Info().
		Str("func", "*Handler.synchronize").
		Str("target", target).
		Int("associates_seen", report.AssociatesSeen).
		Msg("synchronization requested over API")

	utils.WriteJSON(w, report, http.StatusOK)
}
