package http

import (
	"net/http"

	"github.com/MKhiriev/agent-portal/internal/app"
	"github.com/MKhiriev/agent-portal/models"
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, "index.html", nil)
}

// retrieve runs a synchronization for ?name= or the default target.
func (h *Handler) retrieve(w http.ResponseWriter, r *http.Request) {
	target := h.targetOrDefault(r.URL.Query().Get("name"))

	if _, err := h.services.CharacterService.Synchronize(r.Context(), target); err != nil {
		writeError(w, r, "*Handler.retrieve", err)
		return
	}

	renderPage(w, r, "message.html", messageView{Message: app.MsgDataRetrieved})
}

func (h *Handler) selfDestruct(w http.ResponseWriter, r *http.Request) {
	if err := h.services.CharacterService.PurgeAll(r.Context()); err != nil {
		writeError(w, r, "*Handler.selfDestruct", err)
		return
	}

	renderPage(w, r, "message.html", messageView{Message: app.MsgDataPurged})
}

func (h *Handler) exfiltrate(w http.ResponseWriter, r *http.Request) {
	characters, err := h.services.CharacterService.ListAllCharacters(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.exfiltrate", err)
		return
	}

	renderPage(w, r, "exfiltration.html", models.CharactersResponse{
		Characters: characters,
		Length:     len(characters),
	})
}
