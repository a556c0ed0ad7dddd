package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "text/html", "application/json"))

	// trigger pages
	router.Get("/", h.index)
	router.Get("/retrieve", h.retrieve)
	router.Get("/self-destruct", h.selfDestruct)
	router.Get("/exfiltrate", h.exfiltrate)

	// JSON API
	router.Get("/api/characters", h.listCharacters)
	router.Delete("/api/characters", h.purgeCharacters)
	router.Post("/api/sync", h.synchronize)
	router.Get("/api/version/", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
