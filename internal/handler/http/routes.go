package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Route paths served by the API.
const (
	rootPath          = "/"
	healthPath        = "/health"
	analyzeSpeechPath = "/api/analyze-speech"
	versionPath       = "/api/version"
	openAPIPath       = "/openapi.json"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRecover)
	router.Use(withCORS())
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json"))

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed(router))

	router.Get(rootPath, h.root)
	router.Get(healthPath, h.health)
	router.Get(openAPIPath, h.openAPI)

	router.Route("/api", func(r chi.Router) {
		r.Post("/analyze-speech", h.analyzeSpeech)
		r.Get("/version", h.getServerVersion)
	})

	return router
}
