package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, h.withCORS)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/environment", h.getEnvironment)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes that require a valid access token
	router.Group(func(r chi.Router) {
		r.Use(h.RequireAuth(""))
		r.Get("/api/session", h.getSession)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
