package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	// Health check (no auth required)
	r.Get("/healthz", s.handleHealth)

	// Session gate
	r.Post("/unlock", s.handleUnlock)
	r.Post("/lock", s.handleLock)

	// Panel pages and instance control. Each handler checks the gate
	// itself so a locked request can render the lock screen rather than
	// a bare status code.
	r.Get("/", s.handleHome)
	r.Post("/on", s.handleTurnOn)
	r.Post("/off", s.handleTurnOff)
	r.Post("/instances/select", s.handleSelectInstance)

	// JSON endpoints polled by the panel
	r.Get("/status.json", s.handleStatus)
	r.Get("/events.json", s.handleEvents)

	// Schedule pages
	r.Get("/calendar", s.handleCalendar)
	r.Get("/upcoming", s.handleUpcoming)

	return r
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
	})
}
