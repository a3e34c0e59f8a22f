package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kozaktomas/immich-frame/internal/frame"
	"github.com/kozaktomas/immich-frame/internal/immich"
	"github.com/kozaktomas/immich-frame/internal/web/handlers"
	"github.com/kozaktomas/immich-frame/internal/web/static"
)

func (s *Server) setupRoutes(im *immich.Immich) {
	// Create handlers
	frameHandler := handlers.NewFrameHandler(s.config, frame.New(im))
	peopleHandler := handlers.NewPeopleHandler(im)
	presetsHandler := handlers.NewPresetsHandler(s.config)

	// Health check
	s.router.Get("/api/v1/health", handlers.HealthCheck(s.config))

	// API routes
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/people", peopleHandler.List)
		r.Get("/presets", presetsHandler.List)
	})

	// Frame endpoints, polled by the picture frames themselves
	s.router.Get("/immich", frameHandler.Random)
	s.router.Get("/immich/", frameHandler.Random)
	s.router.Get("/immich/asset/{id}", frameHandler.Asset)

	// Demo page
	s.router.Get("/", s.serveIndex)
}

// serveIndex serves the embedded demo page.
func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(static.Index())
}
