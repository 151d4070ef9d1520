package web

import (
	"github.com/go-chi/chi/v5"

	"github.com/kozaktomas/photo-print/internal/web/handlers"
)

func (s *Server) setupRoutes() {
	configHandler := handlers.NewConfigHandler(s.config)
	formatsHandler := handlers.NewFormatsHandler(s.engine.Catalog())
	printsHandler := handlers.NewPrintsHandler(s.config, s.engine, s.ingester)
	contactSheetsHandler := handlers.NewContactSheetsHandler(s.config, s.engine, s.ingester, s.renders)
	rendersHandler := handlers.NewRendersHandler(s.renders)

	s.router.Get("/health", handlers.HealthCheck)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", handlers.HealthCheck)
		r.Get("/config", configHandler.Get)

		// Size catalog and margins
		r.Get("/formats", formatsHandler.List)
		r.Get("/formats/{format}/safe-area", formatsHandler.SafeArea)

		// Rendering
		r.Post("/prints", printsHandler.Create)
		r.Post("/contact-sheets", contactSheetsHandler.Create)
		r.Get("/renders/{id}", rendersHandler.Get)
	})
}
