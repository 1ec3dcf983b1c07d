package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all API routes.
func SetupRoutes(h *Handlers, hc *HealthChecker) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)

	// CORS: the API serves read-only lookups to arbitrary consumers, so
	// any origin may call it. No credentials are involved.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", h.HandleRoot)

	// Health and diagnostics
	r.Get("/health", hc.HandleHealth)
	r.Get("/health/live", hc.HandleLiveness)
	r.Get("/health/ready", hc.HandleReadiness)
	r.Get("/health/db-stats", hc.HandleDBStats)
	r.Handle("/metrics", promhttp.Handler())

	// Identifier lookups
	r.Route("/business", func(r chi.Router) {
		r.Get("/by-domain", h.GetByDomain)
		r.Get("/by-linkedin", h.GetByLinkedin)
		r.Get("/by-place-id", h.GetByPlaceID)
		r.Get("/by-email", h.GetByEmail)
		r.Post("/by-email/batch", h.PostEmailBatch)
		r.Get("/by-google-id", h.GetByGoogleID)
		r.Get("/contacts/enriched", h.GetEnrichedContacts)
	})

	return r
}
