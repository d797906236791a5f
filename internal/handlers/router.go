// Package handlers wires the HTTP surface of the content API: one handler per
// (resource, verb) pair, a contact-form endpoint and a diagnostic endpoint.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"geotransect-api/internal/common/config"
	"geotransect-api/internal/common/logger"
	"geotransect-api/internal/store"
)

// Deps holds the capabilities the handlers need. Store may be nil when the
// document store is not configured; content endpoints then answer with a
// server error while the diagnostic endpoint reports the condition.
type Deps struct {
	Store  store.Store
	Config *config.Config
	Logger logger.Logger
}

// NewRouter configures all routes and returns the router.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(deps.Logger))
	r.Use(collectMetrics)

	// All origins, methods and headers with credentials: an external policy
	// reproduced as configuration.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	content := NewContentHandler(deps.Store, deps.Logger)
	contact := NewContactHandler(deps.Store, deps.Logger)
	health := NewHealthHandler(deps.Store, deps.Config, deps.Logger)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"message": "Geo Transect API running"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/services", content.ListServices)
		r.Post("/services", content.CreateService)

		r.Get("/projects", content.ListProjects)
		r.Post("/projects", content.CreateProject)

		r.Get("/team", content.ListTeam)
		r.Post("/team", content.CreateTeamMember)

		r.Post("/contact", contact.Submit)
	})

	r.Get("/test", health.Status)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
