package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/openjournal/journal-backend/internal/transport/middleware"
)

// RouterDeps bundles everything the HTTP router needs.
type RouterDeps struct {
	Entries *EntryHandler
	Health  *HealthHandler

	// Base middleware wrap every route; Protected additionally wrap the
	// entry routes (identity resolution and the auth requirement).
	Base      []middleware.Middleware
	Protected []middleware.Middleware
}

// NewRouter builds the chi router with all routes mounted.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Chain(deps.Base...))

	r.Get("/health", deps.Health.Health)
	r.Get("/health/live", deps.Health.Live)
	r.Get("/health/ready", deps.Health.Ready)

	r.Route("/api/v1/entries", func(r chi.Router) {
		r.Use(middleware.Chain(deps.Protected...))
		r.Post("/", deps.Entries.Create)
		r.Get("/", deps.Entries.List)
		r.Delete("/", deps.Entries.DeleteAll)
		r.Get("/streak", deps.Entries.Streak)
		r.Get("/recent", deps.Entries.Recent)
		r.Get("/{id}", deps.Entries.Get)
		r.Put("/{id}", deps.Entries.Update)
		r.Delete("/{id}", deps.Entries.Delete)
	})

	return r
}
