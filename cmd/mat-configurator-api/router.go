package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/spherical-ai/spherical/libs/mat-configurator/cmd/mat-configurator-api/handlers"
	"github.com/spherical-ai/spherical/libs/mat-configurator/cmd/mat-configurator-api/middleware"
	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/assetpath"
	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/observability"
)

// RouterDeps holds the components the routes are served from.
type RouterDeps struct {
	Resolver       handlers.Resolver
	Generator      *assetpath.Generator
	Pinger         handlers.Pinger
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// NewRouter creates the API router with all routes configured.
func NewRouter(logger *observability.Logger, deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.RequestContext)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(deps.AllowedOrigins))
	if deps.RequestTimeout > 0 {
		r.Use(chimiddleware.Timeout(deps.RequestTimeout))
	}

	healthHandler := handlers.NewHealthHandler(logger, deps.Pinger)
	configuratorHandler := handlers.NewConfiguratorHandler(logger, deps.Resolver, deps.Generator)

	r.Get("/health", healthHandler.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/resolve", configuratorHandler.Resolve)
		r.Post("/asset-path", configuratorHandler.AssetPath)
		r.Get("/options", configuratorHandler.Options)
	})

	return r
}
