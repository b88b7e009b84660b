// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package api

import (
	"context"
	"time"

	"github.com/tomtom215/nightroute/internal/config"
	"github.com/tomtom215/nightroute/internal/models"
	"github.com/tomtom215/nightroute/internal/places"
	"github.com/tomtom215/nightroute/internal/recommend"
	"github.com/tomtom215/nightroute/internal/taste"
)

// Resolver turns venue names into coordinates.
type Resolver interface {
	Resolve(ctx context.Context, name string) (models.Coordinates, error)
	ResolveBatch(ctx context.Context, names []string) map[string]models.Coordinates
}

// HealthCheck contributes a named component to the health response.
// Report must be safe for concurrent use.
type HealthCheck struct {
	Name   string
	Report func() interface{}
}

// Deps are the collaborators a Handler serves requests with. Engine and
// Config are required; Places and Resolver may be nil, in which case the
// endpoints that need them answer NOT_CONFIGURED.
type Deps struct {
	Config   *config.Config
	Engine   *recommend.Engine
	Places   places.Provider
	Resolver Resolver
	Health   []HealthCheck
}

// Handler serves the NightRoute HTTP API.
//
// Route generation and map clustering are pure computations over the request
// body. The places provider is only consulted when a route request names a
// center instead of supplying venues, and by the geocode endpoint.
//
//	handler := api.NewHandler(api.Deps{Config: cfg, Engine: engine, Places: provider})
//	router := api.NewRouter(handler, cfg)
//	http.ListenAndServe(cfg.Server.Addr(), router.SetupChi())
type Handler struct {
	config    *config.Config
	engine    *recommend.Engine
	places    places.Provider
	resolver  Resolver
	matcher   *taste.Matcher
	checks    []HealthCheck
	startTime time.Time
}

// NewHandler creates a new API handler. The taste matcher used for map pins
// shares the engine's match weights so pins and routes agree.
func NewHandler(deps Deps) *Handler {
	return &Handler{
		config:    deps.Config,
		engine:    deps.Engine,
		places:    deps.Places,
		resolver:  deps.Resolver,
		matcher:   taste.NewMatcher(deps.Engine.Config().Match),
		checks:    deps.Health,
		startTime: time.Now(),
	}
}
