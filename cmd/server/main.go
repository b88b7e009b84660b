// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/tomtom215/nightroute/internal/api"
	"github.com/tomtom215/nightroute/internal/config"
	"github.com/tomtom215/nightroute/internal/logging"
	"github.com/tomtom215/nightroute/internal/recommend"
	"github.com/tomtom215/nightroute/internal/supervisor"
	"github.com/tomtom215/nightroute/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", api.Version).
		Str("environment", cfg.Server.Environment).
		Msg("Starting NightRoute")

	// === PROVIDERS ===

	placesComponents := initPlaces(cfg)

	var geocodeComponents *GeocodeComponents
	if placesComponents != nil {
		geocodeComponents, err = initGeocode(cfg, placesComponents.Provider)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to initialize geocoding")
		}
		defer geocodeComponents.Close()
	}

	// === ENGINE ===

	engine, err := recommend.NewEngine(recommend.FromAppConfig(&cfg.Recommend), logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	// === HTTP ===

	deps := api.Deps{Config: cfg, Engine: engine}
	if placesComponents != nil {
		engine.SetDirectionsProvider(placesComponents.Provider)
		deps.Places = placesComponents.Provider
		deps.Health = placesComponents.HealthChecks()
	}
	if geocodeComponents != nil {
		deps.Resolver = geocodeComponents.Resolver
	}

	router := api.NewRouter(api.NewHandler(deps), cfg)
	server := services.NewHTTPServer(&cfg.Server, router.SetupChi())

	// === SUPERVISOR TREE ===

	treeConfig := supervisor.DefaultTreeConfig()
	treeConfig.ShutdownTimeout = cfg.Server.ShutdownTimeout

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), treeConfig)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if placesComponents != nil {
		for _, janitor := range placesComponents.Janitors {
			tree.AddDataService(janitor)
		}
	}
	if geocodeComponents != nil {
		tree.AddDataService(geocodeComponents.Memory)
		tree.AddDataService(geocodeComponents.Store)
	}

	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout, logging.Logger()))

	// === RUN ===

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("NightRoute stopped")
}
