// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package main

import (
	"fmt"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/nightroute/internal/api"
	"github.com/tomtom215/nightroute/internal/cache"
	"github.com/tomtom215/nightroute/internal/config"
	"github.com/tomtom215/nightroute/internal/geocode"
	"github.com/tomtom215/nightroute/internal/logging"
	"github.com/tomtom215/nightroute/internal/models"
	"github.com/tomtom215/nightroute/internal/places"
)

// PlacesComponents is the assembled provider chain:
// caching -> circuit breaker -> rate-limited HTTP client.
type PlacesComponents struct {
	Provider places.Provider
	Breaker  *places.BreakerClient
	Janitors []suture.Service
}

// initPlaces builds the provider chain. It returns nil when no API key is
// configured; the API then serves inline venues only.
func initPlaces(cfg *config.Config) *PlacesComponents {
	if cfg.Places.APIKey == "" {
		logging.Warn().Msg("PLACES_API_KEY not set, center searches, enrichment and geocoding are disabled")
		return nil
	}

	logger := logging.Logger()
	client := places.NewClient(&cfg.Places, logger)
	breaker := places.NewBreakerClient(client, &cfg.Places.Breaker, logger)

	venues := cache.New[[]models.Venue](places.VenueCacheName, cfg.Cache.VenueTTL, cfg.Cache.VenueCapacity)
	directions := cache.New[*models.Directions](places.DirectionsCacheName, cfg.Cache.DirectionsTTL, cfg.Cache.DirectionsCapacity)

	logging.Info().
		Str("base_url", cfg.Places.BaseURL).
		Float64("rps", cfg.Places.RequestsPerSecond).
		Msg("Places provider configured")

	return &PlacesComponents{
		Provider: places.NewCachingClient(breaker, venues, directions),
		Breaker:  breaker,
		Janitors: []suture.Service{venues, directions},
	}
}

// HealthChecks reports the breaker state under its name.
func (p *PlacesComponents) HealthChecks() []api.HealthCheck {
	return []api.HealthCheck{{
		Name:   places.BreakerName,
		Report: func() interface{} { return p.Breaker.State() },
	}}
}

// GeocodeComponents is the name resolver with its durable store.
type GeocodeComponents struct {
	Resolver *geocode.Resolver
	Store    *geocode.BadgerStore
	Memory   *cache.Cache[models.Coordinates]
}

// initGeocode opens the BadgerDB store and builds the resolver over searcher.
func initGeocode(cfg *config.Config, searcher geocode.Searcher) (*GeocodeComponents, error) {
	logger := logging.Logger()

	store, err := geocode.OpenBadgerStore(&cfg.Geocode, logger)
	if err != nil {
		return nil, fmt.Errorf("open geocode store: %w", err)
	}

	memory := cache.New[models.Coordinates](geocode.MemoryCacheName, cfg.Geocode.MemoryTTL, cfg.Geocode.MemoryCapacity)

	logging.Info().
		Str("store_path", cfg.Geocode.StorePath).
		Bool("in_memory", cfg.Geocode.InMemory).
		Msg("Geocode resolver configured")

	return &GeocodeComponents{
		Resolver: geocode.NewResolver(&cfg.Geocode, memory, store, searcher, logger),
		Store:    store,
		Memory:   memory,
	}, nil
}

// Close drains pending store writes, then closes the store.
func (g *GeocodeComponents) Close() {
	g.Resolver.Wait()
	if err := g.Store.Close(); err != nil {
		logging.Error().Err(err).Msg("Error closing geocode store")
	}
}
