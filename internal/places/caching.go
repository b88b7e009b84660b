// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package places

import (
	"context"
	"math"

	"github.com/tomtom215/nightroute/internal/cache"
	"github.com/tomtom215/nightroute/internal/models"
)

// Cache names used as metric labels.
const (
	VenueCacheName      = "venues"
	DirectionsCacheName = "directions"
)

// keyPrecision rounds coordinates in cache keys to 4 decimals (about 11 m),
// so nearby map pans share an entry.
const keyPrecision = 1e4

// CachingClient memoizes nearby searches and walking directions.
// Text searches pass through; the geocode resolver caches those by name.
// Errors are never cached.
type CachingClient struct {
	next       Provider
	venues     *cache.Cache[[]models.Venue]
	directions *cache.Cache[*models.Directions]
}

// NewCachingClient wraps next with the given caches.
func NewCachingClient(next Provider, venues *cache.Cache[[]models.Venue], directions *cache.Cache[*models.Directions]) *CachingClient {
	return &CachingClient{next: next, venues: venues, directions: directions}
}

type nearbyKey struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Radius int     `json:"radius"`
	Type   string  `json:"type"`
}

type directionsKey struct {
	From models.Coordinates `json:"from"`
	To   models.Coordinates `json:"to"`
}

// NearbySearch serves from cache when a search for the same rounded center,
// radius and type is still fresh.
func (c *CachingClient) NearbySearch(ctx context.Context, center models.Coordinates, radiusMeters int, placeType string) ([]models.Venue, error) {
	key := cache.GenerateKey(EndpointNearby, nearbyKey{
		Lat:    roundKey(center.Lat),
		Lng:    roundKey(center.Lng),
		Radius: radiusMeters,
		Type:   placeType,
	})
	if venues, ok := c.venues.Get(key); ok {
		return cloneVenues(venues), nil
	}

	venues, err := c.next.NearbySearch(ctx, center, radiusMeters, placeType)
	if err != nil {
		return nil, err
	}
	c.venues.Set(key, cloneVenues(venues))
	return venues, nil
}

// TextSearch is not cached.
func (c *CachingClient) TextSearch(ctx context.Context, query string) ([]models.Venue, error) {
	return c.next.TextSearch(ctx, query)
}

// Directions serves from cache for the same rounded endpoints.
func (c *CachingClient) Directions(ctx context.Context, origin, destination models.Coordinates) (*models.Directions, error) {
	key := cache.GenerateKey(EndpointDirections, directionsKey{
		From: models.Coordinates{Lat: roundKey(origin.Lat), Lng: roundKey(origin.Lng)},
		To:   models.Coordinates{Lat: roundKey(destination.Lat), Lng: roundKey(destination.Lng)},
	})
	if d, ok := c.directions.Get(key); ok {
		return cloneDirections(d), nil
	}

	d, err := c.next.Directions(ctx, origin, destination)
	if err != nil {
		return nil, err
	}
	c.directions.Set(key, cloneDirections(d))
	return d, nil
}

func roundKey(v float64) float64 {
	return math.Round(v*keyPrecision) / keyPrecision
}

// cloneVenues copies the slice so callers cannot alter cached entries.
// Venues are treated as immutable, so a shallow element copy suffices.
func cloneVenues(in []models.Venue) []models.Venue {
	if in == nil {
		return nil
	}
	return append([]models.Venue(nil), in...)
}

func cloneDirections(d *models.Directions) *models.Directions {
	if d == nil {
		return nil
	}
	out := *d
	out.Path = append([]models.Coordinates(nil), d.Path...)
	return &out
}
