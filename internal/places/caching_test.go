// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package places

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tomtom215/nightroute/internal/cache"
	"github.com/tomtom215/nightroute/internal/models"
)

func newTestCachingClient(next Provider) *CachingClient {
	return NewCachingClient(next,
		cache.New[[]models.Venue]("test_venues", time.Minute, 10),
		cache.New[*models.Directions]("test_directions", time.Minute, 10))
}

func TestCachingClient_NearbySearch(t *testing.T) {
	fake := newFakeProvider()
	fake.venues = []models.Venue{{ID: "p1"}, {ID: "p2"}}
	c := newTestCachingClient(fake)
	ctx := context.Background()
	center := models.Coordinates{Lat: 40.72650, Lng: -73.98150}

	first, err := c.NearbySearch(ctx, center, 800, "bar")
	if err != nil {
		t.Fatalf("NearbySearch() error = %v", err)
	}
	first[0].ID = "mutated"

	// Within rounding distance of the first center.
	nearby := models.Coordinates{Lat: 40.726502, Lng: -73.981498}
	second, err := c.NearbySearch(ctx, nearby, 800, "bar")
	if err != nil {
		t.Fatalf("NearbySearch() error = %v", err)
	}
	if fake.count(EndpointNearby) != 1 {
		t.Errorf("provider calls = %d, want 1", fake.count(EndpointNearby))
	}
	if second[0].ID != "p1" {
		t.Errorf("cached entry was mutated through a returned slice: %q", second[0].ID)
	}

	tests := []struct {
		name   string
		center models.Coordinates
		radius int
		typ    string
	}{
		{"different type", center, 800, "cafe"},
		{"different radius", center, 1200, "bar"},
		{"different center", models.Coordinates{Lat: 40.7300, Lng: -73.9815}, 800, "bar"},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := c.NearbySearch(ctx, tt.center, tt.radius, tt.typ); err != nil {
				t.Fatalf("NearbySearch() error = %v", err)
			}
			if got := fake.count(EndpointNearby); got != i+2 {
				t.Errorf("provider calls = %d, want %d", got, i+2)
			}
		})
	}
}

func TestCachingClient_ErrorsNotCached(t *testing.T) {
	fake := newFakeProvider()
	fake.setErr(ErrUnavailable)
	c := newTestCachingClient(fake)
	ctx := context.Background()
	center := models.Coordinates{Lat: 40.7265, Lng: -73.9815}

	if _, err := c.NearbySearch(ctx, center, 800, ""); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("NearbySearch() error = %v", err)
	}
	fake.setErr(nil)
	if _, err := c.NearbySearch(ctx, center, 800, ""); err != nil {
		t.Fatalf("NearbySearch() error = %v", err)
	}
	if fake.count(EndpointNearby) != 2 {
		t.Errorf("provider calls = %d, want 2", fake.count(EndpointNearby))
	}
}

func TestCachingClient_Directions(t *testing.T) {
	fake := newFakeProvider()
	fake.directions = &models.Directions{
		DistanceMeters: 400,
		Path:           []models.Coordinates{{Lat: 1, Lng: 1}, {Lat: 2, Lng: 2}},
	}
	c := newTestCachingClient(fake)
	ctx := context.Background()
	a := models.Coordinates{Lat: 40.7261, Lng: -73.9839}
	b := models.Coordinates{Lat: 40.7280, Lng: -73.9820}

	d1, err := c.Directions(ctx, a, b)
	if err != nil {
		t.Fatalf("Directions() error = %v", err)
	}
	d1.Path[0].Lat = 99

	d2, err := c.Directions(ctx, a, b)
	if err != nil {
		t.Fatalf("Directions() error = %v", err)
	}
	if fake.count(EndpointDirections) != 1 {
		t.Errorf("provider calls = %d, want 1", fake.count(EndpointDirections))
	}
	if d2.Path[0].Lat != 1 {
		t.Errorf("cached path mutated: %v", d2.Path)
	}

	// Reverse direction is a different walk.
	if _, err := c.Directions(ctx, b, a); err != nil {
		t.Fatalf("Directions() error = %v", err)
	}
	if fake.count(EndpointDirections) != 2 {
		t.Errorf("provider calls = %d, want 2", fake.count(EndpointDirections))
	}
}

func TestCachingClient_TextSearchPassesThrough(t *testing.T) {
	fake := newFakeProvider()
	c := newTestCachingClient(fake)
	for i := 0; i < 3; i++ {
		_, _ = c.TextSearch(context.Background(), "same")
	}
	if fake.count(EndpointText) != 3 {
		t.Errorf("provider calls = %d, want 3", fake.count(EndpointText))
	}
}
