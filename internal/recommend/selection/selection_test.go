// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package selection

import (
	"fmt"
	"testing"

	"github.com/tomtom215/nightroute/internal/models"
)

func scored(id, name string, total, lat, lng float64, types ...string) models.ScoredVenue {
	return models.ScoredVenue{
		Venue: models.Venue{
			ID:       id,
			Name:     name,
			Types:    types,
			Location: &models.Coordinates{Lat: lat, Lng: lng},
		},
		Score: models.ScoreBreakdown{TotalScore: total},
	}
}

func ids(venues []models.ScoredVenue) []string {
	out := make([]string, len(venues))
	for i, v := range venues {
		out[i] = v.Venue.ID
	}
	return out
}

func TestDiverse_LengthIsMinOfRequestAndPool(t *testing.T) {
	d := NewDiverse(DefaultConfig())
	for _, size := range []int{0, 1, 5, 50} {
		pool := make([]models.ScoredVenue, size)
		for i := range pool {
			// Spread over roughly 3 miles so some picks need the relaxed fallback.
			pool[i] = scored(fmt.Sprintf("v%d", i), fmt.Sprintf("Place %d", i),
				float64(i%7)/7, 40.70+float64(i)*0.001, -73.98, "restaurant")
		}
		for _, n := range []int{2, 3, 4} {
			got := d.Select(pool, models.MoodPreferences{NumberOfStops: n})
			if want := min(n, size); len(got) != want {
				t.Errorf("pool %d, n %d: got %d stops, want %d", size, n, len(got), want)
			}
			seen := make(map[string]bool)
			for _, v := range got {
				if seen[v.Venue.ID] {
					t.Errorf("pool %d, n %d: %s selected twice", size, n, v.Venue.ID)
				}
				seen[v.Venue.ID] = true
			}
		}
	}
}

func TestDiverse_StartsWithHighestScore(t *testing.T) {
	pool := []models.ScoredVenue{
		scored("low", "Blue Door", 0.4, 40.7265, -73.9815, "bar"),
		scored("high", "Red Door", 0.9, 40.7266, -73.9816, "bar"),
	}
	got := NewDiverse(DefaultConfig()).Select(pool, models.MoodPreferences{NumberOfStops: 2})
	if got[0].Venue.ID != "high" {
		t.Errorf("first stop = %s, want high", got[0].Venue.ID)
	}
}

func TestDiverse_BonusFavorsVariety(t *testing.T) {
	pool := []models.ScoredVenue{
		scored("taco1", "Taqueria Uno", 0.90, 40.7265, -73.9815, "restaurant"),
		scored("taco2", "Taqueria Dos", 0.80, 40.7266, -73.9815, "restaurant"),
		scored("wine", "Vino Bar", 0.60, 40.7267, -73.9815, "bar"),
	}
	got := NewDiverse(DefaultConfig()).Select(pool, models.MoodPreferences{NumberOfStops: 2})
	// wine: 0.60 + 0.15 + 0.10 = 0.85 beats taco2 at 0.80.
	if ids(got)[1] != "wine" {
		t.Errorf("got %v, want wine second", ids(got))
	}
}

func TestDiverse_RelaxesToNewCuisine(t *testing.T) {
	pool := []models.ScoredVenue{
		scored("a", "Taqueria Uno", 0.9, 40.70, -73.98, "restaurant"),
		scored("far-same", "Taqueria Dos", 0.8, 40.80, -73.98, "restaurant"),
		scored("far-new", "Sushi Ko", 0.5, 40.90, -73.98, "restaurant"),
	}
	got := NewDiverse(DefaultConfig()).Select(pool, models.MoodPreferences{NumberOfStops: 2})
	if ids(got)[1] != "far-new" {
		t.Errorf("got %v, want far-new second", ids(got))
	}
}

func TestDiverse_FallsBackToRawScore(t *testing.T) {
	pool := []models.ScoredVenue{
		scored("a", "Taqueria Uno", 0.9, 40.70, -73.98, "restaurant"),
		scored("b", "Taqueria Dos", 0.5, 40.90, -73.98, "restaurant"),
		scored("c", "Taqueria Tres", 0.8, 40.80, -73.98, "restaurant"),
	}
	got := NewDiverse(DefaultConfig()).Select(pool, models.MoodPreferences{NumberOfStops: 2})
	if ids(got)[1] != "c" {
		t.Errorf("got %v, want c second", ids(got))
	}
}

func TestJourney(t *testing.T) {
	pool := []models.ScoredVenue{
		scored("r1", "Diner", 0.7, 40.72, -73.98, "restaurant"),
		scored("r2", "Bistro", 0.9, 40.72, -73.98, "restaurant"),
		scored("b1", "Pub", 0.6, 40.72, -73.98, "bar"),
		scored("c1", "Cafe", 0.5, 40.72, -73.98, "cafe"),
	}
	tests := []struct {
		name  string
		types []models.StopType
		want  []string
	}{
		{"ordered slots", []models.StopType{models.StopDinner, models.StopDrinks, models.StopDessert}, []string{"r2", "b1", "c1"}},
		{"no repeats", []models.StopType{models.StopDinner, models.StopDinner}, []string{"r2", "r1"}},
		{"missing slot skipped", []models.StopType{models.StopCoffee, models.StopCoffee, models.StopDrinks}, []string{"c1", "b1"}},
		{"none requested", nil, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(NewJourney().Select(pool, models.MoodPreferences{StopTypes: tt.types}))
			if fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestForMood(t *testing.T) {
	if got := ForMood(DefaultConfig(), true).Name(); got != "journey" {
		t.Errorf("specific journey selector = %s", got)
	}
	if got := ForMood(DefaultConfig(), false).Name(); got != "diverse" {
		t.Errorf("free-form selector = %s", got)
	}
	if !KnownStopType(models.StopCoffee) || KnownStopType("brunch") {
		t.Error("KnownStopType mismatch")
	}
}
