// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

// Package selection chooses route stops from scored candidates.
//
// Two strategies are provided. Diverse builds a free-form route greedily,
// favoring walkable, varied picks. Journey fills an ordered list of
// requested stop types. Both are pure and safe for concurrent use.
package selection

import (
	"sort"

	"github.com/tomtom215/nightroute/internal/models"
)

// Selector picks stops for a route.
type Selector interface {
	// Name returns the strategy identifier used in logs and metrics.
	Name() string

	// Select returns the chosen stops in pick order. An empty result is a
	// normal outcome.
	Select(candidates []models.ScoredVenue, mood models.MoodPreferences) []models.ScoredVenue
}

// Config tunes diverse selection.
type Config struct {
	// RadiusMiles bounds the walk from the previous stop before the
	// distance constraint is relaxed.
	RadiusMiles float64 `json:"radius_miles" koanf:"radius_miles"`

	// CuisineBonus is added when a candidate's cuisine category is new to the route.
	CuisineBonus float64 `json:"cuisine_bonus" koanf:"cuisine_bonus"`

	// CategoryBonus is added when a candidate's primary category is new to the route.
	CategoryBonus float64 `json:"category_bonus" koanf:"category_bonus"`
}

// DefaultConfig returns the standard walkability radius and bonuses.
func DefaultConfig() Config {
	return Config{
		RadiusMiles:   0.5,
		CuisineBonus:  0.15,
		CategoryBonus: 0.10,
	}
}

// ForMood returns the selector matching the request shape.
func ForMood(cfg Config, specificJourney bool) Selector {
	if specificJourney {
		return NewJourney()
	}
	return NewDiverse(cfg)
}

// byTotalDesc returns a copy sorted by total score, highest first. Equal
// scores keep their input order.
func byTotalDesc(candidates []models.ScoredVenue) []models.ScoredVenue {
	sorted := make([]models.ScoredVenue, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score.TotalScore > sorted[j].Score.TotalScore
	})
	return sorted
}
