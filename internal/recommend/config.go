// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package recommend

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/tomtom215/nightroute/internal/config"
	"github.com/tomtom215/nightroute/internal/geo"
	"github.com/tomtom215/nightroute/internal/models"
	"github.com/tomtom215/nightroute/internal/recommend/selection"
	"github.com/tomtom215/nightroute/internal/recommend/sequence"
	"github.com/tomtom215/nightroute/internal/taste"
)

// ErrInvalidConfig is returned by NewEngine for a configuration that fails Validate.
var ErrInvalidConfig = errors.New("invalid recommend config")

// Config contains all configuration for the route engine.
type Config struct {
	// Weights defines the contribution of each route score term.
	// They must sum to 1.0 so total scores stay in [0, 1].
	Weights ScoreWeights `json:"weights"`

	// Match holds the taste matcher's sub-score weights.
	Match taste.Weights `json:"match"`

	// Selection tunes diverse stop selection.
	Selection selection.Config `json:"selection"`

	// Sequence tunes stop ordering and timing.
	Sequence sequence.Config `json:"sequence"`

	// MinRating excludes rated venues below it, and all unrated venues.
	// Default: 3.0.
	MinRating float64 `json:"min_rating"`

	// PopularitySaturation is the mention count that maxes out popularity.
	// Default: 50.
	PopularitySaturation int `json:"popularity_saturation"`

	// Reference is the neighborhood center proximity is measured from.
	Reference models.Coordinates `json:"reference"`

	// Enrich contains directions enrichment limits.
	Enrich EnrichConfig `json:"enrich"`
}

// ScoreWeights defines the contribution of each route score term.
type ScoreWeights struct {
	Taste      float64 `json:"taste"`
	Vibe       float64 `json:"vibe"`
	Quality    float64 `json:"quality"`
	Popularity float64 `json:"popularity"`
	Proximity  float64 `json:"proximity"`
}

// Sum returns the total weight.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w ScoreWeights) Sum() float64 {
	return w.Taste + w.Vibe + w.Quality + w.Popularity + w.Proximity
}

// ToMap returns the weights as a string-keyed map.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w ScoreWeights) ToMap() map[string]float64 {
	return map[string]float64{
		"taste":      w.Taste,
		"vibe":       w.Vibe,
		"quality":    w.Quality,
		"popularity": w.Popularity,
		"proximity":  w.Proximity,
	}
}

// EnrichConfig limits directions enrichment.
type EnrichConfig struct {
	// Concurrency caps simultaneous directions calls per route.
	// Default: 3 (a route has at most 3 segments).
	Concurrency int `json:"concurrency"`

	// Timeout bounds the whole enrichment of one route.
	// Default: 5s.
	Timeout time.Duration `json:"timeout"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights: ScoreWeights{
			Taste:      0.35,
			Vibe:       0.30,
			Quality:    0.20,
			Popularity: 0.10,
			Proximity:  0.05,
		},
		Match:                taste.DefaultWeights(),
		Selection:            selection.DefaultConfig(),
		Sequence:             sequence.DefaultConfig(),
		MinRating:            3.0,
		PopularitySaturation: 50,
		Reference:            geo.Reference,
		Enrich: EnrichConfig{
			Concurrency: 3,
			Timeout:     5 * time.Second,
		},
	}
}

// FromAppConfig builds an engine configuration from the application's
// recommend section. The result still needs Validate.
func FromAppConfig(rc *config.RecommendConfig) *Config {
	return &Config{
		Weights: ScoreWeights{
			Taste:      rc.Weights.Taste,
			Vibe:       rc.Weights.Vibe,
			Quality:    rc.Weights.Quality,
			Popularity: rc.Weights.Popularity,
			Proximity:  rc.Weights.Proximity,
		},
		Match: taste.Weights{
			Cuisine: rc.Match.Cuisine,
			Vibe:    rc.Match.Vibe,
			Price:   rc.Match.Price,
			Dietary: rc.Match.Dietary,
		},
		Selection: selection.Config{
			RadiusMiles:   rc.RadiusMiles,
			CuisineBonus:  rc.CuisineBonus,
			CategoryBonus: rc.CategoryBonus,
		},
		Sequence: sequence.Config{
			StartOffset:       rc.StartOffset,
			MealStayMinutes:   rc.MealStayMinutes,
			StayMinutes:       rc.StayMinutes,
			PreserveTypeOrder: rc.PreserveTypeOrder,
		},
		MinRating:            rc.MinRating,
		PopularitySaturation: rc.PopularitySaturation,
		Reference:            models.Coordinates{Lat: rc.ReferenceLat, Lng: rc.ReferenceLng},
		Enrich: EnrichConfig{
			Concurrency: rc.EnrichConcurrency,
			Timeout:     rc.EnrichTimeout,
		},
	}
}

// Validate checks the configuration for errors.
//
//nolint:gocyclo // validation needs to check many fields
func (c *Config) Validate() error {
	for name, w := range c.Weights.ToMap() {
		if w < 0 {
			return fmt.Errorf("weights.%s must be non-negative, got %f", name, w)
		}
	}
	if math.Abs(c.Weights.Sum()-1.0) > 1e-6 {
		return fmt.Errorf("weights must sum to 1.0, got %f", c.Weights.Sum())
	}
	if err := c.Match.Validate(); err != nil {
		return err
	}

	if c.Selection.RadiusMiles <= 0 {
		return fmt.Errorf("selection.radius_miles must be positive, got %f", c.Selection.RadiusMiles)
	}
	if c.Selection.CuisineBonus < 0 || c.Selection.CategoryBonus < 0 {
		return fmt.Errorf("selection bonuses must be non-negative, got %f/%f",
			c.Selection.CuisineBonus, c.Selection.CategoryBonus)
	}

	if c.Sequence.StartOffset < 0 {
		return fmt.Errorf("sequence.start_offset must be non-negative, got %v", c.Sequence.StartOffset)
	}
	if c.Sequence.MealStayMinutes < 1 || c.Sequence.StayMinutes < 1 {
		return fmt.Errorf("sequence stay minutes must be positive, got %d/%d",
			c.Sequence.MealStayMinutes, c.Sequence.StayMinutes)
	}

	if c.MinRating < 0 || c.MinRating > 5 {
		return fmt.Errorf("min_rating must be in [0, 5], got %f", c.MinRating)
	}
	if c.PopularitySaturation < 1 {
		return fmt.Errorf("popularity_saturation must be positive, got %d", c.PopularitySaturation)
	}
	if !c.Reference.Valid() {
		return fmt.Errorf("reference point %v is not a valid coordinate", c.Reference)
	}

	if c.Enrich.Concurrency < 1 {
		return fmt.Errorf("enrich.concurrency must be positive, got %d", c.Enrich.Concurrency)
	}
	if c.Enrich.Timeout <= 0 {
		return fmt.Errorf("enrich.timeout must be positive, got %v", c.Enrich.Timeout)
	}

	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	// All nested structs contain only value types
	clone := *c
	return &clone
}
