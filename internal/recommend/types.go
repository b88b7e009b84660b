// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package recommend

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/nightroute/internal/models"
	"github.com/tomtom215/nightroute/internal/recommend/selection"
)

// ErrInvalidRequest is returned by GenerateRoute when the request breaks its contract.
var ErrInvalidRequest = errors.New("invalid route request")

// Stop count bounds.
const (
	MinStops = 2
	MaxStops = 4
)

// Request contains the inputs for one route generation.
type Request struct {
	// RequestID identifies the request in logs. Taken from the context when empty.
	RequestID string `json:"request_id,omitempty"`

	// Venues are the candidate venues, typically a provider search result.
	Venues []models.Venue `json:"venues"`

	// Profile is the user's taste profile.
	Profile models.UserTasteProfile `json:"profile"`

	// Mood is the night the user asked for. Mood.StopTypes is used in
	// specific-journey mode.
	Mood models.MoodPreferences `json:"mood"`

	// SocialPosts feed venue popularity.
	SocialPosts []models.SocialPost `json:"social_posts,omitempty"`

	// SpecificJourney selects stops by Mood.StopTypes instead of diversity.
	SpecificJourney bool `json:"specific_journey"`
}

// Mode returns the selection strategy name for the request.
func (r *Request) Mode() string {
	if r.SpecificJourney {
		return "journey"
	}
	return "diverse"
}

// Validate checks the caller's side of the contract.
func (r *Request) Validate() error {
	if r.SpecificJourney {
		if len(r.Mood.StopTypes) == 0 || len(r.Mood.StopTypes) > MaxStops {
			return fmt.Errorf("%w: specific journey needs 1-%d stop types, got %d",
				ErrInvalidRequest, MaxStops, len(r.Mood.StopTypes))
		}
		for _, t := range r.Mood.StopTypes {
			if !selection.KnownStopType(t) {
				return fmt.Errorf("%w: unknown stop type %q", ErrInvalidRequest, t)
			}
		}
		return nil
	}
	if r.Mood.NumberOfStops < MinStops || r.Mood.NumberOfStops > MaxStops {
		return fmt.Errorf("%w: number_of_stops must be %d-%d, got %d",
			ErrInvalidRequest, MinStops, MaxStops, r.Mood.NumberOfStops)
	}
	return nil
}

// DirectionsProvider answers walking directions between two points.
// Implementations return an error when directions are unavailable.
type DirectionsProvider interface {
	Directions(ctx context.Context, origin, destination models.Coordinates) (*models.Directions, error)
}

// Stats holds engine counters.
type Stats struct {
	Requests     int64 `json:"requests"`
	Routes       int64 `json:"routes"`
	NullOutcomes int64 `json:"null_outcomes"`
	Invalid      int64 `json:"invalid"`
	Enrichments  int64 `json:"enrichments"`
	EnrichMisses int64 `json:"enrich_misses"`
}
