// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package models

// Tier is a coarse match quality bucket.
type Tier string

const (
	TierPerfect Tier = "perfect"
	TierGood    Tier = "good"
	TierOther   Tier = "other"
)

// Rank orders tiers for tie-breaking: perfect beats good beats other.
func (t Tier) Rank() int {
	switch t {
	case TierPerfect:
		return 0
	case TierGood:
		return 1
	default:
		return 2
	}
}

// ScoreBreakdown explains a venue's route score.
type ScoreBreakdown struct {
	TasteScore      float64  `json:"taste_score"`
	VibeScore       float64  `json:"vibe_score"`
	QualityScore    float64  `json:"quality_score"`
	PopularityScore float64  `json:"popularity_score"`
	ProximityScore  float64  `json:"proximity_score"`
	TotalScore      float64  `json:"total_score"`
	MatchedTags     []string `json:"matched_tags"`
	Tier            Tier     `json:"tier"`
}

// ScoredVenue wraps a venue with the breakdown computed for one request.
// It is derived data and is never persisted as part of the venue.
type ScoredVenue struct {
	Venue Venue          `json:"venue"`
	Score ScoreBreakdown `json:"score"`
}

// StopVenue is the frozen snapshot of a venue's display fields on a stop.
type StopVenue struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Address    string      `json:"address,omitempty"`
	Location   Coordinates `json:"location"`
	Category   string      `json:"category"`
	PriceLevel *int        `json:"price_level,omitempty"`
	Rating     *float64    `json:"rating,omitempty"`
	PhotoRef   string      `json:"photo_ref,omitempty"`
}

// Stop is one scheduled venue visit.
type Stop struct {
	Order           int            `json:"order"`
	Venue           StopVenue      `json:"venue"`
	ArrivalTime     string         `json:"arrival_time"`
	DurationMinutes int            `json:"duration_minutes"`
	Score           ScoreBreakdown `json:"score"`
}

// Segment sources.
const (
	SegmentSourceEstimate   = "estimate"
	SegmentSourceDirections = "directions"
)

// Segment is the walking link between two consecutive stops.
type Segment struct {
	From            Coordinates   `json:"from"`
	To              Coordinates   `json:"to"`
	DistanceMiles   float64       `json:"distance_miles"`
	DurationMinutes int           `json:"duration_minutes"`
	DistanceText    string        `json:"distance_text,omitempty"`
	DurationText    string        `json:"duration_text,omitempty"`
	Path            []Coordinates `json:"path,omitempty"`
	Source          string        `json:"source"`
}

// RouteTotals are the display aggregates of a route.
type RouteTotals struct {
	Distance    string `json:"distance"`
	WalkingTime string `json:"walking_time"`
	TotalTime   string `json:"total_time"`
}

// Route is an ordered night out. It is a value object: nothing in the engine
// holds on to it after it is returned.
type Route struct {
	Stops    []Stop          `json:"stops"`
	Segments []Segment       `json:"segments"`
	Totals   RouteTotals     `json:"totals"`
	Mood     MoodPreferences `json:"mood"`
}

// Directions is a walking directions answer from the provider.
type Directions struct {
	DistanceText    string        `json:"distance_text"`
	DistanceMeters  int           `json:"distance_meters"`
	DurationText    string        `json:"duration_text"`
	DurationSeconds int           `json:"duration_seconds"`
	Path            []Coordinates `json:"path,omitempty"`
}
