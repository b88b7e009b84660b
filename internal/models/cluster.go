// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package models

// MatchResult is the taste match of a single venue against a profile.
type MatchResult struct {
	Score       float64  `json:"score"`
	MatchedTags []string `json:"matched_tags"`
	Tier        Tier     `json:"tier"`

	// Sub-scores kept for explanation.
	Cuisine float64 `json:"cuisine"`
	Vibe    float64 `json:"vibe"`
	Price   float64 `json:"price"`
	Dietary float64 `json:"dietary"`
}

// MatchedVenue is a venue with its taste match, the unit of venue map pins.
type MatchedVenue struct {
	Venue Venue       `json:"venue"`
	Match MatchResult `json:"match"`
}

// GridCluster is a map pin aggregating items that share a grid cell.
// Tier is only set for venue clusters.
type GridCluster[T any] struct {
	Center Coordinates `json:"center"`
	Items  []T         `json:"items"`
	Count  int         `json:"count"`
	Tier   Tier        `json:"tier,omitempty"`
}
