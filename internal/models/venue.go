// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package models

import "math"

// Coordinates is a WGS84 point in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the point is finite, inside WGS84 bounds and not the
// (0,0) placeholder providers return for unresolved places.
func (c Coordinates) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) || math.IsInf(c.Lat, 0) || math.IsInf(c.Lng, 0) {
		return false
	}
	if c.Lat < -90 || c.Lat > 90 || c.Lng < -180 || c.Lng > 180 {
		return false
	}
	return c.Lat != 0 || c.Lng != 0
}

// Venue is a place candidate as delivered by the places provider.
//
// Venues are never mutated after they are fetched. Scoring and selection
// attach their results through wrapper values (ScoredVenue, Stop).
type Venue struct {
	// ID is the provider's stable place identifier.
	ID string `json:"id"`

	// Name is the display name. It also drives keyword-based tag inference.
	Name string `json:"name"`

	// Address is the short vicinity string shown on a stop card.
	Address string `json:"address,omitempty"`

	// Location is nil when the provider could not geocode the place.
	Location *Coordinates `json:"location,omitempty"`

	// Types are provider category hints such as "restaurant", "bar", "cafe",
	// "night_club", "bakery" and "meal_takeaway".
	Types []string `json:"types,omitempty"`

	// Rating is the 0-5 review average, nil when unrated.
	Rating *float64 `json:"rating,omitempty"`

	// PriceLevel is the 0-4 price tier, nil when unknown.
	PriceLevel *int `json:"price_level,omitempty"`

	// PhotoRef is an opaque provider photo reference.
	PhotoRef string `json:"photo_ref,omitempty"`
}

// HasType reports whether the provider tagged the venue with t.
func (v *Venue) HasType(t string) bool {
	for _, vt := range v.Types {
		if vt == t {
			return true
		}
	}
	return false
}

// RatingValue returns the rating or 0 when unrated.
func (v *Venue) RatingValue() float64 {
	if v.Rating == nil {
		return 0
	}
	return *v.Rating
}

// SocialPost is a user post referencing a venue. Only the name and an optional
// location are consumed: names feed popularity, locations feed map clustering.
type SocialPost struct {
	ID        string       `json:"id"`
	VenueName string       `json:"venue_name"`
	Location  *Coordinates `json:"location,omitempty"`
}

// Float64 returns a pointer to v. Handy for building venues in code and tests.
func Float64(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }
