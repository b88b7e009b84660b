// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package geo

import (
	"math"

	"github.com/golang/geo/s2"

	"github.com/tomtom215/nightroute/internal/models"
)

const (
	// EarthRadiusMiles is the mean Earth radius used for all route distances.
	EarthRadiusMiles = 3958.8

	// WalkingSpeedMPH is the assumed walking pace.
	WalkingSpeedMPH = 3.0
)

// Reference is the neighborhood center proximity is measured from.
var Reference = models.Coordinates{Lat: 40.7265, Lng: -73.9815}

// Distance returns the great-circle distance in miles between two points.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lng1)
	p2 := s2.LatLngFromDegrees(lat2, lng2)
	return p1.Distance(p2).Radians() * EarthRadiusMiles
}

// Between is Distance for two coordinate values.
func Between(a, b models.Coordinates) float64 {
	return Distance(a.Lat, a.Lng, b.Lat, b.Lng)
}

// WalkingMinutes estimates walking time for a distance in miles.
func WalkingMinutes(miles float64) int {
	return int(math.Round(miles / WalkingSpeedMPH * 60))
}

// DistanceFromReference returns the distance in miles from the neighborhood center.
func DistanceFromReference(lat, lng float64) float64 {
	return Distance(lat, lng, Reference.Lat, Reference.Lng)
}

// PathDistance sums consecutive leg distances along points.
func PathDistance(points []models.Coordinates) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += Between(points[i-1], points[i])
	}
	return total
}

// RoundTo rounds v to the given number of decimals.
func RoundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
