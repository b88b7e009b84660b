// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

/*
Package geo provides the distance helpers used by scoring, selection and
route assembly. All functions are pure.

Distances are great-circle miles on a sphere of EarthRadiusMiles, computed
through s2 angles. Walking time assumes WalkingSpeedMPH and rounds to whole
minutes.

Usage:

	miles := geo.Between(stops[0].Location, stops[1].Location)
	minutes := geo.WalkingMinutes(miles)

Proximity scoring measures from Reference, a fixed neighborhood center:

	d := geo.DistanceFromReference(v.Location.Lat, v.Location.Lng)
*/
package geo
