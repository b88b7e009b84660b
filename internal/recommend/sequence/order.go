// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

// Package sequence orders and schedules selected route stops.
package sequence

import (
	"sort"

	"github.com/tomtom215/nightroute/internal/geo"
	"github.com/tomtom215/nightroute/internal/models"
	"github.com/tomtom215/nightroute/internal/taste"
)

// MaxOptimizeStops is the largest stop count searched exhaustively.
const MaxOptimizeStops = 4

// unranked sorts after every known category.
const unranked = 99

// Time-of-day category ranks. Lower ranks visit earlier.
var (
	daytimeRanks = map[string]int{
		"cafe": 0, "bakery": 0,
		"restaurant": 1, "meal_takeaway": 1, "meal_delivery": 1,
		"bar": 2, "night_club": 2,
	}
	eveningRanks = map[string]int{
		"restaurant": 0, "meal_takeaway": 0, "meal_delivery": 0,
		"bar":  1,
		"cafe": 2, "bakery": 2,
		"night_club": 3,
	}
	lateRanks = map[string]int{
		"bar":        0,
		"restaurant": 1, "meal_takeaway": 1, "meal_delivery": 1,
		"cafe": 2, "bakery": 2,
		"night_club": 3,
	}
)

// ranksFor picks the ordering for an hour of day (0-23).
func ranksFor(hour int) map[string]int {
	switch {
	case hour < 17:
		return daytimeRanks
	case hour < 21:
		return eveningRanks
	default:
		return lateRanks
	}
}

// Rank returns the time-of-day rank of a venue's primary category.
func Rank(v *models.Venue, hour int) int {
	if r, ok := ranksFor(hour)[taste.PrimaryCategory(v)]; ok {
		return r
	}
	return unranked
}

// ByTimeOfDay returns a copy of stops stably sorted by category rank.
func ByTimeOfDay(stops []models.ScoredVenue, hour int) []models.ScoredVenue {
	sorted := make([]models.ScoredVenue, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Rank(&sorted[i].Venue, hour) < Rank(&sorted[j].Venue, hour)
	})
	return sorted
}

// Order sorts stops by time of day and, unless preserveTypeOrder is set,
// reorders up to MaxOptimizeStops stops to the shortest walking path.
func Order(stops []models.ScoredVenue, hour int, preserveTypeOrder bool) []models.ScoredVenue {
	ranked := ByTimeOfDay(stops, hour)
	if preserveTypeOrder || len(ranked) < 3 || len(ranked) > MaxOptimizeStops {
		return ranked
	}
	return shortestPath(ranked)
}

// PathMiles is the sum of consecutive great-circle distances. Stops without
// coordinates contribute nothing.
func PathMiles(stops []models.ScoredVenue) float64 {
	total := 0.0
	for i := 0; i+1 < len(stops); i++ {
		a, b := stops[i].Venue.Location, stops[i+1].Venue.Location
		if a == nil || b == nil {
			continue
		}
		total += geo.Between(*a, *b)
	}
	return total
}

// shortestPath evaluates every permutation and returns the cheapest. The
// input order is evaluated first and only replaced by a strictly shorter path.
func shortestPath(stops []models.ScoredVenue) []models.ScoredVenue {
	n := len(stops)
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			a, b := stops[i].Venue.Location, stops[j].Venue.Location
			if i != j && a != nil && b != nil {
				dist[i][j] = geo.Between(*a, *b)
			}
		}
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	best := append([]int(nil), perm...)
	bestCost := routeCost(perm, dist)

	const epsilon = 1e-9
	permute(perm, 0, func(p []int) {
		if c := routeCost(p, dist); c < bestCost-epsilon {
			bestCost = c
			copy(best, p)
		}
	})

	out := make([]models.ScoredVenue, n)
	for i, idx := range best {
		out[i] = stops[idx]
	}
	return out
}

// permute calls visit for each permutation of p[k:], identity first.
func permute(p []int, k int, visit func([]int)) {
	if k == len(p) {
		visit(p)
		return
	}
	for i := k; i < len(p); i++ {
		p[k], p[i] = p[i], p[k]
		permute(p, k+1, visit)
		p[k], p[i] = p[i], p[k]
	}
}

// routeCost sums the distance matrix along route.
func routeCost(route []int, dist [][]float64) float64 {
	cost := 0.0
	for i := 0; i < len(route)-1; i++ {
		cost += dist[route[i]][route[i+1]]
	}
	return cost
}
