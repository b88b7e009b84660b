// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package cluster

import (
	"math"

	"github.com/tomtom215/nightroute/internal/models"
)

// Zoom thresholds at or above which every item is its own cluster.
const (
	VenueNoClusterZoom = 15
	PostNoClusterZoom  = 16
)

// CellKey identifies a grid cell.
type CellKey struct {
	X, Y int
}

// cellKey returns the cell for a coordinate at the given cell size in degrees.
func cellKey(c models.Coordinates, cellSize float64) CellKey {
	return CellKey{
		X: int(math.Floor(c.Lat / cellSize)),
		Y: int(math.Floor(c.Lng / cellSize)),
	}
}

// VenueCellSize returns the grid size in degrees for venue clustering.
func VenueCellSize(zoom int) float64 {
	switch {
	case zoom <= 12:
		return 0.02
	case zoom == 13:
		return 0.01
	default:
		return 0.005
	}
}

// PostCellSize returns the grid size in degrees for post clustering.
func PostCellSize(zoom int) float64 {
	if zoom <= 12 {
		return 0.02
	}
	return 0.005
}

// bucket accumulates members of one cell.
type bucket[T any] struct {
	items  []T
	sumLat float64
	sumLng float64
	tally  [3]int
}

// grid groups items by cell. Items without coordinates are skipped.
// Output order follows the first appearance of each cell.
func grid[T any](items []T, locate func(T) *models.Coordinates, tier func(T) models.Tier, cellSize float64, singletons bool) []models.GridCluster[T] {
	buckets := make(map[CellKey]*bucket[T])
	order := make([]*bucket[T], 0)

	for i, item := range items {
		loc := locate(item)
		if loc == nil {
			continue
		}
		var key CellKey
		if singletons {
			key = CellKey{X: i}
		} else {
			key = cellKey(*loc, cellSize)
		}
		b, ok := buckets[key]
		if !ok {
			b = &bucket[T]{}
			buckets[key] = b
			order = append(order, b)
		}
		b.items = append(b.items, item)
		b.sumLat += loc.Lat
		b.sumLng += loc.Lng
		if tier != nil {
			b.tally[tier(item).Rank()]++
		}
	}

	clusters := make([]models.GridCluster[T], 0, len(order))
	for _, b := range order {
		n := float64(len(b.items))
		c := models.GridCluster[T]{
			Center: models.Coordinates{Lat: b.sumLat / n, Lng: b.sumLng / n},
			Items:  b.items,
			Count:  len(b.items),
		}
		if tier != nil {
			c.Tier = dominantTier(b.tally)
		}
		clusters = append(clusters, c)
	}
	return clusters
}

// dominantTier picks the plurality tier. Ties resolve perfect, then good, then other.
func dominantTier(tally [3]int) models.Tier {
	best := models.TierPerfect
	for _, t := range []models.Tier{models.TierGood, models.TierOther} {
		if tally[t.Rank()] > tally[best.Rank()] {
			best = t
		}
	}
	return best
}

// Venues clusters matched venues, voting a dominant tier per cell.
func Venues(venues []models.MatchedVenue, zoom int) []models.GridCluster[models.MatchedVenue] {
	return grid(venues,
		func(v models.MatchedVenue) *models.Coordinates { return v.Venue.Location },
		func(v models.MatchedVenue) models.Tier { return v.Match.Tier },
		VenueCellSize(zoom),
		zoom >= VenueNoClusterZoom,
	)
}

// Posts clusters social posts. Post clusters carry no tier.
func Posts(posts []models.SocialPost, zoom int) []models.GridCluster[models.SocialPost] {
	return grid(posts,
		func(p models.SocialPost) *models.Coordinates { return p.Location },
		nil,
		PostCellSize(zoom),
		zoom >= PostNoClusterZoom,
	)
}
