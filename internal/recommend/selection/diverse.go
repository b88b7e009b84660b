// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package selection

import (
	"github.com/tomtom215/nightroute/internal/geo"
	"github.com/tomtom215/nightroute/internal/models"
	"github.com/tomtom215/nightroute/internal/taste"
)

// Diverse greedily builds a walkable route that rewards variety.
//
// The first stop is the highest scoring candidate. Each following stop is
// picked among candidates within RadiusMiles of the previous stop by
//
//	adjusted = total + CuisineBonus (new cuisine) + CategoryBonus (new category)
//
// When nothing is in range it takes the best remaining candidate with an
// unrepresented cuisine, and failing that the best remaining candidate. The
// result always has min(n, len(candidates)) stops.
type Diverse struct {
	cfg Config
}

// NewDiverse creates a diverse selector.
func NewDiverse(cfg Config) *Diverse {
	return &Diverse{cfg: cfg}
}

// Name returns the strategy identifier.
func (d *Diverse) Name() string {
	return "diverse"
}

// candidate caches per-venue lookups for one selection.
type candidate struct {
	venue    models.ScoredVenue
	cuisine  string
	category string
	used     bool
}

// Select picks mood.NumberOfStops stops.
func (d *Diverse) Select(candidates []models.ScoredVenue, mood models.MoodPreferences) []models.ScoredVenue {
	n := min(mood.NumberOfStops, len(candidates))
	if n <= 0 {
		return []models.ScoredVenue{}
	}

	sorted := byTotalDesc(candidates)
	pool := make([]candidate, len(sorted))
	for i := range sorted {
		pool[i] = candidate{
			venue:    sorted[i],
			cuisine:  taste.CuisineCategory(&sorted[i].Venue),
			category: taste.PrimaryCategory(&sorted[i].Venue),
		}
	}

	selected := make([]models.ScoredVenue, 0, n)
	cuisines := make(map[string]struct{}, n)
	categories := make(map[string]struct{}, n)
	take := func(i int) {
		pool[i].used = true
		selected = append(selected, pool[i].venue)
		cuisines[pool[i].cuisine] = struct{}{}
		categories[pool[i].category] = struct{}{}
	}

	take(0)
	prev := 0

	for len(selected) < n {
		next := d.nearbyBest(pool, prev, cuisines, categories)
		if next < 0 {
			next = firstNewCuisine(pool, cuisines)
		}
		if next < 0 {
			next = firstUnused(pool)
		}
		if next < 0 {
			break
		}
		take(next)
		prev = next
	}

	return selected
}

// nearbyBest returns the in-range candidate with the highest adjusted score, or -1.
func (d *Diverse) nearbyBest(pool []candidate, prev int, cuisines, categories map[string]struct{}) int {
	from := pool[prev].venue.Venue.Location
	if from == nil {
		return -1
	}

	best := -1
	bestScore := 0.0
	for i := range pool {
		c := &pool[i]
		if c.used || c.venue.Venue.Location == nil {
			continue
		}
		if geo.Between(*from, *c.venue.Venue.Location) > d.cfg.RadiusMiles {
			continue
		}

		adjusted := c.venue.Score.TotalScore
		if _, seen := cuisines[c.cuisine]; !seen {
			adjusted += d.cfg.CuisineBonus
		}
		if _, seen := categories[c.category]; !seen {
			adjusted += d.cfg.CategoryBonus
		}
		if best < 0 || adjusted > bestScore {
			best = i
			bestScore = adjusted
		}
	}
	return best
}

func firstNewCuisine(pool []candidate, cuisines map[string]struct{}) int {
	for i := range pool {
		if pool[i].used {
			continue
		}
		if _, seen := cuisines[pool[i].cuisine]; !seen {
			return i
		}
	}
	return -1
}

func firstUnused(pool []candidate) int {
	for i := range pool {
		if !pool[i].used {
			return i
		}
	}
	return -1
}

var _ Selector = (*Diverse)(nil)
