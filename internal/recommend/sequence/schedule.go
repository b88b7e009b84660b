// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package sequence

import (
	"time"

	"github.com/tomtom215/nightroute/internal/models"
	"github.com/tomtom215/nightroute/internal/taste"
)

// ArrivalLayout formats planned arrival times.
const ArrivalLayout = "3:04 PM"

// Config tunes stop ordering and timing.
type Config struct {
	// StartOffset is the delay between generation and the first arrival.
	StartOffset time.Duration `json:"start_offset" koanf:"start_offset"`

	// MealStayMinutes applies to restaurant and takeaway stops.
	MealStayMinutes int `json:"meal_stay_minutes" koanf:"meal_stay_minutes"`

	// StayMinutes applies to every other stop.
	StayMinutes int `json:"stay_minutes" koanf:"stay_minutes"`

	// PreserveTypeOrder keeps the time-of-day order and skips the
	// shortest-path search.
	PreserveTypeOrder bool `json:"preserve_type_order" koanf:"preserve_type_order"`
}

// DefaultConfig returns a 15 minute head start and 90/60 minute stays.
func DefaultConfig() Config {
	return Config{
		StartOffset:     15 * time.Minute,
		MealStayMinutes: 90,
		StayMinutes:     60,
	}
}

var mealCategories = map[string]bool{
	"restaurant":    true,
	"meal_takeaway": true,
	"meal_delivery": true,
}

// StayFor returns the planned stay at v in minutes.
func (c Config) StayFor(v *models.Venue) int {
	if mealCategories[taste.PrimaryCategory(v)] {
		return c.MealStayMinutes
	}
	return c.StayMinutes
}

// Schedule turns ordered venues into timed stops starting StartOffset after now.
// Each stop's arrival advances the clock by the previous stop's stay.
func Schedule(ordered []models.ScoredVenue, now time.Time, cfg Config) []models.Stop {
	clock := now.Add(cfg.StartOffset)
	stops := make([]models.Stop, 0, len(ordered))

	for i := range ordered {
		sv := &ordered[i]
		stay := cfg.StayFor(&sv.Venue)
		stops = append(stops, models.Stop{
			Order:           i + 1,
			Venue:           snapshot(&sv.Venue),
			ArrivalTime:     clock.Format(ArrivalLayout),
			DurationMinutes: stay,
			Score:           sv.Score,
		})
		clock = clock.Add(time.Duration(stay) * time.Minute)
	}

	return stops
}

// snapshot freezes a venue's display fields for a stop.
func snapshot(v *models.Venue) models.StopVenue {
	sv := models.StopVenue{
		ID:       v.ID,
		Name:     v.Name,
		Address:  v.Address,
		Category: taste.PrimaryCategory(v),
		PhotoRef: v.PhotoRef,
	}
	if v.PriceLevel != nil {
		sv.PriceLevel = models.Int(*v.PriceLevel)
	}
	if v.Rating != nil {
		sv.Rating = models.Float64(*v.Rating)
	}
	if v.Location != nil {
		sv.Location = *v.Location
	}
	return sv
}
