// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package selection

import (
	"github.com/tomtom215/nightroute/internal/models"
)

// journeyCategories maps a requested stop type to the provider types that satisfy it.
var journeyCategories = map[models.StopType][]string{
	models.StopDinner:  {"restaurant", "meal_takeaway"},
	models.StopDrinks:  {"bar", "night_club"},
	models.StopDessert: {"bakery", "cafe"},
	models.StopCoffee:  {"cafe"},
}

// KnownStopType reports whether t has a category mapping.
func KnownStopType(t models.StopType) bool {
	_, ok := journeyCategories[t]
	return ok
}

// Journey fills each requested stop type, in order, with the best eligible
// venue not already chosen. A slot with no eligible venue is skipped, so the
// route may come out shorter than requested.
type Journey struct{}

// NewJourney creates a journey selector.
func NewJourney() *Journey {
	return &Journey{}
}

// Name returns the strategy identifier.
func (j *Journey) Name() string {
	return "journey"
}

// Select fills mood.StopTypes.
func (j *Journey) Select(candidates []models.ScoredVenue, mood models.MoodPreferences) []models.ScoredVenue {
	sorted := byTotalDesc(candidates)
	used := make([]bool, len(sorted))
	selected := make([]models.ScoredVenue, 0, len(mood.StopTypes))

	for _, stopType := range mood.StopTypes {
		types := journeyCategories[stopType]
		for i := range sorted {
			if used[i] || !hasAnyType(&sorted[i].Venue, types) {
				continue
			}
			used[i] = true
			selected = append(selected, sorted[i])
			break
		}
	}

	return selected
}

func hasAnyType(v *models.Venue, types []string) bool {
	for _, t := range types {
		if v.HasType(t) {
			return true
		}
	}
	return false
}

var _ Selector = (*Journey)(nil)
