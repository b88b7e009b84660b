// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package recommend

import (
	"strings"

	"github.com/tomtom215/nightroute/internal/models"
	"github.com/tomtom215/nightroute/internal/taste"
)

// neutralVibe fills any (preference, category) pair missing from the tables.
const neutralVibe = 0.5

var energyTable = map[models.Energy]map[string]float64{
	models.EnergyChill: {
		"night_club": 0.1, "bar": 0.5, "wine_bar": 0.9, "cafe": 0.9,
		"bakery": 0.8, "restaurant": 0.7, "meal_takeaway": 0.6,
	},
	models.EnergySocial: {
		"night_club": 0.6, "bar": 0.9, "wine_bar": 0.8, "cafe": 0.5,
		"bakery": 0.4, "restaurant": 0.8, "meal_takeaway": 0.5,
	},
	models.EnergyElectric: {
		"night_club": 1.0, "bar": 0.8, "wine_bar": 0.4, "cafe": 0.1,
		"bakery": 0.1, "restaurant": 0.4, "meal_takeaway": 0.3,
	},
}

var crowdTable = map[models.Crowd]map[string]float64{
	models.CrowdIntimate: {
		"night_club": 0.1, "bar": 0.5, "cafe": 0.8,
		"bakery": 0.7, "restaurant": 0.8, "meal_takeaway": 0.4,
	},
	models.CrowdMixed: {
		"night_club": 0.6, "bar": 0.8, "cafe": 0.7,
		"bakery": 0.6, "restaurant": 0.8, "meal_takeaway": 0.6,
	},
	models.CrowdPacked: {
		"night_club": 1.0, "bar": 0.8, "cafe": 0.3,
		"bakery": 0.3, "restaurant": 0.5, "meal_takeaway": 0.4,
	},
}

var musicTable = map[models.Music]map[string]float64{
	models.MusicNone: {
		"night_club": 0.0, "bar": 0.3, "cafe": 0.8,
		"bakery": 0.9, "restaurant": 0.7, "meal_takeaway": 0.7,
	},
	models.MusicBackground: {
		"night_club": 0.2, "bar": 0.8, "cafe": 0.9,
		"bakery": 0.7, "restaurant": 0.9, "meal_takeaway": 0.6,
	},
	models.MusicDJ: {
		"night_club": 1.0, "bar": 0.7, "cafe": 0.1,
		"bakery": 0.1, "restaurant": 0.3, "meal_takeaway": 0.2,
	},
}

// energyCategory is the primary category, except that wine venues read as
// "wine_bar" for the energy lookup.
func energyCategory(v *models.Venue, primary string) string {
	name := strings.ToLower(v.Name)
	if strings.Contains(name, "wine") || strings.Contains(name, "vino") {
		return "wine_bar"
	}
	return primary
}

func lookup(table map[string]float64, category string) float64 {
	if s, ok := table[category]; ok {
		return s
	}
	return neutralVibe
}

// VibeScore averages the energy, crowd and music fit of v. Unset dimensions
// are left out of the average; with none set the score is neutral.
func VibeScore(v *models.Venue, mood models.MoodPreferences) float64 {
	primary := taste.PrimaryCategory(v)
	sum, n := 0.0, 0

	if row, ok := energyTable[mood.Energy]; ok {
		sum += lookup(row, energyCategory(v, primary))
		n++
	}
	if row, ok := crowdTable[mood.Crowd]; ok {
		sum += lookup(row, primary)
		n++
	}
	if row, ok := musicTable[mood.Music]; ok {
		sum += lookup(row, primary)
		n++
	}

	if n == 0 {
		return neutralVibe
	}
	return sum / float64(n)
}
