// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package taste

import (
	"strings"

	"github.com/tomtom215/nightroute/internal/models"
)

// Tags holds the taste tokens inferred for a venue, in inference order.
type Tags struct {
	Cuisine []string
	Vibe    []string
}

// All returns cuisine then vibe tokens.
func (t Tags) All() []string {
	out := make([]string, 0, len(t.Cuisine)+len(t.Vibe))
	out = append(out, t.Cuisine...)
	return append(out, t.Vibe...)
}

// Has reports whether token was inferred in either set.
func (t Tags) Has(token string) bool {
	return contains(t.Cuisine, token) || contains(t.Vibe, token)
}

// InferTags infers cuisine and vibe tokens from provider types and name keywords.
func InferTags(v *models.Venue) Tags {
	var tags Tags
	add := func(token string) {
		switch {
		case FoodTokens.Has(token):
			if !contains(tags.Cuisine, token) {
				tags.Cuisine = append(tags.Cuisine, token)
			}
		case VibeTokens.Has(token):
			if !contains(tags.Vibe, token) {
				tags.Vibe = append(tags.Vibe, token)
			}
		}
	}

	for _, t := range v.Types {
		for _, token := range categoryTokens[t] {
			add(token)
		}
	}

	name := strings.ToLower(v.Name)
	for _, rule := range nameKeywords {
		if strings.Contains(name, rule.pattern) {
			add(rule.token)
		}
	}

	return tags
}

// PrimaryCategory resolves the dominant provider type by fixed priority,
// defaulting to "restaurant".
func PrimaryCategory(v *models.Venue) string {
	for _, c := range categoryPriority {
		if v.HasType(c) {
			return c
		}
	}
	return DefaultCategory
}

// CuisineCategory returns the coarse name-derived cuisine group, falling back
// to the primary category.
func CuisineCategory(v *models.Venue) string {
	name := strings.ToLower(v.Name)
	for _, rule := range cuisineKeywords {
		if strings.Contains(name, rule.pattern) {
			return rule.token
		}
	}
	return PrimaryCategory(v)
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
