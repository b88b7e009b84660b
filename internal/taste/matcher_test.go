// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package taste

import (
	"math"
	"testing"

	"github.com/tomtom215/nightroute/internal/models"
)

func venue(name string, types ...string) *models.Venue {
	return &models.Venue{ID: name, Name: name, Types: types}
}

func TestOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want float64
	}{
		{"smaller left", []string{"tacos"}, []string{"tacos", "sushi", "coffee"}, 1.0},
		{"smaller right", []string{"tacos", "sushi", "coffee"}, []string{"tacos"}, 1.0},
		{"partial", []string{"tacos", "sushi"}, []string{"tacos", "pizza", "ramen"}, 0.5},
		{"disjoint", []string{"tacos"}, []string{"sushi"}, 0},
		{"empty left", nil, []string{"sushi"}, 0},
		{"empty right", []string{"sushi"}, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := overlap(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("overlap(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMatchScore_EmptyProfile(t *testing.T) {
	got := MatchScore(venue("Taqueria El Sol", "restaurant"), &models.UserTasteProfile{})
	if got.Score != 0 || got.Tier != models.TierOther || len(got.MatchedTags) != 0 {
		t.Errorf("empty profile = %+v, want score 0 tier other", got)
	}
	if got := MatchScore(venue("x"), nil); got.Score != 0 {
		t.Errorf("nil profile score = %v", got.Score)
	}
}

func TestMatchScore_DirectHitFloors(t *testing.T) {
	profile := &models.UserTasteProfile{Tokens: []string{"tacos", "craft_cocktails"}}

	single := MatchScore(venue("Taqueria El Sol", "restaurant"), profile)
	if single.Score < SingleHitFloor {
		t.Errorf("single hit score = %v, want >= %v", single.Score, SingleHitFloor)
	}
	if single.Tier != models.TierGood {
		t.Errorf("single hit tier = %v, want good", single.Tier)
	}

	double := MatchScore(venue("Taco Cocktail Cantina", "bar"), profile)
	if double.Score < MultiHitFloor {
		t.Errorf("double hit score = %v, want >= %v", double.Score, MultiHitFloor)
	}
	if double.Tier != models.TierPerfect {
		t.Errorf("double hit tier = %v, want perfect", double.Tier)
	}
	if len(double.MatchedTags) != 2 {
		t.Errorf("matched tags = %v, want tacos and craft_cocktails", double.MatchedTags)
	}
}

func TestMatchScore_NoVibePreferenceIsNeutral(t *testing.T) {
	profile := &models.UserTasteProfile{Tokens: []string{"sushi"}}
	got := MatchScore(venue("Corner Spot", "restaurant"), profile)
	if got.Vibe != Neutral {
		t.Errorf("vibe = %v, want neutral %v", got.Vibe, Neutral)
	}
	// cuisine 0, vibe 0.5, price 0.5, dietary 1
	want := 0.3*0.5 + 0.2*0.5 + 0.1
	if math.Abs(got.Score-want) > 1e-9 {
		t.Errorf("score = %v, want %v", got.Score, want)
	}
}

func TestMatchScore_Price(t *testing.T) {
	tests := []struct {
		name     string
		level    *int
		accepted []string
		want     float64
		tagged   bool
	}{
		{"no preference", models.Int(2), nil, 0.5, false},
		{"no venue price", nil, []string{"$$"}, 0.5, false},
		{"exact", models.Int(2), []string{"$$"}, 1.0, true},
		{"tier zero is one dollar", models.Int(0), []string{"$"}, 1.0, true},
		{"one away", models.Int(3), []string{"$$"}, 0.5, false},
		{"far", models.Int(4), []string{"$"}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := venue("Plain Room", "restaurant")
			v.PriceLevel = tt.level
			profile := &models.UserTasteProfile{
				Tokens:   []string{"sushi"},
				FineTune: models.FineTune{PriceRange: tt.accepted},
			}
			got := MatchScore(v, profile)
			if got.Price != tt.want {
				t.Errorf("price = %v, want %v", got.Price, tt.want)
			}
			hasSymbol := false
			for _, tag := range got.MatchedTags {
				if tag[0] == '$' {
					hasSymbol = true
				}
			}
			if hasSymbol != tt.tagged {
				t.Errorf("price symbol in tags = %v, want %v (%v)", hasSymbol, tt.tagged, got.MatchedTags)
			}
		})
	}
}

func TestMatchScore_Dietary(t *testing.T) {
	profile := &models.UserTasteProfile{
		Tokens:   []string{"tacos"},
		FineTune: models.FineTune{Avoid: []string{"pork_belly"}},
	}
	if got := MatchScore(venue("The PORK BELLY Shack"), profile); got.Dietary != 0 {
		t.Errorf("dietary = %v, want 0", got.Dietary)
	}
	if got := MatchScore(venue("Green Leaf"), profile); got.Dietary != 1 {
		t.Errorf("dietary = %v, want 1", got.Dietary)
	}
}

func TestMatchScore_UnknownTokensIgnored(t *testing.T) {
	profile := &models.UserTasteProfile{Tokens: []string{"not_a_token", "tacos"}}
	got := MatchScore(venue("Taqueria", "restaurant"), profile)
	if got.Cuisine != 1.0 {
		t.Errorf("cuisine = %v, want 1.0", got.Cuisine)
	}
}

func TestMatchScore_Bounded(t *testing.T) {
	profile := &models.UserTasteProfile{
		Tokens:   []string{"tacos", "coffee", "desserts", "dancing", "cozy", "lively"},
		FineTune: models.FineTune{PriceRange: []string{"$", "$$"}},
	}
	names := []string{"Taco Coffee Dessert Club Lounge", "", "Night Owl", "Bakery Bar"}
	for _, n := range names {
		v := venue(n, "cafe", "bakery", "night_club", "bar")
		v.PriceLevel = models.Int(1)
		got := MatchScore(v, profile)
		if got.Score < 0 || got.Score > 1 {
			t.Errorf("%q score %v out of range", n, got.Score)
		}
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		score float64
		want  models.Tier
	}{
		{0.8, models.TierPerfect},
		{0.79, models.TierGood},
		{0.5, models.TierGood},
		{0.49, models.TierOther},
	}
	for _, tt := range tests {
		if got := TierFor(tt.score); got != tt.want {
			t.Errorf("TierFor(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestWeightsValidate(t *testing.T) {
	if err := DefaultWeights().Validate(); err != nil {
		t.Errorf("default weights invalid: %v", err)
	}
	if err := (Weights{Cuisine: 0.5, Vibe: 0.5, Price: 0.5}).Validate(); err == nil {
		t.Error("expected error for weights summing to 1.5")
	}
}
