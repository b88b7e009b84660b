// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package taste

import (
	"fmt"
	"math"
	"strings"

	"github.com/tomtom215/nightroute/internal/models"
)

// Tier thresholds on the final match score.
const (
	PerfectThreshold = 0.8
	GoodThreshold    = 0.5
)

// Direct-hit floors. A venue that carries tokens the user explicitly chose is
// never scored below these.
const (
	MultiHitFloor  = 0.85
	SingleHitFloor = 0.6
)

// Neutral is the sub-score used when a dimension has nothing to compare.
const Neutral = 0.5

// Weights controls how the four match dimensions are combined.
type Weights struct {
	Cuisine float64 `koanf:"cuisine" validate:"gte=0,lte=1"`
	Vibe    float64 `koanf:"vibe" validate:"gte=0,lte=1"`
	Price   float64 `koanf:"price" validate:"gte=0,lte=1"`
	Dietary float64 `koanf:"dietary" validate:"gte=0,lte=1"`
}

// DefaultWeights returns the standard 0.4/0.3/0.2/0.1 split.
func DefaultWeights() Weights {
	return Weights{Cuisine: 0.4, Vibe: 0.3, Price: 0.2, Dietary: 0.1}
}

// Sum returns the total weight.
func (w Weights) Sum() float64 {
	return w.Cuisine + w.Vibe + w.Price + w.Dietary
}

// Validate checks that the weights sum to 1.
func (w Weights) Validate() error {
	if math.Abs(w.Sum()-1.0) > 1e-6 {
		return fmt.Errorf("taste weights must sum to 1.0, got %.4f", w.Sum())
	}
	return nil
}

// Matcher scores venues against a user taste profile. It is stateless and
// safe for concurrent use.
type Matcher struct {
	weights Weights
}

// NewMatcher creates a matcher. Zero weights fall back to DefaultWeights.
func NewMatcher(w Weights) *Matcher {
	if w.Sum() == 0 {
		w = DefaultWeights()
	}
	return &Matcher{weights: w}
}

var defaultMatcher = NewMatcher(DefaultWeights())

// MatchScore scores v against profile with the default weights.
func MatchScore(v *models.Venue, profile *models.UserTasteProfile) models.MatchResult {
	return defaultMatcher.Match(v, profile)
}

// Match computes a deterministic match result in [0,1] for v.
func (m *Matcher) Match(v *models.Venue, profile *models.UserTasteProfile) models.MatchResult {
	if profile == nil || len(profile.Tokens) == 0 {
		return models.MatchResult{MatchedTags: []string{}, Tier: models.TierOther}
	}

	userFood, userVibe := splitProfile(profile.Tokens)
	tags := InferTags(v)
	matched := make([]string, 0, 4)

	cuisine := 0.0
	if len(userFood) > 0 {
		cuisine = overlap(tags.Cuisine, userFood)
	}

	vibe := Neutral
	if len(userVibe) > 0 {
		vibe = overlap(tags.Vibe, userVibe)
	}

	hits := 0
	for _, t := range append(append([]string{}, userFood...), userVibe...) {
		if tags.Has(t) {
			hits++
			matched = append(matched, t)
		}
	}

	price, priceTag := priceScore(v, profile.FineTune.PriceRange)
	if priceTag != "" {
		matched = append(matched, priceTag)
	}

	dietary := dietaryScore(v, profile.FineTune.Avoid)

	score := m.weights.Cuisine*cuisine +
		m.weights.Vibe*vibe +
		m.weights.Price*price +
		m.weights.Dietary*dietary

	switch {
	case hits >= 2:
		score = math.Max(score, MultiHitFloor)
	case hits == 1:
		score = math.Max(score, SingleHitFloor)
	}
	score = clamp01(score)

	return models.MatchResult{
		Score:       score,
		MatchedTags: matched,
		Tier:        TierFor(score),
		Cuisine:     cuisine,
		Vibe:        vibe,
		Price:       price,
		Dietary:     dietary,
	}
}

// TierFor maps a match score to its tier.
func TierFor(score float64) models.Tier {
	switch {
	case score >= PerfectThreshold:
		return models.TierPerfect
	case score >= GoodThreshold:
		return models.TierGood
	default:
		return models.TierOther
	}
}

// splitProfile partitions user tokens by vocabulary, dropping unknown and
// duplicate tokens.
func splitProfile(tokens []string) (food, vibe []string) {
	for _, t := range tokens {
		t = strings.ToLower(strings.TrimSpace(t))
		switch {
		case FoodTokens.Has(t) && !contains(food, t):
			food = append(food, t)
		case VibeTokens.Has(t) && !contains(vibe, t):
			vibe = append(vibe, t)
		}
	}
	return food, vibe
}

// overlap is |a∩b| / min(|a|,|b|), zero when either side is empty.
func overlap(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	n := 0
	for _, x := range a {
		if contains(b, x) {
			n++
		}
	}
	return float64(n) / float64(min(len(a), len(b)))
}

// PriceSymbol maps a provider price tier to "$".."$$$$". Tier 0 counts as "$".
func PriceSymbol(level int) string {
	switch {
	case level <= 1:
		return "$"
	case level >= 4:
		return "$$$$"
	default:
		return strings.Repeat("$", level)
	}
}

func priceScore(v *models.Venue, accepted []string) (float64, string) {
	if len(accepted) == 0 || v.PriceLevel == nil {
		return Neutral, ""
	}
	symbol := PriceSymbol(*v.PriceLevel)
	best := 0.0
	for _, a := range accepted {
		if a == symbol {
			return 1.0, symbol
		}
		if d := len(a) - len(symbol); d == 1 || d == -1 {
			best = 0.5
		}
	}
	return best, ""
}

func dietaryScore(v *models.Venue, avoid []string) float64 {
	name := strings.ToLower(v.Name)
	for _, a := range avoid {
		kw := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(a, "_", " ")))
		if kw != "" && strings.Contains(name, kw) {
			return 0
		}
	}
	return 1
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
