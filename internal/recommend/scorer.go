// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package recommend

import (
	"math"
	"strings"

	"github.com/tomtom215/nightroute/internal/geo"
	"github.com/tomtom215/nightroute/internal/models"
	"github.com/tomtom215/nightroute/internal/taste"
)

// Mentions counts social posts per lowercase venue name.
type Mentions map[string]int

// CountMentions tallies posts by venue name, case-insensitively.
func CountMentions(posts []models.SocialPost) Mentions {
	m := make(Mentions, len(posts))
	for i := range posts {
		if name := strings.ToLower(posts[i].VenueName); name != "" {
			m[name]++
		}
	}
	return m
}

// For returns the mention count of a venue display name.
func (m Mentions) For(name string) int {
	return m[strings.ToLower(name)]
}

// Scorer computes composite route scores. It is stateless after construction.
type Scorer struct {
	weights    ScoreWeights
	saturation float64
	reference  models.Coordinates
	matcher    *taste.Matcher
}

// NewScorer creates a scorer from cfg.
func NewScorer(cfg *Config) *Scorer {
	return &Scorer{
		weights:    cfg.Weights,
		saturation: float64(cfg.PopularitySaturation),
		reference:  cfg.Reference,
		matcher:    taste.NewMatcher(cfg.Match),
	}
}

// Score computes the breakdown for a single venue. posts are filtered by
// name here; use ScoreWithMentions when scoring many venues.
func (s *Scorer) Score(v *models.Venue, profile *models.UserTasteProfile, mood models.MoodPreferences, posts []models.SocialPost) models.ScoreBreakdown {
	return s.ScoreWithMentions(v, profile, mood, CountMentions(posts))
}

// ScoreWithMentions computes the breakdown using pre-counted mentions.
func (s *Scorer) ScoreWithMentions(v *models.Venue, profile *models.UserTasteProfile, mood models.MoodPreferences, mentions Mentions) models.ScoreBreakdown {
	match := s.matcher.Match(v, profile)

	vibe := VibeScore(v, mood)

	quality := 0.0
	if v.Rating != nil {
		quality = clamp01(*v.Rating / 5.0)
	}

	popularity := math.Min(float64(mentions.For(v.Name))/s.saturation, 1.0)

	proximity := 0.0
	if v.Location != nil {
		proximity = 1.0 / (1.0 + geo.Between(s.reference, *v.Location))
	}

	total := s.weights.Taste*match.Score +
		s.weights.Vibe*vibe +
		s.weights.Quality*quality +
		s.weights.Popularity*popularity +
		s.weights.Proximity*proximity

	return models.ScoreBreakdown{
		TasteScore:      match.Score,
		VibeScore:       vibe,
		QualityScore:    quality,
		PopularityScore: popularity,
		ProximityScore:  proximity,
		TotalScore:      clamp01(total),
		MatchedTags:     match.MatchedTags,
		Tier:            match.Tier,
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
