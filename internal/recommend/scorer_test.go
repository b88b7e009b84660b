// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package recommend

import (
	"fmt"
	"math"
	"testing"

	"github.com/tomtom215/nightroute/internal/geo"
	"github.com/tomtom215/nightroute/internal/models"
)

func TestVibeScore(t *testing.T) {
	tests := []struct {
		name  string
		venue models.Venue
		mood  models.MoodPreferences
		want  float64
	}{
		{
			name:  "no preferences is neutral",
			venue: models.Venue{Name: "Club", Types: []string{"night_club"}},
			want:  0.5,
		},
		{
			name:  "single dimension",
			venue: models.Venue{Name: "Club", Types: []string{"night_club"}},
			mood:  models.MoodPreferences{Energy: models.EnergyElectric},
			want:  1.0,
		},
		{
			name:  "averaged dimensions",
			venue: models.Venue{Name: "Pub", Types: []string{"bar"}},
			mood:  models.MoodPreferences{Energy: models.EnergySocial, Crowd: models.CrowdMixed, Music: models.MusicBackground},
			want:  (0.9 + 0.8 + 0.8) / 3,
		},
		{
			name:  "wine name affects energy only",
			venue: models.Venue{Name: "Vino Veritas", Types: []string{"bar"}},
			mood:  models.MoodPreferences{Energy: models.EnergyChill, Crowd: models.CrowdIntimate},
			want:  (0.9 + 0.5) / 2,
		},
		{
			name:  "missing table entry is neutral",
			venue: models.Venue{Name: "Delivery Only", Types: []string{"meal_delivery"}},
			mood:  models.MoodPreferences{Music: models.MusicDJ},
			want:  0.5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VibeScore(&tt.venue, tt.mood); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("VibeScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCountMentions(t *testing.T) {
	posts := []models.SocialPost{
		{VenueName: "Copper Lounge"},
		{VenueName: "copper lounge"},
		{VenueName: "Copper Lounge Annex"},
		{VenueName: ""},
	}
	m := CountMentions(posts)
	if got := m.For("COPPER LOUNGE"); got != 2 {
		t.Errorf("mentions = %d, want 2", got)
	}
}

func TestScorer_Popularity(t *testing.T) {
	s := NewScorer(DefaultConfig())
	v := &models.Venue{Name: "Copper Lounge", Types: []string{"bar"}}
	profile := &models.UserTasteProfile{}

	tests := []struct {
		posts int
		want  float64
	}{
		{0, 0},
		{25, 0.5},
		{50, 1.0},
		{80, 1.0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d posts", tt.posts), func(t *testing.T) {
			posts := make([]models.SocialPost, tt.posts)
			for i := range posts {
				posts[i].VenueName = "copper lounge"
			}
			got := s.Score(v, profile, models.MoodPreferences{}, posts)
			if math.Abs(got.PopularityScore-tt.want) > 1e-9 {
				t.Errorf("popularity = %v, want %v", got.PopularityScore, tt.want)
			}
		})
	}
}

func TestScorer_Breakdown(t *testing.T) {
	s := NewScorer(DefaultConfig())
	v := &models.Venue{
		Name:     "Taqueria El Sol",
		Types:    []string{"restaurant"},
		Rating:   models.Float64(4.5),
		Location: &models.Coordinates{Lat: geo.Reference.Lat, Lng: geo.Reference.Lng},
	}
	profile := &models.UserTasteProfile{Tokens: []string{"tacos"}}
	got := s.Score(v, profile, models.MoodPreferences{}, nil)

	if got.QualityScore != 0.9 {
		t.Errorf("quality = %v, want 0.9", got.QualityScore)
	}
	if math.Abs(got.ProximityScore-1.0) > 1e-9 {
		t.Errorf("proximity = %v, want 1.0 at the reference point", got.ProximityScore)
	}
	want := 0.35*got.TasteScore + 0.30*got.VibeScore + 0.20*0.9 + 0.05*got.ProximityScore
	if math.Abs(got.TotalScore-want) > 1e-9 {
		t.Errorf("total = %v, want %v", got.TotalScore, want)
	}
	if len(got.MatchedTags) != 1 || got.MatchedTags[0] != "tacos" {
		t.Errorf("matched tags = %v, want [tacos]", got.MatchedTags)
	}
}

func TestScorer_TotalBounded(t *testing.T) {
	s := NewScorer(DefaultConfig())
	moods := []models.MoodPreferences{
		{},
		{Energy: models.EnergyElectric, Crowd: models.CrowdPacked, Music: models.MusicDJ},
		{Energy: models.EnergyChill, Crowd: models.CrowdIntimate, Music: models.MusicNone},
	}
	venues := []models.Venue{
		{Name: "Club Taco Wine", Types: []string{"night_club"}, Rating: models.Float64(5)},
		{Name: "x", Rating: models.Float64(0), Location: &models.Coordinates{Lat: 10, Lng: 10}},
		{Name: "Sugar Bakery", Types: []string{"bakery"}, Location: &models.Coordinates{Lat: 40.72, Lng: -73.98}},
	}
	profile := &models.UserTasteProfile{Tokens: []string{"tacos", "dancing", "wine_bar"}}
	posts := make([]models.SocialPost, 100)
	for i := range posts {
		posts[i].VenueName = "club taco wine"
	}
	for i := range venues {
		for _, mood := range moods {
			got := s.Score(&venues[i], profile, mood, posts)
			if got.TotalScore < 0 || got.TotalScore > 1 {
				t.Errorf("%s/%+v total = %v out of [0,1]", venues[i].Name, mood, got.TotalScore)
			}
		}
	}
}
