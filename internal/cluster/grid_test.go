// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package cluster

import (
	"math"
	"testing"

	"github.com/tomtom215/nightroute/internal/models"
)

func matched(id string, lat, lng float64, tier models.Tier) models.MatchedVenue {
	return models.MatchedVenue{
		Venue: models.Venue{ID: id, Name: id, Location: &models.Coordinates{Lat: lat, Lng: lng}},
		Match: models.MatchResult{Tier: tier},
	}
}

func TestVenues_SingletonsAtHighZoom(t *testing.T) {
	venues := []models.MatchedVenue{
		matched("a", 40.7265, -73.9815, models.TierGood),
		matched("b", 40.7265, -73.9815, models.TierOther),
		matched("c", 40.7266, -73.9816, models.TierPerfect),
	}
	for _, zoom := range []int{15, 16, 18} {
		got := Venues(venues, zoom)
		if len(got) != len(venues) {
			t.Fatalf("zoom %d: got %d clusters, want %d", zoom, len(got), len(venues))
		}
		for i, c := range got {
			if c.Count != 1 || c.Items[0].Venue.ID != venues[i].Venue.ID {
				t.Errorf("zoom %d cluster %d = %+v", zoom, i, c)
			}
			if c.Tier != venues[i].Match.Tier {
				t.Errorf("zoom %d cluster %d tier = %v, want %v", zoom, i, c.Tier, venues[i].Match.Tier)
			}
		}
	}
}

func TestVenues_BucketsAndCentroid(t *testing.T) {
	venues := []models.MatchedVenue{
		matched("a", 40.721, -73.981, models.TierGood),
		matched("b", 40.723, -73.983, models.TierGood),
		matched("c", 40.801, -73.951, models.TierPerfect),
	}
	got := Venues(venues, 12)
	if len(got) != 2 {
		t.Fatalf("got %d clusters, want 2", len(got))
	}
	first := got[0]
	if first.Count != 2 {
		t.Fatalf("first cluster count = %d, want 2", first.Count)
	}
	if math.Abs(first.Center.Lat-40.722) > 1e-9 || math.Abs(first.Center.Lng+73.982) > 1e-9 {
		t.Errorf("centroid = %+v, want (40.722, -73.982)", first.Center)
	}
	if first.Tier != models.TierGood {
		t.Errorf("tier = %v, want good", first.Tier)
	}
}

func TestVenues_TierTieBreak(t *testing.T) {
	tests := []struct {
		name  string
		tiers []models.Tier
		want  models.Tier
	}{
		{"perfect beats good on tie", []models.Tier{models.TierGood, models.TierPerfect}, models.TierPerfect},
		{"good beats other on tie", []models.Tier{models.TierOther, models.TierGood}, models.TierGood},
		{"plurality other", []models.Tier{models.TierOther, models.TierOther, models.TierPerfect}, models.TierOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var venues []models.MatchedVenue
			for i, tier := range tt.tiers {
				venues = append(venues, matched(string(rune('a'+i)), 40.7211, -73.9811, tier))
			}
			got := Venues(venues, 10)
			if len(got) != 1 {
				t.Fatalf("got %d clusters, want 1", len(got))
			}
			if got[0].Tier != tt.want {
				t.Errorf("tier = %v, want %v", got[0].Tier, tt.want)
			}
		})
	}
}

func TestVenues_SkipsMissingCoordinates(t *testing.T) {
	venues := []models.MatchedVenue{
		{Venue: models.Venue{ID: "nowhere"}},
		matched("a", 40.72, -73.98, models.TierGood),
	}
	for _, zoom := range []int{12, 17} {
		if got := Venues(venues, zoom); len(got) != 1 {
			t.Errorf("zoom %d: got %d clusters, want 1", zoom, len(got))
		}
	}
	if got := Venues(nil, 12); got == nil || len(got) != 0 {
		t.Errorf("empty input = %v, want empty slice", got)
	}
}

func TestPosts(t *testing.T) {
	posts := []models.SocialPost{
		{ID: "1", Location: &models.Coordinates{Lat: 40.7211, Lng: -73.9811}},
		{ID: "2", Location: &models.Coordinates{Lat: 40.7212, Lng: -73.9812}},
	}
	if got := Posts(posts, 15); len(got) != 1 || got[0].Tier != "" {
		t.Errorf("zoom 15 = %+v, want one untiered cluster", got)
	}
	if got := Posts(posts, 16); len(got) != 2 {
		t.Errorf("zoom 16: got %d clusters, want 2", len(got))
	}
}

func TestCellSizes(t *testing.T) {
	venue := map[int]float64{10: 0.02, 12: 0.02, 13: 0.01, 14: 0.005}
	for zoom, want := range venue {
		if got := VenueCellSize(zoom); got != want {
			t.Errorf("VenueCellSize(%d) = %v, want %v", zoom, got, want)
		}
	}
	post := map[int]float64{12: 0.02, 13: 0.005, 15: 0.005}
	for zoom, want := range post {
		if got := PostCellSize(zoom); got != want {
			t.Errorf("PostCellSize(%d) = %v, want %v", zoom, got, want)
		}
	}
}
