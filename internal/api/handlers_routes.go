// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/nightroute/internal/logging"
	"github.com/tomtom215/nightroute/internal/models"
	"github.com/tomtom215/nightroute/internal/places"
	"github.com/tomtom215/nightroute/internal/recommend"
)

// nearbyTypes are the provider categories searched when a route request
// names a center. Together they cover every stop type.
var nearbyTypes = []string{"restaurant", "bar", "night_club", "cafe", "bakery"}

// RouteRequest is the body of POST /api/v1/routes.
//
// Venues are used as given. When Venues is empty and Center is set, the
// candidate venues are fetched from the places provider around Center.
type RouteRequest struct {
	Venues       []models.Venue      `json:"venues" validate:"max=500"`
	Center       *models.Coordinates `json:"center,omitempty"`
	RadiusMeters int                 `json:"radius_meters,omitempty" validate:"omitempty,min=100,max=5000"`

	Profile     models.UserTasteProfile `json:"profile"`
	Mood        models.MoodPreferences  `json:"mood"`
	SocialPosts []models.SocialPost     `json:"social_posts,omitempty" validate:"max=1000"`

	SpecificJourney bool `json:"specific_journey"`

	// StopTypes overrides Mood.StopTypes when set.
	StopTypes []models.StopType `json:"stop_types,omitempty" validate:"max=4,dive,oneof=dinner drinks dessert coffee"`

	// Enrich replaces estimated walking segments with provider directions.
	Enrich bool `json:"enrich"`
}

// normalize folds the top-level stop types into the mood, and derives the
// stop count of a specific journey from its stop types when it is missing.
func (req *RouteRequest) normalize() {
	if len(req.StopTypes) > 0 {
		req.Mood.StopTypes = req.StopTypes
	}
	if req.SpecificJourney && req.Mood.NumberOfStops == 0 {
		req.Mood.NumberOfStops = min(max(len(req.Mood.StopTypes), recommend.MinStops), recommend.MaxStops)
	}
}

// GenerateRoute handles POST /api/v1/routes.
//
// A request that yields no viable route is not an error: the response is a
// success with null data and the message "no route".
func (h *Handler) GenerateRoute(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req RouteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	venues := req.Venues
	if len(venues) == 0 && req.Center != nil {
		if h.places == nil {
			respondError(w, r, http.StatusServiceUnavailable, ErrCodeNotConfigured,
				"Venue search is not configured; supply venues instead", ErrProviderNotConfigured)
			return
		}
		radius := req.RadiusMeters
		if radius == 0 {
			radius = h.config.Places.SearchRadiusMeters
		}
		fetched, err := h.fetchVenues(r.Context(), *req.Center, radius)
		if err != nil {
			respondError(w, r, http.StatusServiceUnavailable, ErrCodeProviderUnavailable,
				"Venue search is temporarily unavailable", err)
			return
		}
		venues = fetched
	}

	route, err := h.engine.GenerateRoute(r.Context(), recommend.Request{
		Venues:          venues,
		Profile:         req.Profile,
		Mood:            req.Mood,
		SocialPosts:     req.SocialPosts,
		SpecificJourney: req.SpecificJourney,
	})
	if err != nil {
		if errors.Is(err, recommend.ErrInvalidRequest) {
			respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
			return
		}
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternalError, "Failed to generate route", err)
		return
	}

	if route == nil {
		respondEmpty(w, r, MessageNoRoute, start)
		return
	}

	if req.Enrich {
		route = h.engine.Enrich(r.Context(), route)
	}

	respondSuccess(w, r, route, start)
}

// fetchVenues searches every nearby type concurrently and merges the results
// by place ID, keeping first-seen order per type. A type with no results
// contributes nothing; any other provider error fails the fetch.
func (h *Handler) fetchVenues(ctx context.Context, center models.Coordinates, radiusMeters int) ([]models.Venue, error) {
	results := make([][]models.Venue, len(nearbyTypes))

	g, gctx := errgroup.WithContext(ctx)
	for i, placeType := range nearbyTypes {
		g.Go(func() error {
			venues, err := h.places.NearbySearch(gctx, center, radiusMeters, placeType)
			if err != nil {
				if errors.Is(err, places.ErrNoResults) {
					return nil
				}
				return fmt.Errorf("nearby search %s: %w", placeType, err)
			}
			results[i] = venues
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []models.Venue
	seen := make(map[string]struct{})
	for _, venues := range results {
		for i := range venues {
			if _, dup := seen[venues[i].ID]; dup {
				continue
			}
			seen[venues[i].ID] = struct{}{}
			merged = append(merged, venues[i])
		}
	}

	logging.CtxDebug(ctx).
		Int("venues", len(merged)).
		Int("radius_meters", radiusMeters).
		Msg("fetched candidate venues")

	return merged, nil
}
