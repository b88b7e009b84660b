// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/nightroute/internal/models"
)

// GeocodeRequest is the body of POST /api/v1/geocode.
type GeocodeRequest struct {
	Names []string `json:"names" validate:"required,min=1,max=100,dive,required,max=200"`
}

// GeocodeResponse maps each resolved name to its coordinates. Names that
// could not be resolved are listed in Unresolved.
type GeocodeResponse struct {
	Resolved   map[string]models.Coordinates `json:"resolved"`
	Unresolved []string                      `json:"unresolved"`
}

// Geocode handles POST /api/v1/geocode.
func (h *Handler) Geocode(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req GeocodeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if h.resolver == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeNotConfigured,
			"Geocoding is not configured", ErrProviderNotConfigured)
		return
	}

	resolved := h.resolver.ResolveBatch(r.Context(), req.Names)

	unresolved := []string{}
	seen := make(map[string]bool, len(req.Names))
	for _, name := range req.Names {
		if _, ok := resolved[name]; ok || seen[name] {
			continue
		}
		seen[name] = true
		unresolved = append(unresolved, name)
	}

	respondSuccess(w, r, GeocodeResponse{
		Resolved:   resolved,
		Unresolved: unresolved,
	}, start)
}
