// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/nightroute/internal/models"
	"github.com/tomtom215/nightroute/internal/recommend"
)

// Version is the reported service version. Overridden at build time with
// -ldflags "-X github.com/tomtom215/nightroute/internal/api.Version=...".
var Version = "dev"

// HealthStatus is the data of GET /api/v1/health.
type HealthStatus struct {
	Status      string                 `json:"status"`
	Version     string                 `json:"version"`
	Environment string                 `json:"environment"`
	Uptime      float64                `json:"uptime_seconds"`
	Places      bool                   `json:"places_configured"`
	Geocode     bool                   `json:"geocode_configured"`
	Engine      recommend.Stats        `json:"engine"`
	Components  map[string]interface{} `json:"components,omitempty"`
}

// Health handles GET /api/v1/health.
//
// A health check reporting an open circuit makes the service "degraded":
// routes from supplied venues still work, but center searches and
// enrichment do not.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	health := HealthStatus{
		Status:      "healthy",
		Version:     Version,
		Environment: h.config.Server.Environment,
		Uptime:      time.Since(h.startTime).Seconds(),
		Places:      h.places != nil,
		Geocode:     h.resolver != nil,
		Engine:      h.engine.Stats(),
	}

	if len(h.checks) > 0 {
		health.Components = make(map[string]interface{}, len(h.checks))
		for _, c := range h.checks {
			report := c.Report()
			health.Components[c.Name] = report
			if s, ok := report.(string); ok && s == "open" {
				health.Status = "degraded"
			}
		}
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     health,
		Metadata: metadata(r, time.Time{}),
	})
}
