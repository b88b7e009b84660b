// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package recommend

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/nightroute/internal/geo"
	"github.com/tomtom215/nightroute/internal/logging"
	"github.com/tomtom215/nightroute/internal/metrics"
	"github.com/tomtom215/nightroute/internal/models"
)

const metersPerMile = 1609.344

// Enrich replaces estimated segment values with provider directions.
//
// Segments are looked up concurrently. A segment whose lookup fails keeps
// its estimate; no lookup failure fails the route. Totals are recomputed
// from whatever values each segment ends up with. The input route is not
// modified.
func (e *Engine) Enrich(ctx context.Context, route *models.Route) *models.Route {
	if route == nil {
		return nil
	}
	out := cloneRoute(route)
	if e.directions == nil || len(out.Segments) == 0 {
		return out
	}

	ctx, cancel := context.WithTimeout(ctx, e.config.Enrich.Timeout)
	defer cancel()

	logCtx := e.logger.With()
	if id := logging.RequestIDFromContext(ctx); id != "" {
		logCtx = logCtx.Str("request_id", id)
	}
	logger := logCtx.Logger()

	var g errgroup.Group
	g.SetLimit(e.config.Enrich.Concurrency)
	for i := range out.Segments {
		seg := &out.Segments[i]
		g.Go(func() error {
			d, err := e.directions.Directions(ctx, seg.From, seg.To)
			if err != nil || !usable(d) {
				e.enrichMisses.Add(1)
				metrics.RecordSegmentEnrichment(models.SegmentSourceEstimate)
				if err != nil {
					logger.Warn().Err(err).Int("segment", i).Msg("directions unavailable, keeping estimate")
				}
				return nil
			}
			applyDirections(seg, d)
			metrics.RecordSegmentEnrichment(models.SegmentSourceDirections)
			return nil
		})
	}
	_ = g.Wait() // goroutines never return errors

	e.enrichCount.Add(1)
	out.Totals = totals(out)
	return out
}

func usable(d *models.Directions) bool {
	return d != nil && (d.DistanceMeters > 0 || d.DurationSeconds > 0)
}

// applyDirections overwrites a segment with provider values. Missing
// distance or duration falls back to the estimate already on the segment.
func applyDirections(seg *models.Segment, d *models.Directions) {
	if d.DistanceMeters > 0 {
		seg.DistanceMiles = geo.RoundTo(float64(d.DistanceMeters)/metersPerMile, 1)
	}
	if d.DurationSeconds > 0 {
		seg.DurationMinutes = int(math.Round(float64(d.DurationSeconds) / 60.0))
	}
	seg.DistanceText = d.DistanceText
	seg.DurationText = d.DurationText
	if len(d.Path) > 0 {
		seg.Path = append([]models.Coordinates(nil), d.Path...)
	}
	seg.Source = models.SegmentSourceDirections
}

// cloneRoute copies a route deeply enough that enrichment cannot touch the original.
func cloneRoute(r *models.Route) *models.Route {
	out := *r
	out.Stops = append([]models.Stop(nil), r.Stops...)
	out.Segments = make([]models.Segment, len(r.Segments))
	for i := range r.Segments {
		out.Segments[i] = r.Segments[i]
		out.Segments[i].Path = append([]models.Coordinates(nil), r.Segments[i].Path...)
	}
	return &out
}
