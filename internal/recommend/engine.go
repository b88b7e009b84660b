// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package recommend

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/nightroute/internal/geo"
	"github.com/tomtom215/nightroute/internal/logging"
	"github.com/tomtom215/nightroute/internal/metrics"
	"github.com/tomtom215/nightroute/internal/models"
	"github.com/tomtom215/nightroute/internal/recommend/selection"
	"github.com/tomtom215/nightroute/internal/recommend/sequence"
)

// Clock returns the current time. Arrival times and the time-of-day
// ordering are derived from it.
type Clock func() time.Time

// Engine scores candidate venues and composes walkable routes.
// It holds no per-request state and is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger
	scorer *Scorer
	clock  Clock

	// directions is optional; without it Enrich returns estimates unchanged.
	directions DirectionsProvider

	requestCount atomic.Int64
	routeCount   atomic.Int64
	nullCount    atomic.Int64
	invalidCount atomic.Int64
	enrichCount  atomic.Int64
	enrichMisses atomic.Int64
}

// NewEngine creates a route engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	cfg = cfg.Clone()
	return &Engine{
		config: cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
		scorer: NewScorer(cfg),
		clock:  time.Now,
	}, nil
}

// SetClock replaces the engine clock.
func (e *Engine) SetClock(clock Clock) {
	if clock != nil {
		e.clock = clock
	}
}

// SetDirectionsProvider sets the provider used by Enrich.
func (e *Engine) SetDirectionsProvider(p DirectionsProvider) {
	e.directions = p
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// Scorer returns the engine's scorer.
func (e *Engine) Scorer() *Scorer {
	return e.scorer
}

// Stats returns a snapshot of the engine counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Requests:     e.requestCount.Load(),
		Routes:       e.routeCount.Load(),
		NullOutcomes: e.nullCount.Load(),
		Invalid:      e.invalidCount.Load(),
		Enrichments:  e.enrichCount.Load(),
		EnrichMisses: e.enrichMisses.Load(),
	}
}

// GenerateRoute builds a route from the request.
//
// A nil route with a nil error means no viable route exists for these
// inputs: no venue survived the candidate filter, or selection chose no
// stops. An error is returned only for a request that fails Validate.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) GenerateRoute(ctx context.Context, req Request) (*models.Route, error) {
	start := time.Now()
	e.requestCount.Add(1)

	if req.RequestID == "" {
		req.RequestID = logging.RequestIDFromContext(ctx)
	}
	logger := e.createRequestLogger(req)

	if err := req.Validate(); err != nil {
		e.invalidCount.Add(1)
		metrics.RecordRouteGeneration(req.Mode(), metrics.OutcomeInvalid, 0, 0, time.Since(start))
		logger.Debug().Err(err).Msg("rejected route request")
		return nil, err
	}

	candidates := e.filterCandidates(req.Venues)
	if len(candidates) == 0 {
		e.nullCount.Add(1)
		metrics.RecordRouteGeneration(req.Mode(), metrics.OutcomeNoCandidates, 0, 0, time.Since(start))
		logger.Debug().Int("venues", len(req.Venues)).Msg("no viable candidates")
		return nil, nil
	}

	scored := e.scoreCandidates(candidates, &req)

	selector := selection.ForMood(e.config.Selection, req.SpecificJourney)
	chosen := selector.Select(scored, req.Mood)
	if len(chosen) == 0 {
		e.nullCount.Add(1)
		metrics.RecordRouteGeneration(req.Mode(), metrics.OutcomeNoStops, len(candidates), 0, time.Since(start))
		logger.Debug().Int("candidates", len(candidates)).Msg("no stops selected")
		return nil, nil
	}

	now := e.clock()
	ordered := sequence.Order(chosen, now.Hour(), e.config.Sequence.PreserveTypeOrder)
	stops := sequence.Schedule(ordered, now, e.config.Sequence)
	route := compose(stops, req.Mood)

	e.routeCount.Add(1)
	metrics.RecordRouteGeneration(req.Mode(), metrics.OutcomeRoute, len(candidates), len(stops), time.Since(start))
	logger.Debug().
		Int("candidates", len(candidates)).
		Int("stops", len(stops)).
		Str("distance", route.Totals.Distance).
		Dur("latency", time.Since(start)).
		Msg("route generated")

	return route, nil
}

// createRequestLogger creates a logger with request context.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Str("mode", req.Mode()).
		Int("venues", len(req.Venues)).
		Logger()
}

// filterCandidates keeps venues with a name, valid coordinates and a rating
// of at least MinRating. Unrated venues are dropped.
func (e *Engine) filterCandidates(venues []models.Venue) []models.Venue {
	out := make([]models.Venue, 0, len(venues))
	for i := range venues {
		v := &venues[i]
		if v.Name == "" || v.Location == nil || !v.Location.Valid() {
			continue
		}
		if v.Rating == nil || *v.Rating < e.config.MinRating {
			continue
		}
		out = append(out, *v)
	}
	return out
}

func (e *Engine) scoreCandidates(candidates []models.Venue, req *Request) []models.ScoredVenue {
	mentions := CountMentions(req.SocialPosts)
	scored := make([]models.ScoredVenue, len(candidates))
	for i := range candidates {
		scored[i] = models.ScoredVenue{
			Venue: candidates[i],
			Score: e.scorer.ScoreWithMentions(&candidates[i], &req.Profile, req.Mood, mentions),
		}
	}
	return scored
}

// compose links timed stops with estimated walking segments and totals.
func compose(stops []models.Stop, mood models.MoodPreferences) *models.Route {
	segments := make([]models.Segment, 0, max(len(stops)-1, 0))
	for i := 0; i+1 < len(stops); i++ {
		from, to := stops[i].Venue.Location, stops[i+1].Venue.Location
		miles := geo.Between(from, to)
		segments = append(segments, models.Segment{
			From:            from,
			To:              to,
			DistanceMiles:   geo.RoundTo(miles, 1),
			DurationMinutes: geo.WalkingMinutes(miles),
			Source:          models.SegmentSourceEstimate,
		})
	}

	route := &models.Route{
		Stops:    stops,
		Segments: segments,
		Mood:     mood,
	}
	route.Totals = totals(route)
	return route
}

// totals aggregates segment distances and walking time with stop stays.
func totals(route *models.Route) models.RouteTotals {
	miles := 0.0
	walking := 0
	for i := range route.Segments {
		miles += route.Segments[i].DistanceMiles
		walking += route.Segments[i].DurationMinutes
	}
	stays := 0
	for i := range route.Stops {
		stays += route.Stops[i].DurationMinutes
	}
	hours := geo.RoundTo(float64(stays+walking)/60.0, 1)

	return models.RouteTotals{
		Distance:    fmt.Sprintf("%.1f mi", miles),
		WalkingTime: fmt.Sprintf("%d min", walking),
		TotalTime:   fmt.Sprintf("%.1f hrs", hours),
	}
}
