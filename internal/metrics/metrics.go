// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Route generation outcomes.
const (
	OutcomeRoute        = "route"
	OutcomeNoCandidates = "no_candidates"
	OutcomeNoStops      = "no_stops"
	OutcomeInvalid      = "invalid"
)

var (
	// Route Engine Metrics
	RouteGenerations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "route_generations_total",
			Help: "Total number of route generation requests by outcome",
		},
		[]string{"mode", "outcome"}, // mode: "diverse", "journey"
	)

	RouteGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "route_generation_duration_seconds",
			Help:    "Duration of route generation (scoring, selection, sequencing) in seconds",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
	)

	RouteCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "route_candidates",
			Help:    "Number of venues surviving the candidate filter",
			Buckets: []float64{0, 1, 5, 10, 20, 50, 100, 200},
		},
	)

	RouteStops = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "route_stops",
			Help:    "Number of stops in generated routes",
			Buckets: []float64{1, 2, 3, 4},
		},
	)

	SegmentEnrichment = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "route_segment_enrichment_total",
			Help: "Total number of enriched route segments by resulting source",
		},
		[]string{"source"}, // "directions", "estimate"
	)

	// Provider Metrics
	ProviderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_requests_total",
			Help: "Total number of venue/directions provider requests",
		},
		[]string{"endpoint", "status"},
	)

	ProviderRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "provider_request_duration_seconds",
			Help:    "Venue/directions provider request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// Geocode Metrics
	GeocodeLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geocode_lookups_total",
			Help: "Total number of name-to-coordinate lookups by answering layer",
		},
		[]string{"source"}, // "memory", "store", "provider", "not_found", "error"
	)

	GeocodeWritebackErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "geocode_writeback_errors_total",
			Help: "Total number of failed durable cache writes",
		},
	)

	// Cache Metrics (General)
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"}, // "venues", "geocode"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of cache evictions (TTL expiry)",
		},
		[]string{"cache_type"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)
)

// RecordRouteGeneration records one route generation attempt.
func RecordRouteGeneration(mode, outcome string, candidates, stops int, duration time.Duration) {
	RouteGenerations.WithLabelValues(mode, outcome).Inc()
	RouteGenerationDuration.Observe(duration.Seconds())
	if outcome == OutcomeInvalid {
		return
	}
	RouteCandidates.Observe(float64(candidates))
	if outcome == OutcomeRoute {
		RouteStops.Observe(float64(stops))
	}
}

// RecordSegmentEnrichment records the source a segment ended up with.
func RecordSegmentEnrichment(source string) {
	SegmentEnrichment.WithLabelValues(source).Inc()
}

// RecordProviderRequest records a provider call
func RecordProviderRequest(endpoint, status string, duration time.Duration) {
	ProviderRequests.WithLabelValues(endpoint, status).Inc()
	ProviderRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordGeocodeLookup records which layer answered a lookup
func RecordGeocodeLookup(source string) {
	GeocodeLookups.WithLabelValues(source).Inc()
}

// RecordCacheAccess records a cache hit or miss
func RecordCacheAccess(cacheType string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cacheType).Inc()
	} else {
		CacheMisses.WithLabelValues(cacheType).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
