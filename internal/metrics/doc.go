// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

Route Engine:
  - route_generations_total: Generation attempts (counter)
    Labels: mode (diverse, journey), outcome (route, no_candidates, no_stops, invalid)
  - route_generation_duration_seconds: Scoring through sequencing time (histogram)
  - route_candidates: Venues surviving the candidate filter (histogram)
  - route_stops: Stops per generated route (histogram)
  - route_segment_enrichment_total: Enriched segments (counter)
    Labels: source (directions, estimate)

Provider:
  - provider_requests_total: Venue and directions calls (counter)
    Labels: endpoint (nearby, text, directions), status
  - provider_request_duration_seconds: Call latency (histogram)
    Labels: endpoint

Geocode:
  - geocode_lookups_total: Lookups by answering layer (counter)
    Labels: source (memory, store, provider, not_found, error)
  - geocode_writeback_errors_total: Failed durable writes (counter)

Cache:
  - cache_hits_total, cache_misses_total, cache_evictions_total (counter)
  - cache_entries (gauge)
    Labels: cache_type (venues, geocode)

Circuit Breaker:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - circuit_breaker_requests_total: Labels name, result (counter)
  - circuit_breaker_consecutive_failures (gauge)
  - circuit_breaker_state_transitions_total: Labels name, from_state, to_state (counter)

API:
  - api_requests_total: Labels method, endpoint, status_code (counter)
  - api_request_duration_seconds: Labels method, endpoint (histogram)
  - api_active_requests (gauge)
  - api_rate_limit_hits_total: Labels endpoint (counter)

# Usage

	start := time.Now()
	// ... handle request
	metrics.RecordAPIRequest(r.Method, "/api/v1/routes", "200", time.Since(start))

# Thread Safety

All collectors are safe for concurrent use.
*/
package metrics
