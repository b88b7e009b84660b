// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package config

import (
	"fmt"
	"math"
	"net/url"
	"strings"
)

// MaxGeocodeConcurrency caps simultaneous provider lookups per batch.
const MaxGeocodeConcurrency = 10

// validLogLevels lists accepted logging.level values.
var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "error": true,
}

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validatePlaces,
		c.validateCache,
		c.validateGeocode,
		c.validateRecommend,
		c.validateSecurity,
		c.validateLogging,
	}
	for _, v := range validators {
		if err := v(); err != nil {
			return err
		}
	}
	return nil
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server timeouts must be positive")
	}
	switch c.Server.Environment {
	case "development", "production":
	default:
		return fmt.Errorf("server.environment must be development or production, got %q", c.Server.Environment)
	}
	return nil
}

// validatePlaces validates the provider connection and breaker.
// An empty API key is allowed in development so the API can run on inline venues.
func (c *Config) validatePlaces() error {
	p := &c.Places
	u, err := url.Parse(p.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("places.base_url must be an http(s) URL, got %q", p.BaseURL)
	}
	if strings.HasSuffix(p.BaseURL, "/") {
		return fmt.Errorf("places.base_url must not end with a slash")
	}
	if p.APIKey == "" && c.Server.IsProduction() {
		return fmt.Errorf("places.api_key is required in production (set PLACES_API_KEY)")
	}
	if p.Timeout <= 0 {
		return fmt.Errorf("places.timeout must be positive, got %v", p.Timeout)
	}
	if p.RequestsPerSecond < 0 || p.Burst < 1 {
		return fmt.Errorf("places rate limit must be non-negative with burst >= 1, got %v/%d", p.RequestsPerSecond, p.Burst)
	}
	if p.MaxRetries < 0 || p.RetryBaseDelay < 0 {
		return fmt.Errorf("places retry settings must be non-negative")
	}
	if p.SearchRadiusMeters < 1 || p.SearchRadiusMeters > 50000 {
		return fmt.Errorf("places.search_radius_meters must be between 1 and 50000, got %d", p.SearchRadiusMeters)
	}

	b := &p.Breaker
	if b.MaxRequests < 1 || b.Timeout <= 0 || b.Interval < 0 {
		return fmt.Errorf("places.breaker requires max_requests >= 1 and a positive timeout")
	}
	if b.FailureRatio <= 0 || b.FailureRatio > 1 {
		return fmt.Errorf("places.breaker.failure_ratio must be in (0, 1], got %v", b.FailureRatio)
	}
	return nil
}

// validateCache validates cache sizing.
func (c *Config) validateCache() error {
	if c.Cache.VenueTTL <= 0 || c.Cache.DirectionsTTL <= 0 {
		return fmt.Errorf("cache TTLs must be positive")
	}
	if c.Cache.VenueCapacity < 0 || c.Cache.DirectionsCapacity < 0 {
		return fmt.Errorf("cache capacities must be non-negative")
	}
	return nil
}

// validateGeocode validates the resolver settings.
func (c *Config) validateGeocode() error {
	g := &c.Geocode
	if !g.InMemory && g.StorePath == "" {
		return fmt.Errorf("geocode.store_path is required unless geocode.in_memory is set")
	}
	if g.StoreTTL <= 0 || g.MemoryTTL <= 0 {
		return fmt.Errorf("geocode TTLs must be positive")
	}
	if g.Concurrency < 1 || g.Concurrency > MaxGeocodeConcurrency {
		return fmt.Errorf("geocode.concurrency must be between 1 and %d, got %d", MaxGeocodeConcurrency, g.Concurrency)
	}
	if g.LookupTimeout <= 0 || g.WritebackTimeout <= 0 || g.GCInterval <= 0 {
		return fmt.Errorf("geocode lookup timeout, writeback timeout and gc interval must be positive")
	}
	if g.GCDiscardRatio <= 0 || g.GCDiscardRatio >= 1 {
		return fmt.Errorf("geocode.gc_discard_ratio must be in (0, 1), got %v", g.GCDiscardRatio)
	}
	return nil
}

// validateRecommend checks ranges only. The engine validates weight sums
// when it is constructed.
func (c *Config) validateRecommend() error {
	r := &c.Recommend
	weights := []float64{
		r.Weights.Taste, r.Weights.Vibe, r.Weights.Quality, r.Weights.Popularity, r.Weights.Proximity,
		r.Match.Cuisine, r.Match.Vibe, r.Match.Price, r.Match.Dietary,
	}
	for _, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("recommend weights must be non-negative")
		}
	}
	if r.EnrichConcurrency < 1 || r.EnrichConcurrency > MaxGeocodeConcurrency {
		return fmt.Errorf("recommend.enrich_concurrency must be between 1 and %d, got %d", MaxGeocodeConcurrency, r.EnrichConcurrency)
	}
	return nil
}

// validateSecurity validates API exposure settings.
func (c *Config) validateSecurity() error {
	s := &c.Security
	if !s.RateLimitDisabled && (s.RateLimitReqs < 1 || s.RateLimitWindow <= 0) {
		return fmt.Errorf("security rate limit requires rate_limit_reqs >= 1 and a positive window")
	}
	if s.MaxBodyBytes < 1 {
		return fmt.Errorf("security.max_body_bytes must be positive, got %d", s.MaxBodyBytes)
	}
	if c.Server.IsProduction() {
		for _, origin := range s.CORSOrigins {
			if origin == "*" {
				return fmt.Errorf("wildcard CORS origin is not allowed in production")
			}
		}
	}
	return nil
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("logging.level must be one of trace, debug, info, warn, error, got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
