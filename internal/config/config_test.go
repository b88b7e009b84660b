// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package config

import (
	"strings"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaultConfig().Validate() = %v", err)
	}
	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q, want 0.0.0.0:8080", cfg.Server.Addr())
	}
	if cfg.Geocode.Concurrency != MaxGeocodeConcurrency {
		t.Errorf("Geocode.Concurrency = %d, want %d", cfg.Geocode.Concurrency, MaxGeocodeConcurrency)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"unknown environment", func(c *Config) { c.Server.Environment = "staging" }, "server.environment"},
		{"base url not http", func(c *Config) { c.Places.BaseURL = "ftp://example.com" }, "places.base_url"},
		{"base url trailing slash", func(c *Config) { c.Places.BaseURL = "https://example.com/" }, "slash"},
		{"production without key", func(c *Config) {
			c.Server.Environment = "production"
			c.Security.CORSOrigins = []string{"https://nightroute.app"}
		}, "places.api_key"},
		{"zero burst", func(c *Config) { c.Places.Burst = 0 }, "burst"},
		{"huge radius", func(c *Config) { c.Places.SearchRadiusMeters = 60000 }, "search_radius_meters"},
		{"failure ratio above 1", func(c *Config) { c.Places.Breaker.FailureRatio = 1.5 }, "failure_ratio"},
		{"zero venue ttl", func(c *Config) { c.Cache.VenueTTL = 0 }, "cache TTLs"},
		{"no store path", func(c *Config) { c.Geocode.StorePath = "" }, "store_path"},
		{"geocode concurrency 11", func(c *Config) { c.Geocode.Concurrency = 11 }, "geocode.concurrency"},
		{"geocode concurrency 0", func(c *Config) { c.Geocode.Concurrency = 0 }, "geocode.concurrency"},
		{"discard ratio 1", func(c *Config) { c.Geocode.GCDiscardRatio = 1 }, "gc_discard_ratio"},
		{"zero lookup timeout", func(c *Config) { c.Geocode.LookupTimeout = 0 }, "lookup timeout"},
		{"negative weight", func(c *Config) { c.Recommend.Weights.Vibe = -0.1 }, "non-negative"},
		{"enrich concurrency 0", func(c *Config) { c.Recommend.EnrichConcurrency = 0 }, "enrich_concurrency"},
		{"rate limit zero", func(c *Config) { c.Security.RateLimitReqs = 0 }, "rate limit"},
		{"wildcard cors in production", func(c *Config) {
			c.Server.Environment = "production"
			c.Places.APIKey = "key"
		}, "wildcard"},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_Allowed(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"in-memory geocode without path", func(c *Config) { c.Geocode.InMemory = true; c.Geocode.StorePath = "" }},
		{"rate limit disabled ignores reqs", func(c *Config) { c.Security.RateLimitDisabled = true; c.Security.RateLimitReqs = 0 }},
		{"unlimited provider rate", func(c *Config) { c.Places.RequestsPerSecond = 0 }},
		{"production with key and origins", func(c *Config) {
			c.Server.Environment = "production"
			c.Places.APIKey = "key"
			c.Security.CORSOrigins = []string{"https://nightroute.app"}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func TestServerConfig_IsProduction(t *testing.T) {
	s := ServerConfig{Environment: "production"}
	if !s.IsProduction() {
		t.Error("IsProduction() = false")
	}
	s.Environment = "development"
	if s.IsProduction() {
		t.Error("IsProduction() = true")
	}
}
