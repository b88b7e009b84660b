// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all settings
//  2. Config File: Optional YAML config file (config.yaml, or CONFIG_PATH)
//  3. Environment Variables: Override any setting
//
// Configuration Categories:
//
//  1. Providers:
//     - Places: venue search and walking directions API
//     - Geocode: durable name-to-coordinate store
//
//  2. Infrastructure:
//     - Server: HTTP listener and timeouts
//     - Cache: in-process TTL caches in front of the provider
//
//  3. Planning:
//     - Recommend: scoring weights, diversity and scheduling policy
//
//  4. API & Observability:
//     - Security: CORS and request rate limiting
//     - Logging: log level and output format
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	client := places.NewClient(&cfg.Places, logger)
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Places    PlacesConfig    `koanf:"places"`
	Cache     CacheConfig     `koanf:"cache"`
	Geocode   GeocodeConfig   `koanf:"geocode"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development" or "production"
}

// PlacesConfig holds the venue and directions provider connection.
//
// Environment Variables:
//   - PLACES_API_KEY: provider API key (required unless the API is only fed inline venues)
//   - NIGHTROUTE_PLACES__BASE_URL: provider base URL
//   - NIGHTROUTE_PLACES__REQUESTS_PER_SECOND: outbound token-bucket rate
type PlacesConfig struct {
	// BaseURL is the provider root, without a trailing slash.
	// Default: https://maps.googleapis.com
	BaseURL string `koanf:"base_url"`

	APIKey string `koanf:"api_key"`

	// Timeout bounds one HTTP round trip.
	// Default: 10s
	Timeout time.Duration `koanf:"timeout"`

	// RequestsPerSecond and Burst shape outbound traffic.
	// A rate of 0 disables limiting.
	// Default: 10 rps, burst 20
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`

	// MaxRetries is how often an HTTP 429 answer is retried.
	// Default: 3, backing off from RetryBaseDelay (500ms)
	MaxRetries     int           `koanf:"max_retries"`
	RetryBaseDelay time.Duration `koanf:"retry_base_delay"`

	// SearchRadiusMeters is used when a route request gives a center but no venues.
	// Default: 1200
	SearchRadiusMeters int `koanf:"search_radius_meters"`

	Breaker BreakerConfig `koanf:"breaker"`
}

// BreakerConfig tunes the provider circuit breaker.
type BreakerConfig struct {
	// MaxRequests is the number of probes allowed while half-open.
	MaxRequests uint32 `koanf:"max_requests"`

	// Interval resets failure counts while closed.
	Interval time.Duration `koanf:"interval"`

	// Timeout is how long the circuit stays open before probing.
	Timeout time.Duration `koanf:"timeout"`

	// The circuit opens when FailureRatio is reached over at least MinRequests calls.
	MinRequests  uint32  `koanf:"min_requests"`
	FailureRatio float64 `koanf:"failure_ratio"`
}

// CacheConfig sizes the in-process caches in front of the provider.
type CacheConfig struct {
	VenueTTL           time.Duration `koanf:"venue_ttl"`
	VenueCapacity      int           `koanf:"venue_capacity"`
	DirectionsTTL      time.Duration `koanf:"directions_ttl"`
	DirectionsCapacity int           `koanf:"directions_capacity"`
}

// GeocodeConfig holds name-to-coordinate resolution settings.
type GeocodeConfig struct {
	// StorePath is the BadgerDB directory. Ignored when InMemory is set.
	// Default: /data/geocode
	StorePath string `koanf:"store_path"`
	InMemory  bool   `koanf:"in_memory"`

	// StoreTTL is how long a resolved coordinate stays in the durable store.
	// Default: 720h (30 days)
	StoreTTL time.Duration `koanf:"store_ttl"`

	// MemoryTTL and MemoryCapacity size the in-process layer.
	MemoryTTL      time.Duration `koanf:"memory_ttl"`
	MemoryCapacity int           `koanf:"memory_capacity"`

	// Concurrency caps simultaneous provider lookups in one batch (1-10).
	Concurrency int `koanf:"concurrency"`

	// LookupTimeout bounds one shared store-then-provider lookup. The lookup
	// outlives the request that started it so other waiters still get an answer.
	// Default: 10s
	LookupTimeout time.Duration `koanf:"lookup_timeout"`

	// WritebackTimeout bounds an asynchronous store write.
	WritebackTimeout time.Duration `koanf:"writeback_timeout"`

	// GCInterval and GCDiscardRatio drive badger value log garbage collection.
	GCInterval     time.Duration `koanf:"gc_interval"`
	GCDiscardRatio float64       `koanf:"gc_discard_ratio"`
}

// RecommendConfig holds route planning settings.
// Defaults mirror the engine's built-in tuning.
type RecommendConfig struct {
	Weights ScoreWeightsConfig `koanf:"weights"`
	Match   MatchWeightsConfig `koanf:"match"`

	// Diversity tuning for stop selection.
	RadiusMiles   float64 `koanf:"radius_miles"`
	CuisineBonus  float64 `koanf:"cuisine_bonus"`
	CategoryBonus float64 `koanf:"category_bonus"`

	MinRating            float64 `koanf:"min_rating"`
	PopularitySaturation int     `koanf:"popularity_saturation"`

	// ReferenceLat/ReferenceLng is the neighborhood center for proximity.
	ReferenceLat float64 `koanf:"reference_lat"`
	ReferenceLng float64 `koanf:"reference_lng"`

	// Scheduling.
	StartOffset       time.Duration `koanf:"start_offset"`
	MealStayMinutes   int           `koanf:"meal_stay_minutes"`
	StayMinutes       int           `koanf:"stay_minutes"`
	PreserveTypeOrder bool          `koanf:"preserve_type_order"`

	// Directions enrichment.
	EnrichConcurrency int           `koanf:"enrich_concurrency"`
	EnrichTimeout     time.Duration `koanf:"enrich_timeout"`
}

// ScoreWeightsConfig is the route score blend.
type ScoreWeightsConfig struct {
	Taste      float64 `koanf:"taste"`
	Vibe       float64 `koanf:"vibe"`
	Quality    float64 `koanf:"quality"`
	Popularity float64 `koanf:"popularity"`
	Proximity  float64 `koanf:"proximity"`
}

// MatchWeightsConfig is the taste match blend.
type MatchWeightsConfig struct {
	Cuisine float64 `koanf:"cuisine"`
	Vibe    float64 `koanf:"vibe"`
	Price   float64 `koanf:"price"`
	Dietary float64 `koanf:"dietary"`
}

// SecurityConfig holds API exposure settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	// MaxBodyBytes caps request bodies.
	// Default: 1 MiB
	MaxBodyBytes int64 `koanf:"max_body_bytes"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Addr returns the listen address.
func (s *ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// IsProduction reports whether the server runs in production mode.
func (s *ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// Load reads configuration from all sources in priority order:
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Environment variables
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
