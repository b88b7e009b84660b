// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/nightroute/config.yaml",
	"/etc/nightroute/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// EnvPrefix prefixes structured environment overrides. A double underscore
// separates nesting levels: NIGHTROUTE_PLACES__BREAKER__TIMEOUT=1m.
const EnvPrefix = "NIGHTROUTE_"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Places: PlacesConfig{
			BaseURL:            "https://maps.googleapis.com",
			APIKey:             "",
			Timeout:            10 * time.Second,
			RequestsPerSecond:  10,
			Burst:              20,
			MaxRetries:         3,
			RetryBaseDelay:     500 * time.Millisecond,
			SearchRadiusMeters: 1200,
			Breaker: BreakerConfig{
				MaxRequests:  3,
				Interval:     time.Minute,
				Timeout:      30 * time.Second,
				MinRequests:  10,
				FailureRatio: 0.6,
			},
		},
		Cache: CacheConfig{
			VenueTTL:           2 * time.Minute,
			VenueCapacity:      500,
			DirectionsTTL:      30 * time.Minute,
			DirectionsCapacity: 2000,
		},
		Geocode: GeocodeConfig{
			StorePath:        "/data/geocode",
			InMemory:         false,
			StoreTTL:         30 * 24 * time.Hour,
			MemoryTTL:        time.Hour,
			MemoryCapacity:   5000,
			Concurrency:      10,
			LookupTimeout:    10 * time.Second,
			WritebackTimeout: 5 * time.Second,
			GCInterval:       10 * time.Minute,
			GCDiscardRatio:   0.5,
		},
		Recommend: RecommendConfig{
			Weights: ScoreWeightsConfig{
				Taste:      0.35,
				Vibe:       0.30,
				Quality:    0.20,
				Popularity: 0.10,
				Proximity:  0.05,
			},
			Match: MatchWeightsConfig{
				Cuisine: 0.4,
				Vibe:    0.3,
				Price:   0.2,
				Dietary: 0.1,
			},
			RadiusMiles:          0.5,
			CuisineBonus:         0.15,
			CategoryBonus:        0.10,
			MinRating:            3.0,
			PopularitySaturation: 50,
			ReferenceLat:         40.7265,
			ReferenceLng:         -73.9815,
			StartOffset:          15 * time.Minute,
			MealStayMinutes:      90,
			StayMinutes:          60,
			PreserveTypeOrder:    false,
			EnrichConcurrency:    3,
			EnrichTimeout:        5 * time.Second,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			MaxBodyBytes:      1 << 20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Default returns the built-in configuration without reading any source.
func Default() *Config {
	return defaultConfig()
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: short aliases, then NIGHTROUTE_ paths (highest priority)
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables
	// PLACES_API_KEY -> places.api_key
	if err := k.Load(env.Provider("", ".", envAliasFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment aliases: %w", err)
	}
	// NIGHTROUTE_SERVER__PORT -> server.port
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Post-process slice fields from comma-separated strings
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths lists config paths that accept comma-separated env values.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envTransformFunc maps NIGHTROUTE_SECTION__FIELD to section.field.
func envTransformFunc(key string) string {
	key = strings.TrimPrefix(key, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(key), "__", ".")
}

// envAliases are short, conventional variable names.
var envAliases = map[string]string{
	"port":                  "server.port",
	"http_port":             "server.port",
	"environment":           "server.environment",
	"places_api_key":        "places.api_key",
	"google_places_api_key": "places.api_key",
	"places_base_url":       "places.base_url",
	"geocode_store_path":    "geocode.store_path",
	"cors_origins":          "security.cors_origins",
	"disable_rate_limit":    "security.rate_limit_disabled",
	"log_level":             "logging.level",
	"log_format":            "logging.format",
	"log_caller":            "logging.caller",
}

// envAliasFunc maps known short names and drops everything else, so random
// environment variables cannot pollute config.
func envAliasFunc(key string) string {
	return envAliases[strings.ToLower(key)]
}
