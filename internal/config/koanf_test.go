// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

// chdirTemp moves the test into an empty directory so no stray config.yaml is found.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Errorf("Failed to restore working directory: %v", err)
		}
	})
	t.Setenv(ConfigPathEnvVar, "")
	return dir
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"NIGHTROUTE_SERVER__PORT", "server.port"},
		{"NIGHTROUTE_PLACES__BREAKER__FAILURE_RATIO", "places.breaker.failure_ratio"},
		{"NIGHTROUTE_RECOMMEND__PRESERVE_TYPE_ORDER", "recommend.preserve_type_order"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := envTransformFunc(tt.input); got != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEnvAliasFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"PLACES_API_KEY", "places.api_key"},
		{"GOOGLE_PLACES_API_KEY", "places.api_key"},
		{"LOG_LEVEL", "logging.level"},
		{"PORT", "server.port"},
		{"HOME", ""},
		{"PATH", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := envAliasFunc(tt.input); got != tt.expected {
				t.Errorf("envAliasFunc(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := chdirTemp(t)

	t.Run("no config file exists", func(t *testing.T) {
		if got := findConfigFile(); got != "" {
			t.Errorf("findConfigFile() = %q, want empty string", got)
		}
	})

	t.Run("config.yaml exists", func(t *testing.T) {
		path := filepath.Join(dir, "config.yaml")
		if err := os.WriteFile(path, []byte("server:\n  port: 9000\n"), 0o600); err != nil {
			t.Fatalf("Failed to create config file: %v", err)
		}
		defer os.Remove(path)

		if got := findConfigFile(); got != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", got)
		}
	})

	t.Run("CONFIG_PATH takes precedence", func(t *testing.T) {
		custom := filepath.Join(dir, "custom.yaml")
		if err := os.WriteFile(custom, []byte("server:\n  port: 9000\n"), 0o600); err != nil {
			t.Fatalf("Failed to create config file: %v", err)
		}
		t.Setenv(ConfigPathEnvVar, custom)

		if got := findConfigFile(); got != custom {
			t.Errorf("findConfigFile() = %q, want %q", got, custom)
		}
	})

	t.Run("CONFIG_PATH pointing nowhere falls back", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
		if got := findConfigFile(); got != "" {
			t.Errorf("findConfigFile() = %q, want empty string", got)
		}
	})
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Places.Breaker.Timeout != 30*time.Second {
		t.Errorf("Places.Breaker.Timeout = %v, want 30s", cfg.Places.Breaker.Timeout)
	}
	if cfg.Recommend.Weights.Taste != 0.35 {
		t.Errorf("Recommend.Weights.Taste = %v, want 0.35", cfg.Recommend.Weights.Taste)
	}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, []string{"*"}) {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
}

func TestLoadWithKoanf_EnvVars(t *testing.T) {
	chdirTemp(t)
	t.Setenv("PLACES_API_KEY", "alias-key")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("NIGHTROUTE_SERVER__PORT", "9090")
	t.Setenv("NIGHTROUTE_PLACES__BREAKER__TIMEOUT", "1m")
	t.Setenv("NIGHTROUTE_RECOMMEND__PRESERVE_TYPE_ORDER", "true")
	t.Setenv("NIGHTROUTE_GEOCODE__CONCURRENCY", "4")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Places.APIKey != "alias-key" {
		t.Errorf("Places.APIKey = %q, want alias-key", cfg.Places.APIKey)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, want) {
		t.Errorf("Security.CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Places.Breaker.Timeout != time.Minute {
		t.Errorf("Places.Breaker.Timeout = %v, want 1m", cfg.Places.Breaker.Timeout)
	}
	if !cfg.Recommend.PreserveTypeOrder {
		t.Error("Recommend.PreserveTypeOrder = false, want true")
	}
	if cfg.Geocode.Concurrency != 4 {
		t.Errorf("Geocode.Concurrency = %d, want 4", cfg.Geocode.Concurrency)
	}
}

func TestLoadWithKoanf_FileThenEnv(t *testing.T) {
	dir := chdirTemp(t)
	content := `
server:
  port: 7000
  host: 127.0.0.1
places:
  requests_per_second: 2.5
cache:
  venue_ttl: 90s
logging:
  format: console
`
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	t.Setenv("NIGHTROUTE_SERVER__PORT", "7001")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 7001 {
		t.Errorf("Server.Port = %d, want 7001 (env beats file)", cfg.Server.Port)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want 127.0.0.1", cfg.Server.Host)
	}
	if cfg.Places.RequestsPerSecond != 2.5 {
		t.Errorf("Places.RequestsPerSecond = %v, want 2.5", cfg.Places.RequestsPerSecond)
	}
	if cfg.Cache.VenueTTL != 90*time.Second {
		t.Errorf("Cache.VenueTTL = %v, want 90s", cfg.Cache.VenueTTL)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
	if cfg.Places.Burst != 20 {
		t.Errorf("Places.Burst = %d, want default 20", cfg.Places.Burst)
	}
}

func TestLoadWithKoanf_Invalid(t *testing.T) {
	chdirTemp(t)
	t.Setenv("NIGHTROUTE_GEOCODE__CONCURRENCY", "50")

	if _, err := LoadWithKoanf(); err == nil {
		t.Error("LoadWithKoanf() = nil error, want validation failure")
	}
}
