// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

/*
Package config provides centralized configuration management for NightRoute.

Configuration is layered with Koanf v2:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: config.yaml, config.yml, /etc/nightroute/config.yaml,
    or the path in CONFIG_PATH
 3. Environment variables

# Environment Variables

Any setting can be overridden with a NIGHTROUTE_ prefixed variable, using a
double underscore between nesting levels:

	NIGHTROUTE_SERVER__PORT=9090
	NIGHTROUTE_PLACES__BREAKER__TIMEOUT=1m
	NIGHTROUTE_RECOMMEND__PRESERVE_TYPE_ORDER=true

A few conventional short names are also accepted and lose to the prefixed form:

  - PORT, HTTP_PORT: server.port
  - ENVIRONMENT: server.environment
  - PLACES_API_KEY, GOOGLE_PLACES_API_KEY: places.api_key
  - PLACES_BASE_URL: places.base_url
  - GEOCODE_STORE_PATH: geocode.store_path
  - CORS_ORIGINS: security.cors_origins (comma-separated)
  - DISABLE_RATE_LIMIT: security.rate_limit_disabled
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER: logging.*

# Example config.yaml

	server:
	  port: 8080
	places:
	  api_key: "..."
	  requests_per_second: 5
	geocode:
	  store_path: /var/lib/nightroute/geocode
	recommend:
	  preserve_type_order: true

# Validation

Load rejects out-of-range values: ports, non-positive timeouts and TTLs,
geocode concurrency outside 1-10, negative weights, a missing API key or a
wildcard CORS origin in production. Scoring weight sums are checked by the
route engine when it is built.
*/
package config
