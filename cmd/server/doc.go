// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

/*
Package main is the entry point for the NightRoute server.

NightRoute matches venues to a user's taste profile and plans walkable
night-out routes of two to four stops. It also clusters venues and social
posts for map display and resolves venue names to coordinates.

# Application Architecture

	RootSupervisor ("nightroute")
	├── DataSupervisor ("data-layer")
	│   ├── cache janitors (venues, directions, geocode)
	│   └── geocode store GC (BadgerDB)
	└── APISupervisor ("api-layer")
	    └── HTTP server (chi)

Initialization order:

 1. Configuration: koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog, bridged to slog for the supervisor
 3. Places provider: HTTP client, circuit breaker, response caches
 4. Geocoding: in-process cache, BadgerDB store, provider text search
 5. Recommendation engine with the provider as directions source
 6. HTTP router and the supervisor tree

Without PLACES_API_KEY steps 3 and 4 are skipped. Routes and map clusters
from inline venues still work; center searches, enrichment and geocoding
answer NOT_CONFIGURED.

# Signal Handling

SIGINT and SIGTERM cancel the tree. The HTTP server drains in-flight requests
within NIGHTROUTE_SERVER__SHUTDOWN_TIMEOUT, pending geocode writes are
flushed and the BadgerDB store is closed.

# Example Usage

	export PLACES_API_KEY=your-key
	export NIGHTROUTE_GEOCODE__STORE_PATH=/var/lib/nightroute/geocode
	./nightroute
*/
package main
