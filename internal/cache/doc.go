// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

/*
Package cache provides the in-process TTL cache used in front of the venue
provider and the durable geocode store.

Cache is generic over its value type, bounded by an optional capacity with
least-recently-used eviction, and reports hits, misses, evictions and size to
Prometheus under its name:

	venues := cache.New[[]models.Venue]("venues", 2*time.Minute, 500)

Expired entries are dropped lazily on Get. Serve sweeps them periodically and
is run under the application's supervisor tree.

GenerateKey builds compact, order-independent keys from request parameters.
*/
package cache
