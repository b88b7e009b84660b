// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

/*
Package geocode resolves venue names to coordinates for map rendering.

Lookups go through three layers, cheapest first:

 1. an in-process TTL cache (internal/cache)
 2. a durable BadgerDB store with per-entry TTL (BadgerStore)
 3. the places provider's text search

Provider answers are written back to the store in a background goroutine so
the caller never waits on disk. Names are normalized (case and whitespace
folded) before any layer sees them.

ResolveBatch fans out over an errgroup capped at ten concurrent lookups.
Names that cannot be resolved are simply missing from the result map:

	coords := resolver.ResolveBatch(ctx, []string{"Joe's Pub", "Veselka"})
	if c, ok := coords["Veselka"]; ok {
	    // place a pin
	}

BadgerStore also implements suture.Service; Serve runs value log garbage
collection on an interval.
*/
package geocode
