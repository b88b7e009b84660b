// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

// Package recommend turns candidate venues into a walkable night-out route.
//
// # Pipeline
//
// GenerateRoute runs a fixed, synchronous pipeline:
//
//  1. Filter: keep venues with a name, valid coordinates and a rating of at
//     least Config.MinRating. Unrated venues never enter scoring.
//  2. Score: Scorer combines five terms into a total in [0, 1]
//     (taste 0.35, vibe 0.30, quality 0.20, popularity 0.10, proximity 0.05).
//  3. Select: the selection package picks stops, either diverse or by an
//     ordered list of stop types.
//  4. Sequence: the sequence package orders stops by time of day, shortens
//     the walk for up to four stops, and assigns arrival times.
//  5. Compose: consecutive stops are linked by estimated walking segments and
//     the route totals are computed.
//
// A nil route with a nil error is the normal "no good answer" outcome.
//
// # Enrichment
//
// Enrich optionally replaces segment estimates with provider directions. It
// runs segment lookups concurrently, keeps the estimate for any segment whose
// lookup fails, and returns a new Route.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	engine.SetDirectionsProvider(placesClient)
//
//	route, err := engine.GenerateRoute(ctx, recommend.Request{
//	    Venues:  venues,
//	    Profile: profile,
//	    Mood:    mood,
//	})
//	if route != nil {
//	    route = engine.Enrich(ctx, route)
//	}
//
// # Thread Safety
//
// The engine holds configuration and counters only and is safe for
// concurrent use.
package recommend
