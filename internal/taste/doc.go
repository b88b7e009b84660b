// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

/*
Package taste scores venues against a user's taste profile.

Venue tags are inferred from two sources: provider type tags (cafe, bar,
night_club, bakery) and ordered keyword rules applied to the lowercase venue
name. Each inferred token is routed into a cuisine or vibe set depending on
which vocabulary owns it.

A match combines four sub-scores with fixed weights:

	cuisine  0.4  overlap coefficient of venue and user food tokens
	vibe     0.3  overlap coefficient of venue and user vibe tokens
	price    0.2  exact tier 1.0, one tier away 0.5
	dietary  0.1  0 when the name contains an avoided keyword

Venues carrying tokens the user explicitly chose are lifted to a floor
(0.85 for two or more hits, 0.6 for one). Scores of 0.8 and above are
"perfect", 0.5 and above "good".

PrimaryCategory and CuisineCategory are shared with the route engine, which
uses them for vibe tables and stop diversity.
*/
package taste
