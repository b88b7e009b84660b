// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

/*
Package places is the client for the venue search and walking directions
provider, a Google Places shaped JSON API.

Three layers implement Provider and are stacked by the server:

	CachingClient -> BreakerClient -> Client

Client performs the HTTP calls. It waits on a token-bucket limiter before
every request, retries HTTP 429 with exponential backoff, and masks the API
key in errors and logs. Provider statuses map onto two sentinels:

  - ErrNoResults: ZERO_RESULTS, or directions with no route
  - ErrUnavailable: transport failures, non-200 answers, other statuses,
    and requests rejected by an open circuit

BreakerClient opens a sony/gobreaker circuit when the failure ratio crosses
its threshold. ErrNoResults does not count as a failure.

CachingClient memoizes nearby searches and directions in internal/cache,
keyed by coordinates rounded to about 11 meters. Text searches are cached by
the geocode resolver instead.

A Provider satisfies recommend.DirectionsProvider for route enrichment.
*/
package places
