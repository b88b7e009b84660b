// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

/*
Package models defines the data shared by the matching, clustering and route
planning packages.

Input data:
  - Venue: a provider place candidate (immutable once fetched)
  - UserTasteProfile: taste tokens plus fine-tune settings
  - MoodPreferences: energy, crowd, music, stop count and optional stop types
  - SocialPost: a post referencing a venue by name

Derived data, recomputed on every request:
  - MatchResult / MatchedVenue: taste match of one venue
  - ScoreBreakdown / ScoredVenue: route score of one venue
  - Stop, Segment, Route: a generated night out
  - GridCluster: a map pin

API envelope:
  - APIResponse, APIError, Metadata
*/
package models
