// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

/*
Package cluster buckets map items into zoom-dependent grid cells.

Each item falls into the cell floor(lat/size), floor(lng/size), where size
comes from VenueCellSize or PostCellSize for the requested zoom. A cluster
reports its member count and the centroid of its members. At or above
VenueNoClusterZoom (venues) and PostNoClusterZoom (posts) every item is its
own cluster. Items without coordinates are skipped.

Venue clusters also carry the plurality tier of their members. Ties resolve
toward the better tier.

Usage:

	clusters := cluster.Venues(matched, req.Zoom)
	postClusters := cluster.Posts(posts, req.Zoom)
*/
package cluster
