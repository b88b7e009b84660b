// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/nightroute/internal/cluster"
	"github.com/tomtom215/nightroute/internal/models"
)

// MapVenuesRequest is the body of POST /api/v1/map/venues.
type MapVenuesRequest struct {
	Venues  []models.Venue          `json:"venues" validate:"max=2000"`
	Profile models.UserTasteProfile `json:"profile"`
	Zoom    int                     `json:"zoom" validate:"min=0,max=22"`
}

// MapPostsRequest is the body of POST /api/v1/map/posts.
type MapPostsRequest struct {
	Posts []models.SocialPost `json:"posts" validate:"max=5000"`
	Zoom  int                 `json:"zoom" validate:"min=0,max=22"`

	// Resolve looks up coordinates by venue name for posts without a location.
	Resolve bool `json:"resolve"`
}

// ClusterResponse is the data of both map endpoints.
type ClusterResponse[T any] struct {
	Clusters []models.GridCluster[T] `json:"clusters"`
	Items    int                     `json:"items"`
	Zoom     int                     `json:"zoom"`
}

// MapVenues handles POST /api/v1/map/venues.
// Every venue is matched against the profile, then clustered by zoom.
func (h *Handler) MapVenues(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req MapVenuesRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	matched := make([]models.MatchedVenue, len(req.Venues))
	for i := range req.Venues {
		matched[i] = models.MatchedVenue{
			Venue: req.Venues[i],
			Match: h.matcher.Match(&req.Venues[i], &req.Profile),
		}
	}

	clusters := cluster.Venues(matched, req.Zoom)
	if clusters == nil {
		clusters = []models.GridCluster[models.MatchedVenue]{}
	}

	respondSuccess(w, r, ClusterResponse[models.MatchedVenue]{
		Clusters: clusters,
		Items:    len(matched),
		Zoom:     req.Zoom,
	}, start)
}

// MapPosts handles POST /api/v1/map/posts.
//
// Posts without a location are left out of the clusters unless Resolve is set
// and a resolver is configured, in which case their venue names are resolved
// first. Names that cannot be resolved stay unplaced.
func (h *Handler) MapPosts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req MapPostsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	posts := req.Posts
	if req.Resolve && h.resolver != nil {
		posts = h.placePosts(r, posts)
	}

	clusters := cluster.Posts(posts, req.Zoom)
	if clusters == nil {
		clusters = []models.GridCluster[models.SocialPost]{}
	}

	respondSuccess(w, r, ClusterResponse[models.SocialPost]{
		Clusters: clusters,
		Items:    len(posts),
		Zoom:     req.Zoom,
	}, start)
}

// placePosts returns a copy of posts where unplaced posts carry the resolved
// location of their venue name.
func (h *Handler) placePosts(r *http.Request, posts []models.SocialPost) []models.SocialPost {
	var names []string
	for i := range posts {
		if posts[i].Location == nil && posts[i].VenueName != "" {
			names = append(names, posts[i].VenueName)
		}
	}
	if len(names) == 0 {
		return posts
	}

	resolved := h.resolver.ResolveBatch(r.Context(), names)

	out := make([]models.SocialPost, len(posts))
	copy(out, posts)
	for i := range out {
		if out[i].Location != nil {
			continue
		}
		if c, ok := resolved[out[i].VenueName]; ok {
			out[i].Location = &c
		}
	}
	return out
}
