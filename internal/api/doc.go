// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

/*
Package api exposes route planning and map clustering over HTTP.

# Endpoints

	POST /api/v1/routes       generate a night-out route
	POST /api/v1/map/venues   taste-matched venue clusters for a zoom level
	POST /api/v1/map/posts    social post clusters for a zoom level
	POST /api/v1/geocode      resolve venue names to coordinates
	GET  /api/v1/health       service health
	GET  /metrics             Prometheus metrics

# Response Format

Every endpoint answers with the models.APIResponse envelope:

	{"status": "success", "data": {...}, "metadata": {"timestamp": "...", "request_id": "..."}}
	{"status": "error", "data": null, "error": {"code": "VALIDATION_ERROR", "message": "..."}}

A route request that produces no viable route is a success with null data
and the message "no route". Clients should suggest relaxing preferences.

# Middleware

Applied globally, in order: request ID with logging context, real IP,
request logging, panic recovery, CORS, Prometheus metrics. The data
endpoints additionally get IP rate limiting (go-chi/httprate), a request body
cap and security headers.

# Error Codes

	VALIDATION_ERROR       request failed validation (400)
	INVALID_JSON           body is not valid JSON (400)
	BODY_TOO_LARGE         body exceeds the configured cap (413)
	TOO_MANY_REQUESTS      rate limit exceeded (429)
	NOT_CONFIGURED         the endpoint needs a provider that is not wired (503)
	PROVIDER_UNAVAILABLE   the places provider failed or its circuit is open (503)
	INTERNAL_ERROR         unexpected failure (500)
*/
package api
