// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package models

import "time"

// APIResponse is the envelope returned by every HTTP endpoint.
//
// Status is "success" or "error". Data is null for a successful request that
// produced no result (for example no viable route), in which case Message
// carries a user-facing hint.
//
//	{
//	  "status": "success",
//	  "data": {"stops": [...], "segments": [...]},
//	  "metadata": {"timestamp": "2026-10-16T21:00:00Z", "query_time_ms": 4}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Message  string      `json:"message,omitempty"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response timing information.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError is a machine-readable error with a human message.
//
// Codes used: VALIDATION_ERROR, INVALID_JSON, PROVIDER_UNAVAILABLE, INTERNAL_ERROR.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
