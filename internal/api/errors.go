// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package api

import "errors"

// Error codes for API responses
const (
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeInvalidJSON         = "INVALID_JSON"
	ErrCodeBodyTooLarge        = "BODY_TOO_LARGE"
	ErrCodeProviderUnavailable = "PROVIDER_UNAVAILABLE"
	ErrCodeNotConfigured       = "NOT_CONFIGURED"
	ErrCodeTooManyRequests     = "TOO_MANY_REQUESTS"
	ErrCodeInternalError       = "INTERNAL_ERROR"
)

// Messages for successful requests that produced nothing.
const (
	MessageNoRoute = "no route"
)

// ErrProviderNotConfigured indicates a request needs the places provider but
// none was wired.
var ErrProviderNotConfigured = errors.New("places provider is not configured")
