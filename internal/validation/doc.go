// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

// Package validation provides struct validation using go-playground/validator v10.
//
// A thread-safe singleton validator caches struct metadata across requests.
// Fields are reported by their JSON names, and nested fields by their dotted
// path ("mood.number_of_stops", "mood.stop_types[1]"), so error messages line
// up with the request body the client sent.
//
// # Quick Start
//
//	var req RouteRequest
//	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
//	    // handle decode error
//	}
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    respondError(w, r, http.StatusBadRequest, verr.ToAPIError())
//	    return
//	}
//
// # Custom Rules
//
// Every models.Coordinates value reached during validation must satisfy
// Coordinates.Valid: finite, in range and not (0, 0). Optional points should
// be declared as pointers so an absent value is skipped.
//
// # Error Format
//
// ToAPIError produces a VALIDATION_ERROR with the field, tag and value for a
// single failure, or a "fields" list for several.
package validation
