// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

// Package logging provides centralized zerolog-based structured logging for NightRoute.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("addr", addr).Msg("Server starting")
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("Places lookup failed")
//
// Components take a zerolog.Logger by value, usually built with
// WithComponent("places"), and never log through the global functions.
//
// # Configuration
//
// main maps the logging section of the application config onto Config:
//
//	NIGHTROUTE_LOGGING__LEVEL    trace, debug, info, warn, error (default: info)
//	NIGHTROUTE_LOGGING__FORMAT   json, console (default: json)
//	NIGHTROUTE_LOGGING__CALLER   include caller file:line (default: false)
//
// # Request Context
//
// The API middleware stores a request ID and a short correlation ID in the
// request context. Ctx, CtxWith and the CtxDebug family add both to every line.
//
// # slog Adapter
//
// SlogHandler bridges log/slog onto zerolog so the supervisor tree's
// sutureslog hook shares the same output:
//
//	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), cfg)
//
// # Redaction
//
// Provider API keys travel in query strings. Use SanitizeURL before logging a
// request URL and SanitizeError before logging an error that may echo it.
package logging
