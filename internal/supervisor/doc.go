// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

/*
Package supervisor provides process supervision for NightRoute using suture v4.

# Overview

Long-running services are organized into two layers for failure isolation:

	RootSupervisor ("nightroute")
	├── DataSupervisor ("data-layer")
	│   ├── cache-janitor-venues
	│   ├── cache-janitor-directions
	│   ├── cache-janitor-geocode
	│   └── geocode-store-gc (BadgerDB value log GC)
	└── APISupervisor ("api-layer")
	    └── http-server

A crashing janitor is restarted with backoff and never takes the API down.

# Usage

	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(venueCache)
	tree.AddAPIService(services.NewHTTPServerService(srv, addr, timeout, logger))

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

Supervisor events (start, stop, failure, backoff) are logged through the
sutureslog hook, which main wires to zerolog via logging.NewSlogLogger.

# Configuration

Zero fields of TreeConfig fall back to suture's defaults:
  - FailureThreshold: 5 failures
  - FailureDecay: 30 seconds
  - FailureBackoff: 15 seconds
  - ShutdownTimeout: 10 seconds

# Debugging Shutdown Issues

	report, err := tree.UnstoppedServiceReport()

lists services that ignored cancellation past the shutdown timeout.
*/
package supervisor
