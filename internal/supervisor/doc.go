// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package supervisor runs Reelmatch's long-lived services under suture v4.

# Overview

The tree has two layers so that housekeeping failures stay away from the
request path:

	RootSupervisor ("reelmatch")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── CacheJanitorService (when the resolution cache is enabled)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

The similarity index is immutable once built and is not supervised; a
service restart never rebuilds it.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddMaintenanceService(services.NewCacheJanitorService(engine, janitorCfg, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

# Configuration

Zero TreeConfig fields take suture's defaults:
  - FailureThreshold: 5 failures
  - FailureDecay: 30 seconds
  - FailureBackoff: 15 seconds
  - ShutdownTimeout: 10 seconds

Failures decay exponentially; once the counter crosses FailureThreshold the
supervisor waits FailureBackoff before the next restart.

# Logging

Supervisor events (service start, failure, backoff) are emitted through
sutureslog into the slog logger passed to NewSupervisorTree. cmd/server hands
it a logger backed by the zerolog bridge in internal/logging, so suture
events land in the same JSON stream as everything else.

# Debugging Shutdown Issues

	report, err := tree.UnstoppedServiceReport()

lists services that ignored cancellation past ShutdownTimeout.
*/
package supervisor
