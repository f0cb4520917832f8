// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package services provides suture.Service wrappers for Reelmatch components.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server; ListenAndServe runs in its own goroutine
  - OnShutdown hooks run before draining, used to fail the readiness probe
  - Shutdown is bounded by the configured timeout

Cache Janitor (CacheJanitorService):
  - Calls PurgeExpiredCache on a ticker (default every 5m)
  - Depends on the small CachePurger interface, not on the engine type

# Return Values

	nil         -> stopped cleanly, not restarted
	error       -> crashed, restarted with backoff
	ctx.Err()   -> shutdown requested

# Service Identification

Both services implement fmt.Stringer ("http-server", "cache-janitor"); suture
uses the name in its log events.
*/
package services
