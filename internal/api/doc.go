// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package api provides the HTTP interface of the Reelmatch service.

Routes are served by a chi router (see Router.SetupChi):

	GET  /                    service banner, {"status":"API running"}
	POST /recommendation      {"movie": "..."} -> matched title + ranked titles
	GET  /movies/suggest      close title matches for ?q=, at most ?n=
	GET  /stats               index, cache, dataset and latency statistics
	GET  /health/live         liveness probe
	GET  /health/ready        readiness probe
	GET  /metrics             Prometheus exposition
	GET  /swagger/*           API documentation

Middleware Stack:

Every request passes RequestID, RealIP, Recoverer, CORS, PrometheusMetrics
and the performance monitor. /recommendation and /movies/* are also rate
limited per client IP with go-chi/httprate and gzip compressed.

Errors:

Error bodies carry a "detail" field, so clients written against the
original service keep working:

	{"detail": "Movie not found", "code": "MOVIE_NOT_FOUND", "request_id": "..."}

Validation failures use code VALIDATION_ERROR and list the offending fields.
*/
package api
