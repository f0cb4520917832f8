// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package middleware provides HTTP middleware for the Reelmatch API.

Key Components:

  - RequestID: X-Request-ID propagation plus request/correlation IDs in the
    logging context
  - PrometheusMetrics: request count, latency and in-flight gauge, labeled by
    chi route pattern
  - PerformanceMonitor: sliding-window latency percentiles reported by /stats
  - Compression: gzip for clients that send Accept-Encoding: gzip

All middleware has the func(http.Handler) http.Handler shape used by chi:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(perfMon.Middleware)
	r.Use(middleware.Compression)

Route labels come from chi's RouteContext, so PrometheusMetrics and
PerformanceMonitor must run inside a chi router. Requests that match no
route are labeled "unmatched".
*/
package middleware
