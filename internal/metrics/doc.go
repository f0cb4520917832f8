// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package metrics exposes Prometheus instrumentation for Reelmatch.

All collectors are registered on the default registry at init through
promauto and served by promhttp at /metrics.

# Available Metrics

HTTP:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Recommendations:
  - recommend_requests_total{outcome}: outcome is ok, not_found or error
  - recommend_duration_seconds
  - title_resolution_cache_total{result}: result is hit or miss

Index:
  - index_build_duration_seconds{stage}: compose, vectorize, similarity
  - index_movies
  - index_vocabulary_terms
  - index_matrix_bytes

Dataset:
  - dataset_load_duration_seconds{kind}
  - dataset_load_errors_total{kind}

Process:
  - app_info{version,go_version}
*/
package metrics
