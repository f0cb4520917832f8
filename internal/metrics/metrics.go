// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recommendation outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation lookups by outcome",
		},
		[]string{"outcome"},
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Time to resolve a title and rank its neighbours",
			Buckets: []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1, .25},
		},
	)

	TitleResolutionCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "title_resolution_cache_total",
			Help: "Title resolution cache lookups by result",
		},
		[]string{"result"},
	)

	// Index Metrics
	IndexBuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "index_build_duration_seconds",
			Help:    "Duration of each index build stage",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		},
		[]string{"stage"},
	)

	IndexMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "index_movies",
			Help: "Number of movies in the active index",
		},
	)

	IndexVocabularyTerms = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "index_vocabulary_terms",
			Help: "Number of distinct terms in the TF-IDF vocabulary",
		},
	)

	IndexMatrixBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "index_matrix_bytes",
			Help: "Approximate memory held by the similarity matrix",
		},
	)

	// Dataset Metrics
	DatasetLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dataset_load_duration_seconds",
			Help:    "Duration of dataset loads in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	DatasetLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_load_errors_total",
			Help: "Total number of failed dataset loads",
		},
		[]string{"kind"},
	)

	// Application Info
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a rejected request.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordRecommendation records one lookup. outcome is one of the Outcome constants.
func RecordRecommendation(outcome string, duration time.Duration) {
	RecommendRequests.WithLabelValues(outcome).Inc()
	RecommendDuration.Observe(duration.Seconds())
}

// RecordTitleCache records a title resolution cache lookup.
func RecordTitleCache(hit bool) {
	if hit {
		TitleResolutionCache.WithLabelValues("hit").Inc()
		return
	}
	TitleResolutionCache.WithLabelValues("miss").Inc()
}

// RecordIndexBuild records the duration of one build stage.
func RecordIndexBuild(stage string, duration time.Duration) {
	IndexBuildDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

// SetIndexSize publishes the size of the active index.
func SetIndexSize(movies, terms int, matrixBytes int64) {
	IndexMovies.Set(float64(movies))
	IndexVocabularyTerms.Set(float64(terms))
	IndexMatrixBytes.Set(float64(matrixBytes))
}

// RecordDatasetLoad records a dataset load; a non-nil err counts as a failure.
func RecordDatasetLoad(kind string, duration time.Duration, err error) {
	if err != nil {
		DatasetLoadErrors.WithLabelValues(kind).Inc()
		return
	}
	DatasetLoadDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// SetAppInfo publishes build information.
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}
