// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"sync/atomic"
	"time"

	"github.com/tomtom215/reelmatch/internal/dataset"
	"github.com/tomtom215/reelmatch/internal/middleware"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_recommend.go: root banner and POST /recommendation
//   - handlers_suggest.go: GET /movies/suggest
//   - handlers_stats.go: GET /stats
//   - handlers_health.go: liveness and readiness probes
type Handler struct {
	engine    *recommend.Engine
	report    dataset.Report
	perfMon   *middleware.PerformanceMonitor
	version   string
	startTime time.Time
	ready     atomic.Bool
}

// NewHandler creates a handler serving engine. report describes the dataset
// load that produced the engine's index and is echoed by /stats.
//
// The handler starts ready when engine is non-nil; SetReady(false) flips the
// readiness probe during shutdown so load balancers drain traffic first.
func NewHandler(engine *recommend.Engine, report dataset.Report, perfMon *middleware.PerformanceMonitor, version string) *Handler {
	if perfMon == nil {
		perfMon = middleware.NewPerformanceMonitor(1000)
	}
	h := &Handler{
		engine:    engine,
		report:    report,
		perfMon:   perfMon,
		version:   version,
		startTime: time.Now(),
	}
	h.ready.Store(engine != nil)
	return h
}

// SetReady sets the readiness reported by /health/ready.
func (h *Handler) SetReady(ready bool) {
	h.ready.Store(ready && h.engine != nil)
}

// PerformanceMonitor returns the monitor the router should install.
func (h *Handler) PerformanceMonitor() *middleware.PerformanceMonitor {
	return h.perfMon
}
