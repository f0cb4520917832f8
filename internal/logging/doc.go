// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package logging wraps a process-wide zerolog logger for Reelmatch.
//
// Initialize once from main, then log through the package helpers:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Int("movies", n).Msg("Index built")
//
// Request-scoped logging picks up the request and correlation IDs placed in
// the context by the HTTP middleware:
//
//	logging.Ctx(ctx).Info().Str("query", q).Msg("Title resolved")
//
// Libraries that only accept *slog.Logger (the supervisor tree) get one
// backed by the same zerolog output through NewSlogLogger.
//
// Always terminate an event with Msg or Send; an unterminated event is
// never written.
package logging
