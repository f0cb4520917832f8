// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package main provides the Reelmatch HTTP server
//
// @title Reelmatch API
// @version 1.0
// @description Content-based movie recommendations. A free-text title is resolved to the closest known movie and the most similar movies by genres, keywords, tagline, cast and director are returned.
// @description
// @description ## Rate Limiting
// @description
// @description `POST /recommendation` and `GET /movies/suggest` are limited per client IP (default 100 requests per minute).
// @description Rate limit headers are included in responses: `X-RateLimit-Limit`, `X-RateLimit-Remaining`, `X-RateLimit-Reset`.
// @description
// @description ## Error Responses
// @description
// @description ```json
// @description {
// @description   "detail": "Movie not found",
// @description   "code": "MOVIE_NOT_FOUND",
// @description   "request_id": "..."
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/reelmatch/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /
// @schemes http https
//
// @tag.name Core
// @tag.description Service status, statistics and health probes
//
// @tag.name Recommendations
// @tag.description Title resolution and similar-movie lookups
package main
