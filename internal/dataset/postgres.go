// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package dataset

import (
	"net/url"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
)

// NewPostgresSource reads movies from a PostgreSQL table. dsn is a
// postgres:// URL as accepted by pgx.
func NewPostgresSource(dsn string, opts Options) Source {
	return &sqlSource{
		driver:  "pgx",
		dsn:     dsn,
		display: redactDSN(dsn),
		opts:    opts,
	}
}

// redactDSN hides the password so the DSN can be logged.
func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil {
		return "postgres://<invalid dsn>"
	}
	return u.Redacted()
}
