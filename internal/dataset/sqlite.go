// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package dataset

import (
	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver
)

// NewSQLiteSource reads movies from a table in the SQLite file at path.
// The file is opened read-only, so a missing file fails at connect.
func NewSQLiteSource(path string, opts Options) Source {
	return &sqlSource{
		driver:  "sqlite",
		dsn:     "file:" + path + "?mode=ro",
		display: path,
		opts:    opts,
	}
}
