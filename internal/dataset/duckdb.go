// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2" // registers the "duckdb" database/sql driver
)

// NewDuckDBTableSource reads movies from a table in a DuckDB database file.
func NewDuckDBTableSource(path string, opts Options) Source {
	return &sqlSource{
		driver:  "duckdb",
		dsn:     path + "?access_mode=read_only",
		display: path,
		opts:    opts,
	}
}

// DuckDBFileSource reads a Parquet or JSON file through an in-memory DuckDB
// instance using read_parquet or read_json_auto.
type DuckDBFileSource struct {
	path string
	kind Kind
}

// NewDuckDBFileSource returns a source for path. kind must be KindParquet or KindJSON.
func NewDuckDBFileSource(path string, kind Kind) *DuckDBFileSource {
	return &DuckDBFileSource{path: path, kind: kind}
}

func (s *DuckDBFileSource) String() string {
	return s.path
}

// tableFunction renders the DuckDB table function call for the file.
func (s *DuckDBFileSource) tableFunction() (string, error) {
	literal := "'" + strings.ReplaceAll(s.path, "'", "''") + "'"
	switch s.kind {
	case KindParquet:
		return "read_parquet(" + literal + ")", nil
	case KindJSON:
		return "read_json_auto(" + literal + ")", nil
	default:
		return "", fmt.Errorf("%w: %s via duckdb", ErrUnsupportedSource, s.kind)
	}
}

// Load implements Source.
func (s *DuckDBFileSource) Load(ctx context.Context) ([]Movie, Report, error) {
	report := Report{Source: s.path}

	relation, err := s.tableFunction()
	if err != nil {
		return nil, report, loadError(s.path, "open", err)
	}
	// DuckDB reports a missing file only at query time with a less useful message.
	if _, err := os.Stat(s.path); err != nil {
		return nil, report, loadError(s.path, "open", err)
	}

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, report, loadError(s.path, "open", err)
	}
	defer db.Close()

	return loadRelation(ctx, db, s.path, relation, "")
}
