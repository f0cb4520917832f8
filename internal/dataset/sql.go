// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// orderCandidates are tried in turn when no explicit order column is set.
var orderCandidates = []string{"index", "id"}

// quoteIdent quotes a SQL identifier. "cast" is reserved in every supported
// dialect, so all identifiers are quoted unconditionally.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// quoteTable quotes a possibly schema-qualified table name.
func quoteTable(name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = quoteIdent(p)
	}
	return strings.Join(parts, ".")
}

// relationColumns returns the column names of relation without reading rows.
func relationColumns(ctx context.Context, db *sql.DB, relation string) ([]string, error) {
	rows, err := db.QueryContext(ctx, "SELECT * FROM "+relation+" WHERE 1 = 0")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	return cols, rows.Err()
}

// orderColumn picks the column that fixes row order, or "" for none.
func orderColumn(columns []string, explicit string) (string, error) {
	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[c] = true
	}
	if explicit != "" {
		if !present[explicit] {
			return "", fmt.Errorf("order column %q not found", explicit)
		}
		return explicit, nil
	}
	for _, c := range orderCandidates {
		if present[c] {
			return c, nil
		}
	}
	return "", nil
}

// buildSelect renders the query that reads the required columns from relation.
func buildSelect(relation, order string) string {
	cols := make([]string, len(RequiredColumns))
	for i, c := range RequiredColumns {
		cols[i] = quoteIdent(c)
	}
	query := "SELECT " + strings.Join(cols, ", ") + " FROM " + relation
	if order != "" {
		query += " ORDER BY " + quoteIdent(order)
	}
	return query
}

// loadRelation reads movies from relation on db. relation must already be
// quoted or be a table function call.
func loadRelation(ctx context.Context, db *sql.DB, source, relation, explicitOrder string) ([]Movie, Report, error) {
	report := Report{Source: source}

	columns, err := relationColumns(ctx, db, relation)
	if err != nil {
		return nil, report, loadError(source, "describe", err)
	}
	if missing := missingColumns(columns); len(missing) > 0 {
		return nil, report, missingColumnsError(source, missing)
	}
	order, err := orderColumn(columns, explicitOrder)
	if err != nil {
		return nil, report, loadError(source, "describe", err)
	}

	rows, err := db.QueryContext(ctx, buildSelect(relation, order))
	if err != nil {
		return nil, report, loadError(source, "query", err)
	}
	defer rows.Close()

	var movies []Movie
	vals := make([]sql.NullString, len(RequiredColumns))
	dest := make([]any, len(vals))
	for i := range vals {
		dest[i] = &vals[i]
	}
	cells := make(map[string]string, len(RequiredColumns))

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, report, loadError(source, "scan", err)
		}
		report.Rows++
		for i, col := range RequiredColumns {
			cells[col] = vals[i].String
		}
		movie, ok := buildMovie(cells, keepCell)
		if !ok {
			report.SkippedRows++
			continue
		}
		movies = append(movies, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, report, loadError(source, "scan", err)
	}

	report.Loaded = len(movies)
	if report.Loaded == 0 && report.Rows > 0 {
		return nil, report, loadError(source, "scan", fmt.Errorf("no row has a title (%d rows read)", report.Rows))
	}
	return movies, report, nil
}

// sqlSource is the shared database/sql backed Source.
type sqlSource struct {
	driver  string
	dsn     string
	display string
	opts    Options
}

func (s *sqlSource) String() string {
	return s.display
}

// Load implements Source.
func (s *sqlSource) Load(ctx context.Context) ([]Movie, Report, error) {
	db, err := sql.Open(s.driver, s.dsn)
	if err != nil {
		return nil, Report{Source: s.display}, loadError(s.display, "open", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, Report{Source: s.display}, loadError(s.display, "connect", err)
	}
	return loadRelation(ctx, db, s.display, quoteTable(s.opts.Table), s.opts.OrderBy)
}
