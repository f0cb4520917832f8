// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for dataset loading.
var (
	// ErrDataLoad matches every *DataLoadError via errors.Is.
	ErrDataLoad = errors.New("dataset load failed")

	// ErrMissingColumns is wrapped when a source lacks required columns.
	ErrMissingColumns = errors.New("missing required columns")

	// ErrUnsupportedSource is returned when no backend accepts a source string.
	ErrUnsupportedSource = errors.New("unsupported dataset source")
)

// DataLoadError describes a failure to read a dataset source.
// It is fatal at startup: no index is built from a partially read source.
type DataLoadError struct {
	Source string
	Op     string
	Err    error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("load %s: %s: %v", e.Source, e.Op, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}

// Is reports ErrDataLoad as a match so callers need not type-assert.
func (e *DataLoadError) Is(target error) bool {
	return target == ErrDataLoad
}

func loadError(source, op string, err error) *DataLoadError {
	return &DataLoadError{Source: source, Op: op, Err: err}
}

func missingColumnsError(source string, missing []string) *DataLoadError {
	return loadError(source, "check columns",
		fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", ")))
}
