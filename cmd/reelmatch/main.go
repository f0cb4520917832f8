// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package main provides the reelmatch CLI.
//
// The CLI loads the same dataset and builds the same index as the server,
// then answers a single query and exits:
//
//	reelmatch recommend "The Dark Knight"
//	reelmatch match "dark nite" --limit 3 --output yaml
//	reelmatch stats --source /data/movies.parquet
//	reelmatch check --source postgres://reader@db/films
//
// Configuration comes from the server's layers (config.yaml, environment,
// .env); --source and friends override them.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags
var version = "dev"

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration could not be loaded or is invalid
	ExitDataError   = 3 // Dataset could not be loaded or indexed
	ExitNotFound    = 4 // No movie matched the query
)

// exitError carries the process exit code alongside the error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func withExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

// exitCode maps an error returned by a command to the process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitError
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitCode(err)
	}
	return ExitSuccess
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "reelmatch",
		Short: "Content-based movie recommendations from the command line",
		Long: `reelmatch loads a movie catalog, builds the TF-IDF similarity index and
answers one query against it.

The catalog is read from DATASET_SOURCE (or --source): a CSV, Parquet or
JSON file, a DuckDB or SQLite database, or a PostgreSQL URL.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return opts.validate()
		},
	}

	opts.register(root)

	root.AddCommand(
		newRecommendCmd(opts),
		newMatchCmd(opts),
		newStatsCmd(opts),
		newCheckCmd(opts),
	)
	return root
}
