// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/dataset"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	output  string
	source  string
	table   string
	orderBy string
	verbose bool
}

func (o *globalOptions) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&o.output, "output", "o", formatText, "Output format: text, json or yaml")
	flags.StringVarP(&o.source, "source", "s", "", "Dataset source (overrides DATASET_SOURCE)")
	flags.StringVar(&o.table, "table", "", "Table for database sources (overrides DATASET_TABLE)")
	flags.StringVar(&o.orderBy, "order-by", "", "Row order column for database sources (overrides DATASET_ORDER_BY)")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "Log progress to stderr")
}

func (o *globalOptions) validate() error {
	switch o.output {
	case formatText, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", o.output)
	}
}

// loadConfig reads the layered configuration and applies flag overrides;
// tune, when set, adjusts engine settings before validation. Logging goes to
// stderr in console format so stdout stays parseable.
func (o *globalOptions) loadConfig(cmd *cobra.Command, tune func(*config.RecommendConfig)) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, withExitCode(ExitConfigError, err)
	}

	if o.source != "" {
		cfg.Dataset.Source = o.source
	}
	if o.table != "" {
		cfg.Dataset.Table = o.table
	}
	if o.orderBy != "" {
		cfg.Dataset.OrderBy = o.orderBy
	}
	if tune != nil {
		tune(&cfg.Recommend)
	}
	if err := cfg.Validate(); err != nil {
		return nil, withExitCode(ExitConfigError, err)
	}

	logCfg := cfg.Logging.LoggerConfig()
	logCfg.Format = "console"
	logCfg.Output = cmd.ErrOrStderr()
	if !o.verbose {
		logCfg.Level = "warn"
	}
	logging.Init(logCfg)

	return cfg, nil
}

// loaded is a ready engine plus what went into it.
type loaded struct {
	cfg     *config.Config
	engine  *recommend.Engine
	report  dataset.Report
	elapsed time.Duration
}

// loadEngine loads the dataset and builds the index under the configured
// load timeout.
func (o *globalOptions) loadEngine(cmd *cobra.Command, tune func(*config.RecommendConfig)) (*loaded, error) {
	cfg, err := o.loadConfig(cmd, tune)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Dataset.LoadTimeout)
	defer cancel()

	movies, report, err := dataset.Load(ctx, cfg.Dataset.Source, cfg.Dataset.SourceOptions())
	if err != nil {
		return nil, withExitCode(ExitDataError, err)
	}
	idx, err := recommend.BuildIndex(ctx, movies, cfg.Recommend.IndexOptions())
	if err != nil {
		return nil, withExitCode(ExitDataError, fmt.Errorf("build index: %w", err))
	}
	engine, err := recommend.NewEngine(idx, cfg.Recommend.EngineConfig(), logging.WithComponent("recommend"))
	if err != nil {
		return nil, withExitCode(ExitDataError, fmt.Errorf("create engine: %w", err))
	}

	return &loaded{cfg: cfg, engine: engine, report: report, elapsed: time.Since(start)}, nil
}
