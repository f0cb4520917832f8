// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/dataset"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/supervisor"
	"github.com/tomtom215/reelmatch/internal/supervisor/services"
)

// EngineComponents holds everything built from the dataset at startup.
type EngineComponents struct {
	Engine *recommend.Engine
	Report dataset.Report
}

// initEngine loads the dataset and builds the similarity index. Both steps
// run under the dataset load timeout; the index is immutable afterwards.
func initEngine(ctx context.Context, cfg *config.Config) (*EngineComponents, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Dataset.LoadTimeout)
	defer cancel()

	movies, report, err := dataset.Load(ctx, cfg.Dataset.Source, cfg.Dataset.SourceOptions())
	if err != nil {
		return nil, err
	}

	start := time.Now()
	idx, err := recommend.BuildIndex(ctx, movies, cfg.Recommend.IndexOptions())
	if err != nil {
		return nil, fmt.Errorf("build index: %w", err)
	}
	stats := idx.Stats()
	logging.Info().
		Int("movies", stats.Movies).
		Int("vocabulary_terms", stats.VocabularyTerms).
		Int64("matrix_bytes", stats.MatrixBytes).
		Dur("elapsed", time.Since(start)).
		Msg("Similarity index built")

	engine, err := recommend.NewEngine(idx, cfg.Recommend.EngineConfig(), logging.WithComponent("recommend"))
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}

	return &EngineComponents{Engine: engine, Report: report}, nil
}

// addCacheJanitor supervises periodic purging of expired title resolutions.
// Nothing is added when the cache is disabled.
func addCacheJanitor(cfg *config.Config, engine *recommend.Engine, tree *supervisor.SupervisorTree) {
	if cfg.Recommend.CacheSize == 0 {
		logging.Info().Msg("Title resolution cache disabled (RECOMMEND_CACHE_SIZE=0)")
		return
	}

	interval := cfg.Recommend.CacheTTL / 2
	if interval > services.DefaultJanitorInterval {
		interval = services.DefaultJanitorInterval
	}
	janitor := services.NewCacheJanitorService(engine, services.CacheJanitorConfig{
		Interval: interval,
	}, logging.WithComponent("supervisor"))
	tree.AddMaintenanceService(janitor)

	logging.Info().
		Dur("interval", interval).
		Msg("Cache janitor added to supervisor tree")
}
