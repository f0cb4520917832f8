// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/recommend/titlematch"
)

// Engine answers recommendation queries against an Index.
// It is safe for concurrent use.
type Engine struct {
	config   *Config
	logger   zerolog.Logger
	index    *Index
	resolver *titlematch.Resolver

	// resolved memoizes query -> match. nil when disabled.
	resolved *cache.LRU[titlematch.Match]
}

// NewEngine creates an engine over idx. A nil cfg uses DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(idx *Index, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if idx == nil {
		return nil, ErrEmptyIndex
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		config:   cfg,
		logger:   logger.With().Str("component", "recommend").Logger(),
		index:    idx,
		resolver: titlematch.New(idx.Titles(), titlematch.WithCutoff(cfg.MatchCutoff)),
	}
	if cfg.CacheSize > 0 {
		e.resolved = cache.NewLRU[titlematch.Match](cfg.CacheSize, cfg.CacheTTL)
	}
	return e, nil
}

// Index returns the engine's index.
func (e *Engine) Index() *Index {
	return e.index
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() Config {
	return *e.config
}

// Recommend resolves query to a known title and returns up to TopK other
// titles ranked by content similarity. It returns ErrMovieNotFound when no
// title is close enough.
func (e *Engine) Recommend(ctx context.Context, query string) (*Result, error) {
	start := time.Now()
	logger := logging.CtxWith(ctx).Str("component", "recommend").Logger()

	if err := ctx.Err(); err != nil {
		metrics.RecordRecommendation(metrics.OutcomeError, time.Since(start))
		return nil, err
	}

	match, err := e.resolve(query)
	if err != nil {
		metrics.RecordRecommendation(metrics.OutcomeNotFound, time.Since(start))
		logger.Debug().Str("query", query).Msg("No title matched query")
		return nil, err
	}

	res := &Result{
		Query:           query,
		MatchedTitle:    match.Title,
		MatchScore:      match.Score,
		Recommendations: e.rank(match.Index, e.config.TopK),
	}

	elapsed := time.Since(start)
	metrics.RecordRecommendation(metrics.OutcomeOK, elapsed)
	logger.Debug().
		Str("query", query).
		Str("matched_title", match.Title).
		Float64("match_score", match.Score).
		Int("returned", len(res.Recommendations)).
		Dur("elapsed", elapsed).
		Msg("Recommendation complete")

	return res, nil
}

// Suggest returns up to n close title matches for query. n <= 0 uses the
// configured SuggestLimit.
func (e *Engine) Suggest(query string, n int) []titlematch.Match {
	if n <= 0 {
		n = e.config.SuggestLimit
	}
	return e.resolver.Suggest(query, n)
}

// Stats returns index and cache statistics.
func (e *Engine) Stats() EngineStats {
	s := EngineStats{Index: e.index.Stats(), TopK: e.config.TopK}
	if e.resolved != nil {
		s.Cache = e.resolved.Stats()
	}
	return s
}

// PurgeExpiredCache drops expired entries from the resolution cache and
// returns how many were removed. Expired entries are never served either
// way; purging only returns their memory.
func (e *Engine) PurgeExpiredCache() int {
	if e.resolved == nil {
		return 0
	}
	return e.resolved.CleanupExpired()
}

// resolve maps query to a title match, consulting the cache first.
// Only successful resolutions are cached.
func (e *Engine) resolve(query string) (titlematch.Match, error) {
	if e.resolved != nil {
		if m, ok := e.resolved.Get(query); ok {
			metrics.RecordTitleCache(true)
			return m, nil
		}
		metrics.RecordTitleCache(false)
	}

	m, err := e.resolver.Resolve(query)
	if errors.Is(err, titlematch.ErrNoMatch) {
		return titlematch.Match{}, fmt.Errorf("%w: %q", ErrMovieNotFound, query)
	}
	if err != nil {
		return titlematch.Match{}, err
	}

	if e.resolved != nil {
		e.resolved.Add(query, m)
	}
	return m, nil
}

// rank orders every movie other than the one at pos by its similarity to
// pos and returns the first k. Positions that carry the matched title are
// excluded, so duplicates of the title never recommend themselves.
func (e *Engine) rank(pos, k int) []Recommendation {
	idx := e.index
	row := idx.matrix.Row(pos)
	matched := idx.titles[pos]

	candidates := make([]Recommendation, 0, len(row))
	for j, score := range row {
		if idx.titles[j] == matched {
			continue
		}
		candidates = append(candidates, Recommendation{Title: idx.titles[j], Position: j, Score: score})
	}

	// Candidates are already in position order; a stable sort keeps ties there.
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].Score > candidates[b].Score
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}
	return candidates
}
