// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"fmt"
	"time"

	"github.com/tomtom215/reelmatch/internal/recommend/titlematch"
)

// Config contains the query-time settings of the Engine.
type Config struct {
	// TopK is the maximum number of recommendations per query.
	// Default: 10
	TopK int `json:"top_k"`

	// MatchCutoff is the minimum title similarity ratio, inclusive.
	// Default: 0.6
	MatchCutoff float64 `json:"match_cutoff"`

	// SuggestLimit is the default number of title suggestions.
	// Default: 5
	SuggestLimit int `json:"suggest_limit"`

	// CacheSize bounds the resolution cache. Zero disables it.
	// Default: 10000
	CacheSize int `json:"cache_size"`

	// CacheTTL is how long a resolved query stays cached.
	// Default: 1h
	CacheTTL time.Duration `json:"cache_ttl"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		TopK:         10,
		MatchCutoff:  titlematch.DefaultCutoff,
		SuggestLimit: 5,
		CacheSize:    10000,
		CacheTTL:     time.Hour,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.TopK < 1 {
		return fmt.Errorf("top_k must be positive, got %d", c.TopK)
	}
	if c.MatchCutoff < 0 || c.MatchCutoff > 1 {
		return fmt.Errorf("match_cutoff must be in [0, 1], got %f", c.MatchCutoff)
	}
	if c.SuggestLimit < 1 {
		return fmt.Errorf("suggest_limit must be positive, got %d", c.SuggestLimit)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must be non-negative, got %d", c.CacheSize)
	}
	if c.CacheSize > 0 && c.CacheTTL <= 0 {
		return fmt.Errorf("cache_ttl must be positive when the cache is enabled, got %v", c.CacheTTL)
	}
	return nil
}
