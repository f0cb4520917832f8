// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"time"

	"github.com/tomtom215/reelmatch/internal/dataset"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// Config holds all application configuration.
type Config struct {
	Dataset   DatasetConfig   `koanf:"dataset"`
	Recommend RecommendConfig `koanf:"recommend"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// DatasetConfig selects the movie dataset read at startup.
//
// Environment Variables:
//   - DATASET_SOURCE: CSV path, .parquet/.json/.duckdb/.db file, sqlite://, duckdb:// or postgres:// URL (default: movies.csv)
//   - DATASET_TABLE: Table for database sources (default: movies)
//   - DATASET_ORDER_BY: Column fixing row order for database sources
//   - DATASET_LOAD_TIMEOUT: Upper bound on the load (default: 2m)
type DatasetConfig struct {
	Source      string        `koanf:"source"`
	Table       string        `koanf:"table"`
	OrderBy     string        `koanf:"order_by"`
	LoadTimeout time.Duration `koanf:"load_timeout"`
}

// SourceOptions returns the options passed to dataset.Load.
func (d DatasetConfig) SourceOptions() dataset.Options {
	return dataset.Options{Table: d.Table, OrderBy: d.OrderBy}
}

// RecommendConfig tunes the recommendation engine.
//
// Environment Variables:
//   - RECOMMEND_TOP_K: Recommendations per query (default: 10)
//   - RECOMMEND_MATCH_CUTOFF: Minimum title similarity, 0-1 (default: 0.6)
//   - RECOMMEND_SUGGEST_LIMIT: Default suggestion count (default: 5)
//   - RECOMMEND_CACHE_SIZE: Resolution cache entries, 0 disables (default: 10000)
//   - RECOMMEND_CACHE_TTL: Resolution cache TTL (default: 1h)
//   - RECOMMEND_WORKERS: Goroutines building the similarity matrix (default: 0 = GOMAXPROCS)
type RecommendConfig struct {
	TopK         int           `koanf:"top_k"`
	MatchCutoff  float64       `koanf:"match_cutoff"`
	SuggestLimit int           `koanf:"suggest_limit"`
	CacheSize    int           `koanf:"cache_size"`
	CacheTTL     time.Duration `koanf:"cache_ttl"`
	Workers      int           `koanf:"workers"`
}

// EngineConfig converts to the engine's own configuration type.
func (r RecommendConfig) EngineConfig() *recommend.Config {
	return &recommend.Config{
		TopK:         r.TopK,
		MatchCutoff:  r.MatchCutoff,
		SuggestLimit: r.SuggestLimit,
		CacheSize:    r.CacheSize,
		CacheTTL:     r.CacheTTL,
	}
}

// IndexOptions returns the options passed to recommend.BuildIndex.
func (r RecommendConfig) IndexOptions() recommend.IndexOptions {
	return recommend.IndexOptions{Workers: r.Workers}
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_HOST: Bind address (default: 0.0.0.0)
//   - HTTP_PORT: Listen port (default: 8000)
//   - HTTP_TIMEOUT: Read/write timeout (default: 30s)
//   - SHUTDOWN_TIMEOUT: Graceful shutdown bound (default: 10s)
//   - ENVIRONMENT: development, staging or production (default: development)
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"`
}

// SecurityConfig holds CORS and rate limiting settings.
//
// Environment Variables:
//   - CORS_ORIGINS: Comma-separated allowed origins (default: *)
//   - RATE_LIMIT_REQUESTS: Requests per window per client (default: 100)
//   - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
//   - DISABLE_RATE_LIMIT: Turn rate limiting off (default: false)
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// LoggerConfig converts to the logging package's configuration.
func (l LoggingConfig) LoggerConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = l.Level
	cfg.Format = l.Format
	cfg.Caller = l.Caller
	return cfg
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
