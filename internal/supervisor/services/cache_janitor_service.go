// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// DefaultJanitorInterval is used when CacheJanitorConfig.Interval is unset.
const DefaultJanitorInterval = 5 * time.Minute

// CachePurger drops expired cache entries and reports how many went.
// *recommend.Engine satisfies it.
type CachePurger interface {
	PurgeExpiredCache() int
}

// CacheJanitorConfig holds configuration for the cache janitor.
type CacheJanitorConfig struct {
	// Interval between purges.
	// Default: 5m
	Interval time.Duration

	// PurgeOnStartup runs one purge before the first tick.
	PurgeOnStartup bool
}

// CacheJanitorService periodically purges expired title resolutions.
// Expired entries are never served; the janitor only gives the memory back
// between lookups.
type CacheJanitorService struct {
	purger CachePurger
	config CacheJanitorConfig
	logger zerolog.Logger
	name   string
}

// NewCacheJanitorService creates a janitor for purger.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheJanitorService(purger CachePurger, cfg CacheJanitorConfig, logger zerolog.Logger) *CacheJanitorService {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultJanitorInterval
	}
	return &CacheJanitorService{
		purger: purger,
		config: cfg,
		logger: logger.With().Str("service", "cache-janitor").Logger(),
		name:   "cache-janitor",
	}
}

// Serve implements suture.Service.
func (s *CacheJanitorService) Serve(ctx context.Context) error {
	s.logger.Debug().
		Dur("interval", s.config.Interval).
		Msg("cache janitor starting")

	if s.config.PurgeOnStartup {
		s.purge()
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug().Msg("cache janitor shutting down")
			return ctx.Err()
		case <-ticker.C:
			s.purge()
		}
	}
}

func (s *CacheJanitorService) purge() {
	if n := s.purger.PurgeExpiredCache(); n > 0 {
		s.logger.Debug().Int("purged", n).Msg("expired title resolutions purged")
	}
}

// String returns the service name for logging.
func (s *CacheJanitorService) String() string {
	return s.name
}
