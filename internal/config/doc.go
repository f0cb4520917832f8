// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package config loads and validates Reelmatch configuration.

# Configuration Sources

Configuration is layered with koanf, later layers winning:

 1. Built-in defaults
 2. A YAML file: CONFIG_PATH, or config.yaml / config.yml in the working
    directory, or /etc/reelmatch/config.yaml
 3. Environment variables (only the mapped names below)

A .env file in the working directory is merged into the environment before
the layers are read; variables already set are kept.

# Environment Variables

Dataset:
  - DATASET_SOURCE (default: movies.csv)
  - DATASET_TABLE (default: movies)
  - DATASET_ORDER_BY
  - DATASET_LOAD_TIMEOUT (default: 2m)

Recommendation engine:
  - RECOMMEND_TOP_K (default: 10)
  - RECOMMEND_MATCH_CUTOFF (default: 0.6)
  - RECOMMEND_SUGGEST_LIMIT (default: 5)
  - RECOMMEND_CACHE_SIZE (default: 10000)
  - RECOMMEND_CACHE_TTL (default: 1h)
  - RECOMMEND_WORKERS (default: 0 = GOMAXPROCS)

HTTP server:
  - HTTP_HOST (default: 0.0.0.0)
  - HTTP_PORT (default: 8000)
  - HTTP_TIMEOUT (default: 30s)
  - SHUTDOWN_TIMEOUT (default: 10s)
  - ENVIRONMENT (default: development)

Security:
  - CORS_ORIGINS (default: *)
  - RATE_LIMIT_REQUESTS (default: 100)
  - RATE_LIMIT_WINDOW (default: 1m)
  - DISABLE_RATE_LIMIT (default: false)

Logging:
  - LOG_LEVEL (default: info)
  - LOG_FORMAT (default: json)
  - LOG_CALLER (default: false)

# Example YAML

	dataset:
	  source: /data/movies.parquet
	recommend:
	  top_k: 15
	  match_cutoff: 0.7
	server:
	  port: 8080
	security:
	  cors_origins:
	    - https://movies.example.com
*/
package config
