// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package main is the entry point for the Reelmatch server.

Reelmatch loads a movie catalog, builds a TF-IDF cosine similarity index over
genres, keywords, tagline, cast and director, and serves recommendations for
free-text titles over HTTP.

# Startup

 1. Configuration: koanf layers (defaults, YAML file, environment) plus .env
 2. Logging: zerolog, JSON or console
 3. Dataset: CSV, Parquet, JSON, DuckDB, SQLite or PostgreSQL, chosen by DATASET_SOURCE
 4. Index: built synchronously under DATASET_LOAD_TIMEOUT; failure is fatal
 5. Supervisor tree: suture v4, events logged through the slog bridge
 6. HTTP server: chi router, readiness flipped on once serving starts

The supervisor tree:

	RootSupervisor ("reelmatch")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── CacheJanitorService (unless RECOMMEND_CACHE_SIZE=0)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

# Signal Handling

SIGINT and SIGTERM cancel the root context. The readiness probe starts
failing, in-flight requests drain within SHUTDOWN_TIMEOUT, and the process
exits non-zero if any service ignored the deadline.

# Example Usage

	export DATASET_SOURCE=/data/movies.csv
	export HTTP_PORT=8000
	./reelmatch-server

	curl -s -X POST localhost:8000/recommendation -d '{"movie":"Avatr"}'

With a PostgreSQL catalog:

	export DATASET_SOURCE=postgres://reader:secret@db:5432/films
	export DATASET_TABLE=movies
	export DATASET_ORDER_BY=id
	./reelmatch-server
*/
package main
