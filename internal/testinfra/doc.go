// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package testinfra starts Docker containers for integration tests through
// testcontainers-go. Every file is behind the integration build tag:
//
//	go test -tags integration ./...
//
// # PostgreSQL Container
//
// NewPostgresContainer starts a throwaway PostgreSQL server and runs optional
// seed SQL before returning:
//
//	pg, err := testinfra.NewPostgresContainer(ctx,
//	    testinfra.WithInitSQL(seed),
//	)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	defer testinfra.CleanupContainer(t, ctx, pg)
//
//	movies, _, err := dataset.Load(ctx, pg.DSN, dataset.Options{})
//
// Tests call SkipIfNoDocker first so they skip cleanly on machines
// without a Docker daemon.
package testinfra
