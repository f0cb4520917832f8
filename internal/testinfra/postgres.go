// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

//go:build integration

package testinfra

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	DefaultPostgresImage    = "postgres:16-alpine"
	DefaultPostgresPort     = "5432"
	DefaultPostgresUser     = "reelmatch"
	DefaultPostgresPassword = "reelmatch"
	DefaultPostgresDatabase = "movies"
)

// PostgresContainer is a running PostgreSQL server.
type PostgresContainer struct {
	testcontainers.Container

	// DSN is a postgres:// URL reachable from the test process.
	DSN string
}

// PostgresOption configures the PostgreSQL container.
type PostgresOption func(*postgresConfig)

type postgresConfig struct {
	image        string
	initSQL      string
	startTimeout time.Duration
}

// WithPostgresImage overrides the Docker image.
func WithPostgresImage(image string) PostgresOption {
	return func(c *postgresConfig) {
		c.image = image
	}
}

// WithInitSQL runs sql through psql once the server accepts connections.
func WithInitSQL(sql string) PostgresOption {
	return func(c *postgresConfig) {
		c.initSQL = sql
	}
}

// WithPostgresStartTimeout bounds the wait for the server to come up.
func WithPostgresStartTimeout(timeout time.Duration) PostgresOption {
	return func(c *postgresConfig) {
		c.startTimeout = timeout
	}
}

// NewPostgresContainer creates and starts a PostgreSQL container.
func NewPostgresContainer(ctx context.Context, opts ...PostgresOption) (*PostgresContainer, error) {
	cfg := &postgresConfig{
		image:        DefaultPostgresImage,
		startTimeout: 60 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	req := testcontainers.ContainerRequest{
		Image:        cfg.image,
		ExposedPorts: []string{DefaultPostgresPort + "/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     DefaultPostgresUser,
			"POSTGRES_PASSWORD": DefaultPostgresPassword,
			"POSTGRES_DB":       DefaultPostgresDatabase,
		},
		// The entrypoint restarts the server once after initdb, so the ready
		// line is logged twice.
		WaitingFor: wait.ForAll(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForListeningPort(DefaultPostgresPort+"/tcp"),
		).WithStartupTimeout(cfg.startTimeout),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("create postgres container: %w", err)
	}

	if cfg.initSQL != "" {
		if err := runInitSQL(ctx, container, cfg.initSQL); err != nil {
			container.Terminate(ctx) //nolint:errcheck
			return nil, fmt.Errorf("run init sql: %w", err)
		}
	}

	host, err := container.Host(ctx)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, DefaultPostgresPort)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get mapped port: %w", err)
	}

	return &PostgresContainer{
		Container: container,
		DSN: fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			DefaultPostgresUser, DefaultPostgresPassword, host, port.Port(), DefaultPostgresDatabase),
	}, nil
}

func runInitSQL(ctx context.Context, container testcontainers.Container, sql string) error {
	const path = "/tmp/init.sql"
	if err := container.CopyToContainer(ctx, []byte(sql), path, 0o644); err != nil {
		return fmt.Errorf("copy init sql: %w", err)
	}

	code, output, err := container.Exec(ctx, []string{
		"psql", "-v", "ON_ERROR_STOP=1",
		"-U", DefaultPostgresUser, "-d", DefaultPostgresDatabase, "-f", path,
	})
	if err != nil {
		return fmt.Errorf("exec psql: %w", err)
	}
	if code != 0 {
		msg, _ := io.ReadAll(output)
		return fmt.Errorf("psql exited with %d: %s", code, msg)
	}
	return nil
}
