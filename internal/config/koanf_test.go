// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Dataset.Source != "movies.csv" {
		t.Errorf("Dataset.Source = %q, want movies.csv", cfg.Dataset.Source)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, []string{"*"}) {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if cfg.Recommend.TopK != 10 || cfg.Recommend.MatchCutoff != 0.6 {
		t.Errorf("unexpected recommend defaults: %+v", cfg.Recommend)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

// TestLoad_Defaults verifies that Load works with no file and no env vars
func TestLoad_Defaults(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8000 || cfg.Dataset.LoadTimeout != 2*time.Minute {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

// TestLoad_EnvOverrides verifies environment variables win over defaults
func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("DATASET_SOURCE", "postgres://user:pw@db:5432/films")
	t.Setenv("DATASET_TABLE", "catalog.movies")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("RECOMMEND_TOP_K", "20")
	t.Setenv("RECOMMEND_MATCH_CUTOFF", "0.75")
	t.Setenv("RECOMMEND_CACHE_TTL", "90s")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("DISABLE_RATE_LIMIT", "true")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("UNRELATED_SETTING", "ignored")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Dataset.Source != "postgres://user:pw@db:5432/films" || cfg.Dataset.Table != "catalog.movies" {
		t.Errorf("dataset = %+v", cfg.Dataset)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Recommend.TopK != 20 || cfg.Recommend.MatchCutoff != 0.75 || cfg.Recommend.CacheTTL != 90*time.Second {
		t.Errorf("recommend = %+v", cfg.Recommend)
	}
	want := []string{"https://a.example.com", "https://b.example.com"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, want) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	if !cfg.Security.RateLimitDisabled {
		t.Error("rate limiting should be disabled")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
}

// TestLoad_ConfigFile verifies YAML values override defaults and env overrides YAML
func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := `
dataset:
  source: /data/movies.parquet
recommend:
  top_k: 5
  suggest_limit: 3
server:
  port: 8081
security:
  cors_origins:
    - https://movies.example.com
logging:
  format: console
`
	if err := os.WriteFile(path, []byte(yamlContent), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "8082")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Dataset.Source != "/data/movies.parquet" {
		t.Errorf("Dataset.Source = %q", cfg.Dataset.Source)
	}
	if cfg.Recommend.TopK != 5 || cfg.Recommend.SuggestLimit != 3 {
		t.Errorf("recommend = %+v", cfg.Recommend)
	}
	if cfg.Recommend.MatchCutoff != 0.6 {
		t.Errorf("unset values keep their defaults, MatchCutoff = %v", cfg.Recommend.MatchCutoff)
	}
	if cfg.Server.Port != 8082 {
		t.Errorf("env should override the file, port = %d", cfg.Server.Port)
	}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, []string{"https://movies.example.com"}) {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q", cfg.Logging.Format)
	}
}

// TestLoad_InvalidConfig verifies validation errors surface from Load
func TestLoad_InvalidConfig(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("RECOMMEND_MATCH_CUTOFF", "1.5")

	if _, err := Load(); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("REELMATCH_TEST_DOTENV=loaded\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("REELMATCH_TEST_DOTENV", "")
	os.Unsetenv("REELMATCH_TEST_DOTENV")

	if err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}
	if got := os.Getenv("REELMATCH_TEST_DOTENV"); got != "loaded" {
		t.Errorf("REELMATCH_TEST_DOTENV = %q, want loaded", got)
	}

	if err := loadDotEnv(filepath.Join(dir, "absent.env")); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := map[string]string{
		"DATASET_SOURCE":      "dataset.source",
		"HTTP_PORT":           "server.port",
		"RATE_LIMIT_REQUESTS": "security.rate_limit_reqs",
		"log_format":          "logging.format",
		"PATH":                "",
		"HOME":                "",
	}
	for in, want := range tests {
		if got := envTransformFunc(in); got != want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{name: "defaults", modify: func(*Config) {}},
		{name: "empty source", modify: func(c *Config) { c.Dataset.Source = " " }, wantErr: true},
		{name: "zero load timeout", modify: func(c *Config) { c.Dataset.LoadTimeout = 0 }, wantErr: true},
		{name: "zero top_k", modify: func(c *Config) { c.Recommend.TopK = 0 }, wantErr: true},
		{name: "negative workers", modify: func(c *Config) { c.Recommend.Workers = -1 }, wantErr: true},
		{name: "port out of range", modify: func(c *Config) { c.Server.Port = 70000 }, wantErr: true},
		{name: "unknown environment", modify: func(c *Config) { c.Server.Environment = "qa" }, wantErr: true},
		{name: "no cors origins", modify: func(c *Config) { c.Security.CORSOrigins = nil }, wantErr: true},
		{name: "rate limit too high", modify: func(c *Config) { c.Security.RateLimitReqs = 1 << 20 }, wantErr: true},
		{name: "rate limit window too short", modify: func(c *Config) { c.Security.RateLimitWindow = time.Millisecond }, wantErr: true},
		{
			name: "disabled rate limit skips bounds",
			modify: func(c *Config) {
				c.Security.RateLimitDisabled = true
				c.Security.RateLimitReqs = 0
			},
		},
		{name: "bad log level", modify: func(c *Config) { c.Logging.Level = "verbose" }, wantErr: true},
		{name: "bad log format", modify: func(c *Config) { c.Logging.Format = "xml" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConversions(t *testing.T) {
	cfg := defaultConfig()
	cfg.Recommend.Workers = 3
	cfg.Dataset.OrderBy = "id"

	if got := cfg.Recommend.EngineConfig(); got.TopK != 10 || got.CacheTTL != time.Hour {
		t.Errorf("EngineConfig = %+v", got)
	}
	if got := cfg.Recommend.IndexOptions(); got.Workers != 3 {
		t.Errorf("IndexOptions = %+v", got)
	}
	if got := cfg.Dataset.SourceOptions(); got.Table != "movies" || got.OrderBy != "id" {
		t.Errorf("SourceOptions = %+v", got)
	}
	if got := cfg.Logging.LoggerConfig(); got.Level != "info" || got.Format != "json" || !got.Timestamp {
		t.Errorf("LoggerConfig = %+v", got)
	}
	if cfg.IsProduction() {
		t.Error("default environment is development")
	}
	if !cfg.HasWildcardCORS() {
		t.Error("default CORS is a wildcard")
	}
}
