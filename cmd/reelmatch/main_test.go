// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/tomtom215/reelmatch/internal/config"
)

const testCatalog = `title,genres,keywords,tagline,cast,director
Avatar,Action Adventure Science Fiction,space colony future,Enter the World of Pandora.,Sam Worthington Zoe Saldana,James Cameron
Aliens,Action Science Fiction Horror,space marine colony alien,This time it's war.,Sigourney Weaver Michael Biehn,James Cameron
Titanic,Drama Romance,shipwreck iceberg ocean liner,Nothing on Earth could come between them.,Kate Winslet Leonardo DiCaprio,James Cameron
,Drama,,,,
Heat,Crime Drama Thriller,heist robbery detective,A Los Angeles crime saga.,Al Pacino Robert De Niro,Michael Mann
`

// setupCLI writes the test catalog and isolates the run from any config
// file or dataset variables on the host.
func setupCLI(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.ConfigPathEnvVar, filepath.Join(dir, "missing.yaml"))
	for _, key := range []string{"DATASET_SOURCE", "DATASET_TABLE", "RECOMMEND_TOP_K", "RECOMMEND_MATCH_CUTOFF"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	path := filepath.Join(dir, "movies.csv")
	if err := os.WriteFile(path, []byte(testCatalog), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRecommend_JSON(t *testing.T) {
	source := setupCLI(t)

	code, stdout, stderr := runCLI(t, "recommend", "Avatr", "--source", source, "--output", "json")
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr)
	}

	var out RecommendOutput
	if err := json.Unmarshal([]byte(stdout), &out); err != nil {
		t.Fatalf("invalid JSON %q: %v", stdout, err)
	}
	if out.Query != "Avatr" || out.MatchedMovie != "Avatar" {
		t.Errorf("query/match = %q/%q", out.Query, out.MatchedMovie)
	}
	if len(out.Recommendations) != 3 || out.Recommendations[0].Title != "Aliens" {
		t.Errorf("recommendations = %+v", out.Recommendations)
	}
	for _, rec := range out.Recommendations {
		if rec.Title == "Avatar" {
			t.Error("matched movie recommended to itself")
		}
	}
}

func TestRecommend_MultiWordTitleAndTopK(t *testing.T) {
	source := setupCLI(t)

	code, stdout, stderr := runCLI(t, "-s", source, "-o", "yaml", "recommend", "-k", "1", "Heat")
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr)
	}

	var out RecommendOutput
	if err := yaml.Unmarshal([]byte(stdout), &out); err != nil {
		t.Fatalf("invalid YAML %q: %v", stdout, err)
	}
	if len(out.Recommendations) != 1 {
		t.Errorf("got %d recommendations, want 1", len(out.Recommendations))
	}

	code, stdout, _ = runCLI(t, "-s", source, "recommend", "The", "Aliens")
	if code != ExitSuccess || !strings.Contains(stdout, `matched "Aliens"`) {
		t.Errorf("multi-word query: code %d, output %q", code, stdout)
	}
}

func TestRecommend_NotFound(t *testing.T) {
	source := setupCLI(t)

	code, stdout, stderr := runCLI(t, "recommend", "zzzzzzzzzzzzzz", "--source", source)
	if code != ExitNotFound {
		t.Errorf("exit code = %d, want %d", code, ExitNotFound)
	}
	if stdout != "" {
		t.Errorf("unexpected stdout %q", stdout)
	}
	if !strings.Contains(stderr, "no movie matches") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestMatch(t *testing.T) {
	source := setupCLI(t)

	code, stdout, stderr := runCLI(t, "match", "Alien", "--source", source, "-o", "json", "--limit", "2")
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr)
	}
	var out MatchOutput
	if err := json.Unmarshal([]byte(stdout), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out.Cutoff != 0.6 || len(out.Matches) == 0 || out.Matches[0].Title != "Aliens" {
		t.Errorf("match output = %+v", out)
	}
	if out.Matches[0].Distance == nil || *out.Matches[0].Distance != 1 {
		t.Errorf("distance = %v, want 1", out.Matches[0].Distance)
	}

	code, _, _ = runCLI(t, "match", "qqqqqqqq", "--source", source)
	if code != ExitNotFound {
		t.Errorf("no match exit code = %d, want %d", code, ExitNotFound)
	}
}

func TestStatsAndCheck(t *testing.T) {
	source := setupCLI(t)

	code, stdout, stderr := runCLI(t, "stats", "--source", source, "-o", "json")
	if code != ExitSuccess {
		t.Fatalf("stats exit code = %d, stderr = %s", code, stderr)
	}
	var stats StatsOutput
	if err := json.Unmarshal([]byte(stdout), &stats); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if stats.Movies != 4 || stats.SkippedRows != 1 || stats.Rows != 5 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.MatrixBytes != 4*4*8 {
		t.Errorf("MatrixBytes = %d, want %d", stats.MatrixBytes, 4*4*8)
	}
	if len(stats.BuildDurationsMS) != 3 {
		t.Errorf("build stages = %v", stats.BuildDurationsMS)
	}

	code, stdout, _ = runCLI(t, "check", "--source", source)
	if code != ExitSuccess || !strings.HasPrefix(stdout, "ok: 4 movies") {
		t.Errorf("check: code %d, output %q", code, stdout)
	}
}

func TestExitCodes(t *testing.T) {
	source := setupCLI(t)
	dir := filepath.Dir(source)

	tests := []struct {
		name string
		args []string
		want int
	}{
		{name: "missing dataset", args: []string{"check", "--source", filepath.Join(dir, "absent.csv")}, want: ExitDataError},
		{name: "missing columns", args: []string{"check", "--source", writeFile(t, dir, "bad.csv", "title,genres\nHeat,Crime\n")}, want: ExitDataError},
		{name: "invalid cutoff", args: []string{"recommend", "Heat", "--source", source, "--cutoff", "2"}, want: ExitConfigError},
		{name: "unknown format", args: []string{"stats", "--source", source, "--output", "xml"}, want: ExitError},
		{name: "missing argument", args: []string{"recommend"}, want: ExitError},
		{name: "unknown command", args: []string{"train"}, want: ExitError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code, _, stderr := runCLI(t, tt.args...); code != tt.want {
				t.Errorf("exit code = %d, want %d (stderr %q)", code, tt.want, stderr)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	base := errors.New("boom")
	tests := []struct {
		err  error
		want int
	}{
		{err: nil, want: ExitSuccess},
		{err: base, want: ExitError},
		{err: withExitCode(ExitDataError, base), want: ExitDataError},
		{err: errors.Join(errors.New("ctx"), withExitCode(ExitNotFound, base)), want: ExitNotFound},
	}
	for _, tt := range tests {
		if got := exitCode(tt.err); got != tt.want {
			t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
	if withExitCode(ExitError, nil) != nil {
		t.Error("withExitCode(nil) should stay nil")
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}
