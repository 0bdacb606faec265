// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/musicmatch/internal/logging"
	"github.com/tomtom215/musicmatch/internal/recommend"
)

const testCatalog = `track_name,artist_name,track_popularity,artist_genres,artist_popularity
Song One,Artist X,80,"['pop', 'dance pop']",70
Song One (Remix),Artist X,40,['pop'],70
Other Song,Artist Y,75,['rock'],20
Quiet Tune,Artist Z,10,[],20
`

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tracks.csv")
	if err := os.WriteFile(path, []byte(testCatalog), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRecommendCommand(t *testing.T) {
	catalog := writeCatalog(t)

	tests := []struct {
		name     string
		args     []string
		wantErr  error
		contains []string
	}{
		{
			name:     "found",
			args:     []string{"recommend", "song one", "--catalog", catalog},
			contains: []string{"Selected: Song One by Artist X", "Top Recommendations", "1.", "Song One (Remix)", "Same artist: Artist X"},
		},
		{
			name:     "query split across args",
			args:     []string{"recommend", "--catalog", catalog, "other", "song"},
			contains: []string{"Selected: Other Song by Artist Y"},
		},
		{
			name:    "empty query",
			args:    []string{"recommend", "  ", "--catalog", catalog},
			wantErr: errEmptyQuery,
		},
		{
			name:    "no query",
			args:    []string{"recommend", "--catalog", catalog},
			wantErr: errEmptyQuery,
		},
		{
			name:    "not found",
			args:    []string{"recommend", "zzzzqqqq", "--catalog", catalog},
			wantErr: errNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestRecommendCommand_Limit(t *testing.T) {
	out, err := run(t, "recommend", "song one", "-n", "2", "--catalog", writeCatalog(t))
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if strings.Contains(out, "3.") {
		t.Errorf("expected 2 recommendations:\n%s", out)
	}
	if !strings.Contains(out, "2.") {
		t.Errorf("expected a second recommendation:\n%s", out)
	}
}

func TestRecommendCommand_JSON(t *testing.T) {
	out, err := run(t, "recommend", "song one", "--json", "--catalog", writeCatalog(t))
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}

	var res recommend.Result
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if res.Query == nil || res.Query.Name != "Song One" {
		t.Fatalf("query = %+v, want Song One", res.Query)
	}
	if len(res.Items) != 3 {
		t.Errorf("items = %d, want 3", len(res.Items))
	}
}

func TestRecommendCommand_UnknownFormat(t *testing.T) {
	if _, err := run(t, "recommend", "song one", "--catalog", writeCatalog(t), "--format", "xml"); err == nil {
		t.Fatal("expected error for unknown catalog format")
	}
}

func TestStatsCommand(t *testing.T) {
	out, err := run(t, "stats", "--catalog", writeCatalog(t))
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	for _, want := range []string{"Tracks:", "4", "Rows read:", "Features:", "track_popularity"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestStatsCommand_MissingCatalog(t *testing.T) {
	if _, err := run(t, "stats", "--catalog", filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatal("expected error for missing catalog")
	}
}

func TestRootOptions_LoggerConfig(t *testing.T) {
	tests := []struct {
		name      string
		opts      rootOptions
		wantLevel string
		wantErr   bool
	}{
		{name: "default", opts: rootOptions{logLevel: "warn"}, wantLevel: "warn"},
		{name: "explicit level", opts: rootOptions{logLevel: "error"}, wantLevel: "error"},
		{name: "verbose wins", opts: rootOptions{logLevel: "error", verbose: true}, wantLevel: "debug"},
		{name: "unknown level", opts: rootOptions{logLevel: "loud"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			tt.opts.stderr = &stderr

			cfg, err := tt.opts.loggerConfig(logging.DefaultConfig())
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if cfg.Level != tt.wantLevel {
				t.Errorf("Level = %q, want %q", cfg.Level, tt.wantLevel)
			}
			if cfg.Format != "console" || cfg.Output != &stderr {
				t.Errorf("expected console output to the command's stderr, got %+v", cfg)
			}
		})
	}
}

func TestRecommendCommand_InvalidLogLevel(t *testing.T) {
	if _, err := run(t, "recommend", "song one", "--catalog", writeCatalog(t), "--log-level", "loud"); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}
