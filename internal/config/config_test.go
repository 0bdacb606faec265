// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate keeps Load from picking up config files or variables of the host.
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv(ConfigPathEnvVar, "")
	for env := range envMappings {
		t.Setenv(strings.ToUpper(env), "")
		os.Unsetenv(strings.ToUpper(env))
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Catalog.Path != "data/tracks.csv" || cfg.Catalog.Format != "csv" {
		t.Errorf("catalog = %+v", cfg.Catalog)
	}
	if cfg.Recommend.Threshold != 60 || cfg.Recommend.DefaultN != 5 || cfg.Recommend.MaxSharedGenres != 2 {
		t.Errorf("recommend = %+v", cfg.Recommend)
	}
	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q", cfg.Server.Addr())
	}
	if cfg.Server.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v", cfg.Server.Timeout)
	}
	if !cfg.HasWildcardCORS() {
		t.Error("default CORS should be wildcard")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
catalog:
  path: /data/tracks.parquet
  format: duckdb
recommend:
  threshold: 70
  scorer: jaro_winkler
  cache_ttl: 10m
server:
  port: 9000
security:
  cors_origins:
    - https://a.example.com
logging:
  level: debug
`)
	t.Setenv("HTTP_PORT", "9100")
	t.Setenv("RECOMMEND_MAX_N", "20")
	t.Setenv("CORS_ORIGINS", "https://b.example.com, https://c.example.com")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Catalog.Format != "duckdb" || cfg.Catalog.Path != "/data/tracks.parquet" {
		t.Errorf("catalog = %+v", cfg.Catalog)
	}
	if cfg.Recommend.Threshold != 70 || cfg.Recommend.Scorer != "jaro_winkler" {
		t.Errorf("recommend = %+v", cfg.Recommend)
	}
	if cfg.Recommend.CacheTTL != 10*time.Minute {
		t.Errorf("CacheTTL = %v", cfg.Recommend.CacheTTL)
	}
	if cfg.Recommend.MaxN != 20 {
		t.Errorf("MaxN = %d, env should override", cfg.Recommend.MaxN)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("Port = %d, env should override file", cfg.Server.Port)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://c.example.com" {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.HasWildcardCORS() {
		t.Error("CORS should not be wildcard")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
}

func TestLoad_ConfigPathEnv(t *testing.T) {
	isolate(t)
	t.Setenv(ConfigPathEnvVar, writeConfig(t, "server:\n  port: 7000\n"))

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("Port = %d, want 7000", cfg.Server.Port)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{name: "bad port", env: map[string]string{"HTTP_PORT": "70000"}, wantErr: "server.port"},
		{name: "bad format", env: map[string]string{"CATALOG_FORMAT": "xlsx"}, wantErr: "catalog.format"},
		{name: "bad threshold", env: map[string]string{"RECOMMEND_THRESHOLD": "150"}, wantErr: "recommend.threshold"},
		{name: "bad scorer", env: map[string]string{"RECOMMEND_SCORER": "soundex"}, wantErr: "recommend.scorer"},
		{name: "max below default", env: map[string]string{"RECOMMEND_DEFAULT_N": "10", "RECOMMEND_MAX_N": "3"}, wantErr: "max_n"},
		{name: "bad log level", env: map[string]string{"LOG_LEVEL": "verbose"}, wantErr: "logging.level"},
		{name: "rate limit too small", env: map[string]string{"RATE_LIMIT_REQUESTS": "0"}, wantErr: "RATE_LIMIT_REQUESTS"},
		{name: "rate window too long", env: map[string]string{"RATE_LIMIT_WINDOW": "2h"}, wantErr: "RATE_LIMIT_WINDOW"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load("")
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_RateLimitDisabledSkipsBounds(t *testing.T) {
	cfg := Default()
	cfg.Security.RateLimitDisabled = true
	cfg.Security.RateLimitReqs = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled rate limit should skip bounds: %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{env: "CATALOG_PATH", want: "catalog.path"},
		{env: "RECOMMEND_CACHE_TTL", want: "recommend.cache_ttl"},
		{env: "HTTP_PORT", want: "server.port"},
		{env: "RATE_LIMIT_REQUESTS", want: "security.rate_limit_reqs"},
		{env: "log_level", want: "logging.level"},
		{env: "HOME", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			if got := envTransformFunc(tt.env); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestLoggingConfig_LoggerConfig(t *testing.T) {
	lc := LoggingConfig{Level: "warn", Format: "console", Caller: true}.LoggerConfig()
	if lc.Level != "warn" || lc.Format != "console" || !lc.Caller {
		t.Errorf("LoggerConfig() = %+v", lc)
	}
}
