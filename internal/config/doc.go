// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

/*
Package config provides centralized configuration management for MusicMatch.

# Configuration Sources

Configuration is layered with Koanf v2, later layers overriding earlier ones:

 1. Defaults built into the binary
 2. An optional YAML file (CONFIG_PATH, then config.yaml, config.yml,
    /etc/musicmatch/config.yaml, /etc/musicmatch/config.yml)
 3. Environment variables

Only the environment variables listed below are read. Anything else in the
environment is ignored.

# Environment Variables

Catalog:
  - CATALOG_PATH: track file to load (default: data/tracks.csv)
  - CATALOG_FORMAT: csv or duckdb (default: csv)

Recommendation:
  - RECOMMEND_THRESHOLD: minimum fuzzy score 0-100 (default: 60)
  - RECOMMEND_SCORER: wratio or jaro_winkler (default: wratio)
  - RECOMMEND_DEFAULT_N: results when n is omitted (default: 5)
  - RECOMMEND_MAX_N: maximum results per request (default: 50)
  - RECOMMEND_MAX_SHARED_GENRES: genres listed per explanation (default: 2)
  - RECOMMEND_POPULARITY_DELTA: popularity gap for hit/gem labels (default: 20)
  - RECOMMEND_CACHE_ENABLED, RECOMMEND_CACHE_SIZE, RECOMMEND_CACHE_TTL

HTTP Server:
  - HTTP_HOST: bind address (default: 0.0.0.0)
  - HTTP_PORT: listen port (default: 8080)
  - HTTP_TIMEOUT: read/write timeout (default: 30s)
  - SHUTDOWN_TIMEOUT: graceful shutdown limit (default: 10s)

Security:
  - CORS_ORIGINS: comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, RATE_LIMIT_DISABLED

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: include caller file:line (default: false)

# Example YAML

	catalog:
	  path: /data/tracks.parquet
	  format: duckdb
	recommend:
	  threshold: 70
	  cache_ttl: 10m
	security:
	  cors_origins:
	    - https://music.example.com
*/
package config
