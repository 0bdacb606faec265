// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

Dataset Metrics:
  - musicmatch_dataset_load_duration_seconds: Load time (histogram)
    Labels: loader (csv, duckdb)
  - musicmatch_dataset_load_errors_total: Failed loads (counter)
    Labels: loader, error_type
  - musicmatch_dataset_rows_loaded_total: Raw rows read (counter)

Catalog Metrics:
  - musicmatch_catalog_tracks: Tracks in the catalog (gauge)
  - musicmatch_catalog_features: Feature columns in use (gauge)
  - musicmatch_catalog_rows_dropped_total: Rows rejected at ingestion (counter)
    Labels: reason (missing_field, duplicate)
  - musicmatch_catalog_build_duration_seconds: Catalog and matrix build time (gauge)

Recommendation Metrics:
  - musicmatch_recommend_requests_total: Requests (counter)
    Labels: outcome (found, not_found)
  - musicmatch_recommend_duration_seconds: Latency (histogram)
  - musicmatch_recommend_cache_hits_total, musicmatch_recommend_cache_misses_total

API Metrics:
  - api_requests_total: Requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)

# Example PromQL

Not-found ratio over five minutes:

	sum(rate(musicmatch_recommend_requests_total{outcome="not_found"}[5m]))
	  / sum(rate(musicmatch_recommend_requests_total[5m]))

95th percentile recommendation latency:

	histogram_quantile(0.95, rate(musicmatch_recommend_duration_seconds_bucket[5m]))

# Thread Safety

All recording functions are safe for concurrent use.
*/
package metrics
