// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package metrics

import (
	"runtime"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for:
// - Dataset loading (CSV, DuckDB)
// - Catalog ingestion quality
// - Recommendation latency, outcomes and caching
// - API endpoint latency and throughput

// Outcome labels for RecommendRequests.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
)

// Drop reason labels for CatalogRowsDropped.
const (
	DropReasonMissing   = "missing_field"
	DropReasonDuplicate = "duplicate"
)

var (
	// Dataset Metrics
	DatasetLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "musicmatch_dataset_load_duration_seconds",
			Help:    "Duration of dataset loads in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"loader"},
	)

	DatasetLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "musicmatch_dataset_load_errors_total",
			Help: "Total number of failed dataset loads",
		},
		[]string{"loader", "error_type"},
	)

	DatasetRowsLoaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "musicmatch_dataset_rows_loaded_total",
			Help: "Total number of raw rows read from datasets",
		},
		[]string{"loader"},
	)

	// Catalog Metrics
	CatalogTracks = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "musicmatch_catalog_tracks",
			Help: "Number of tracks in the loaded catalog",
		},
	)

	CatalogFeatures = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "musicmatch_catalog_features",
			Help: "Number of numeric feature columns in use",
		},
	)

	CatalogRowsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "musicmatch_catalog_rows_dropped_total",
			Help: "Total number of dataset rows dropped during ingestion",
		},
		[]string{"reason"}, // "missing_field", "duplicate"
	)

	CatalogBuildDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "musicmatch_catalog_build_duration_seconds",
			Help: "Time spent building the catalog and similarity matrix",
		},
	)

	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "musicmatch_recommend_requests_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"outcome"}, // "found", "not_found"
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "musicmatch_recommend_duration_seconds",
			Help:    "Recommendation latency in seconds",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	RecommendCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "musicmatch_recommend_cache_hits_total",
			Help: "Total number of recommendation cache hits",
		},
	)

	RecommendCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "musicmatch_recommend_cache_misses_total",
			Help: "Total number of recommendation cache misses",
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Application Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordDatasetLoad records a dataset load and its row count.
func RecordDatasetLoad(loader string, duration time.Duration, rows int, err error) {
	DatasetLoadDuration.WithLabelValues(loader).Observe(duration.Seconds())
	if err != nil {
		DatasetLoadErrors.WithLabelValues(loader, errorType(err)).Inc()
		return
	}
	DatasetRowsLoaded.WithLabelValues(loader).Add(float64(rows))
}

// errorType reduces an error to a short, low-cardinality label.
func errorType(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "missing required columns"):
		return "schema"
	case strings.Contains(msg, "no such file"), strings.Contains(msg, "not exist"):
		return "not_found"
	case strings.Contains(msg, "parse"), strings.Contains(msg, "csv"):
		return "parse"
	default:
		return "other"
	}
}

// RecordCatalogBuild publishes ingestion results for a freshly built catalog.
func RecordCatalogBuild(tracks, features, droppedMissing, droppedDuplicate int, duration time.Duration) {
	CatalogTracks.Set(float64(tracks))
	CatalogFeatures.Set(float64(features))
	CatalogRowsDropped.WithLabelValues(DropReasonMissing).Add(float64(droppedMissing))
	CatalogRowsDropped.WithLabelValues(DropReasonDuplicate).Add(float64(droppedDuplicate))
	CatalogBuildDuration.Set(duration.Seconds())
}

// RecordRecommend records one recommendation request.
func RecordRecommend(found bool, duration time.Duration) {
	outcome := OutcomeNotFound
	if found {
		outcome = OutcomeFound
	}
	RecommendRequests.WithLabelValues(outcome).Inc()
	RecommendDuration.Observe(duration.Seconds())
}

// RecordRecommendCache records a result cache lookup.
func RecordRecommendCache(hit bool) {
	if hit {
		RecommendCacheHits.Inc()
	} else {
		RecommendCacheMisses.Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// SetAppInfo publishes the build version.
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}

// SetUptime publishes the time elapsed since start.
func SetUptime(start time.Time) {
	AppUptime.Set(time.Since(start).Seconds())
}

// RecordRateLimitHit counts a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}
