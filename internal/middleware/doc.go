// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

/*
Package middleware provides HTTP middleware components for the API server.

Key Components:

  - RequestID: UUID-based request tracking, mirrored into the logging context
  - PrometheusMetrics: HTTP request/response instrumentation

Both use the standard func(http.Handler) http.Handler shape so they plug
directly into chi's r.Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)

PrometheusMetrics labels requests by chi route pattern rather than raw path,
so /api/v1/recommend?q=... is always recorded as /api/v1/recommend and label
cardinality stays bounded. Requests that match no route are recorded under
the "unmatched" endpoint.
*/
package middleware
