// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

/*
Package api provides the HTTP REST API layer for MusicMatch.

Endpoints:

  - GET /api/v1/recommend?q=<text>&n=<count>: resolve a song and list similar tracks
  - GET /api/v1/catalog/stats: catalog ingestion summary and request counters
  - GET /api/v1/health/live: liveness probe
  - GET /api/v1/health/ready: readiness probe (a loaded, non-empty catalog)
  - GET /metrics: Prometheus metrics

Every JSON response uses the same envelope:

	{
	  "status": "success",
	  "data": {...},
	  "metadata": {"timestamp": "...", "request_id": "...", "query_time_ms": 1},
	  "error": {"code": "VALIDATION_ERROR", "message": "..."}
	}

A query that matches no track is a successful response with data.found set
to false. Only malformed requests produce 4xx errors.

Middleware Stack:

Requests pass through request ID assignment, real IP extraction, panic
recovery, CORS and Prometheus instrumentation. API routes add httprate
rate limiting and gzip compression. Health probes are limited separately so
monitoring does not compete with user traffic.
*/
package api
