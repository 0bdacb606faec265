// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

// Package main is the entry point for the MusicMatch HTTP server.
//
// The server initializes components in order:
//
//  1. Configuration: defaults, config.yaml and environment (Koanf v2)
//  2. Logging: zerolog from the logging section
//  3. Catalog: the track dataset through the configured loader (csv or duckdb)
//  4. Engine: catalog build, similarity model, fuzzy resolver
//  5. HTTP server: chi router with CORS, rate limiting and Prometheus metrics
//  6. Supervisor tree: HTTP server and maintenance service under suture
//
// A catalog that fails to load or build stops the process before the server
// listens.
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the root context. The HTTP server stops
// accepting connections and waits up to SHUTDOWN_TIMEOUT for in-flight
// requests.
//
// # Example Usage
//
//	export CATALOG_PATH=data/tracks.csv
//	export HTTP_PORT=8080
//	./musicmatch-server
//
//	curl 'http://localhost:8080/api/v1/recommend?q=song+one&n=5'
package main
