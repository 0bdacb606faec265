// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

// Package services adapts MusicMatch components to suture's context-aware
// Serve pattern: the HTTP server's ListenAndServe/Shutdown lifecycle and a
// ticker-driven maintenance loop.
package services
