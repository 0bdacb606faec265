// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

// Package logging provides centralized zerolog-based logging for MusicMatch.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int("tracks", n).Msg("catalog loaded")
//	logging.Ctx(ctx).Debug().Str("query", logging.SanitizeQuery(q)).Msg("resolving")
//
// # Configuration
//
// The logging section of the application config maps onto Config:
//   - logging.level: trace, debug, info, warn, error (default: info)
//   - logging.format: json, console (default: json)
//   - logging.caller: include caller file and line (default: false)
//
// # Request Correlation
//
// The HTTP layer stores a request ID in the request context with
// ContextWithRequestID. Ctx(ctx) returns a logger that carries it, so every
// line written while serving a request can be correlated.
//
// # slog Bridge
//
// SlogHandler implements slog.Handler on top of zerolog. The supervisor tree
// hands it to sutureslog so service restarts and failures land in the same
// structured log stream.
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
package logging
