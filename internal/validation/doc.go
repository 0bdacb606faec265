// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

/*
Package validation provides struct validation using go-playground/validator v10.

A single validator instance is shared process-wide. It caches struct metadata,
so validating the same request and config types repeatedly is cheap.

# Field Names

Error messages use the name a caller actually typed: the "query" tag for
HTTP parameters, then the "koanf" tag for configuration keys, then the
"json" tag, falling back to the Go field name.

	type RecommendRequest struct {
	    Query string `query:"q" validate:"searchquery"`
	    N     int    `query:"n" validate:"min=0,max=50"`
	}

A failure on N reports "n must be at most 50".

# Custom Validators

  - searchquery: non-blank after trimming, at most 256 runes, no control characters

# Error Format

ToAPIError converts failures into the VALIDATION_ERROR code used by the API
error envelope.
*/
package validation
