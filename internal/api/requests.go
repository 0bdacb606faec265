// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/musicmatch/internal/validation"
)

// RecommendRequest holds the validated query parameters of /recommend.
//
// Fields:
//   - Query: free-text song name and optionally artist
//   - N: number of recommendations, 0 selecting the server default
type RecommendRequest struct {
	Query string `query:"q" validate:"searchquery"`
	N     int    `query:"n" validate:"min=0"`
}

// parseRecommendRequest reads and validates the request. maxN bounds n.
func parseRecommendRequest(r *http.Request, maxN int) (RecommendRequest, *APIError) {
	values := r.URL.Query()
	req := RecommendRequest{Query: values.Get("q")}

	if raw := strings.TrimSpace(values.Get("n")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return req, &APIError{
				Code:    ErrCodeValidation,
				Message: "n must be an integer",
				Details: map[string]interface{}{"field": "n", "tag": "integer"},
			}
		}
		req.N = n
	}

	if verr := validation.ValidateStruct(req); verr != nil {
		e := verr.ToAPIError()
		return req, &APIError{Code: e.Code, Message: e.Message, Details: e.Details}
	}
	if maxN > 0 && req.N > maxN {
		return req, &APIError{
			Code:    ErrCodeValidation,
			Message: "n must be at most " + strconv.Itoa(maxN),
			Details: map[string]interface{}{"field": "n", "tag": "max"},
		}
	}
	return req, nil
}
