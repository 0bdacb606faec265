// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/musicmatch/internal/catalog"
	"github.com/tomtom215/musicmatch/internal/logging"
	"github.com/tomtom215/musicmatch/internal/recommend"
)

// NotFoundMessage is shown when a query resolves to no track.
const NotFoundMessage = "Could not find that song!"

// Recommender is the engine surface the handlers need.
type Recommender interface {
	Recommend(query string, n int) recommend.Result
	Stats() recommend.Stats
}

// Handler serves the MusicMatch endpoints.
type Handler struct {
	engine    Recommender
	maxN      int
	startTime time.Time
}

// NewHandler creates a handler around engine. maxN rejects larger n values;
// zero disables the check.
func NewHandler(engine Recommender, maxN int) *Handler {
	return &Handler{
		engine:    engine,
		maxN:      maxN,
		startTime: time.Now(),
	}
}

// RecommendResponse is the data payload of /recommend.
type RecommendResponse struct {
	Found      bool                       `json:"found"`
	Message    string                     `json:"message,omitempty"`
	Query      *catalog.Track             `json:"query"`
	MatchScore int                        `json:"match_score"`
	Items      []recommend.Recommendation `json:"items"`
}

// Recommend handles GET /api/v1/recommend.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, apiErr := parseRecommendRequest(r, h.maxN)
	if apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	res := h.engine.Recommend(req.Query, req.N)
	resp := RecommendResponse{
		Found:      res.Found(),
		Query:      res.Query,
		MatchScore: res.MatchScore,
		Items:      res.Items,
	}
	if !resp.Found {
		resp.Message = NotFoundMessage
	}
	if resp.Items == nil {
		resp.Items = []recommend.Recommendation{}
	}

	logging.Ctx(r.Context()).Debug().
		Str("query", logging.SanitizeQuery(req.Query)).
		Bool("found", resp.Found).
		Int("returned", len(resp.Items)).
		Msg("Recommend request served")

	respondSuccess(w, r, resp, start)
}

// CatalogStats handles GET /api/v1/catalog/stats.
func (h *Handler) CatalogStats(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, h.engine.Stats(), time.Time{})
}

// HealthLive handles GET /api/v1/health/live.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, time.Time{})
}

// HealthReady handles GET /api/v1/health/ready. The server is ready once
// an engine with at least one track is attached.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	tracks := 0
	if h.engine != nil {
		tracks = h.engine.Stats().Catalog.Tracks
	}
	ready := tracks > 0

	data := map[string]interface{}{
		"ready_to_serve": ready,
		"tracks":         tracks,
		"uptime":         time.Since(h.startTime).Seconds(),
	}
	if !ready {
		respondJSON(w, r, http.StatusServiceUnavailable, &APIResponse{
			Status:   StatusError,
			Data:     data,
			Metadata: newMetadata(r, time.Time{}),
			Error:    &APIError{Code: ErrCodeServiceUnavailable, Message: "catalog not loaded"},
		})
		return
	}
	respondSuccess(w, r, data, time.Time{})
}

// notFound answers unknown routes with the error envelope.
func notFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusNotFound, &APIError{Code: ErrCodeNotFound, Message: "Route not found"}, nil)
}

// methodNotAllowed answers known routes hit with the wrong method.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusMethodNotAllowed, &APIError{Code: ErrCodeMethodNotAllowed, Message: "Method not allowed"}, nil)
}
