// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/musicmatch/internal/metrics"
)

// DefaultMaintenanceInterval is used when MaintenanceConfig.Interval is unset.
const DefaultMaintenanceInterval = time.Minute

// CachePurger drops expired cached results. *recommend.Engine satisfies it.
type CachePurger interface {
	PurgeExpired() int
}

// MaintenanceConfig holds configuration for the maintenance service.
type MaintenanceConfig struct {
	// Interval is how often a maintenance pass runs.
	Interval time.Duration

	// StartTime is the process start reported by the uptime gauge.
	StartTime time.Time
}

// MaintenanceService periodically purges expired cache entries and
// refreshes the uptime gauge.
type MaintenanceService struct {
	purger CachePurger
	config MaintenanceConfig
	logger zerolog.Logger
	name   string
}

// NewMaintenanceService creates a new maintenance service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewMaintenanceService(purger CachePurger, cfg MaintenanceConfig, logger zerolog.Logger) *MaintenanceService {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultMaintenanceInterval
	}
	if cfg.StartTime.IsZero() {
		cfg.StartTime = time.Now()
	}
	return &MaintenanceService{
		purger: purger,
		config: cfg,
		logger: logger.With().Str("service", "maintenance").Logger(),
		name:   "maintenance-service",
	}
}

// Serve implements suture.Service. It runs one pass immediately and then
// one per Interval until ctx is canceled.
func (s *MaintenanceService) Serve(ctx context.Context) error {
	s.logger.Debug().Dur("interval", s.config.Interval).Msg("maintenance service starting")

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	s.runOnce()
	for {
		select {
		case <-ctx.Done():
			s.logger.Debug().Msg("maintenance service shutting down")
			return ctx.Err()
		case <-ticker.C:
			s.runOnce()
		}
	}
}

// runOnce performs one maintenance pass and returns the number of purged
// cache entries.
func (s *MaintenanceService) runOnce() int {
	metrics.SetUptime(s.config.StartTime)

	if s.purger == nil {
		return 0
	}
	removed := s.purger.PurgeExpired()
	if removed > 0 {
		s.logger.Debug().Int("removed", removed).Msg("Expired cache entries purged")
	}
	return removed
}

// String identifies the service in supervisor logs.
func (s *MaintenanceService) String() string {
	return s.name
}
