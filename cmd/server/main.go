// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/musicmatch/internal/api"
	"github.com/tomtom215/musicmatch/internal/config"
	"github.com/tomtom215/musicmatch/internal/dataset"
	"github.com/tomtom215/musicmatch/internal/logging"
	"github.com/tomtom215/musicmatch/internal/metrics"
	"github.com/tomtom215/musicmatch/internal/recommend"
	"github.com/tomtom215/musicmatch/internal/supervisor"
	"github.com/tomtom215/musicmatch/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	startTime := time.Now()

	cfg, err := config.Load("")
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(cfg.Logging.LoggerConfig())
	metrics.SetAppInfo(version)

	logging.Info().
		Str("version", version).
		Str("catalog_path", cfg.Catalog.Path).
		Str("catalog_format", cfg.Catalog.Format).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting MusicMatch server")

	if cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS allows any origin; set CORS_ORIGINS for production")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	engine, err := buildEngine(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build recommendation engine")
	}

	handler := api.NewHandler(engine, cfg.Recommend.MaxN)
	mw := api.NewChiMiddleware(&api.ChiMiddlewareConfig{
		CORSAllowedOrigins: cfg.Security.CORSOrigins,
		CORSMaxAge:         api.DefaultChiMiddlewareConfig().CORSMaxAge,
		RateLimitRequests:  cfg.Security.RateLimitReqs,
		RateLimitWindow:    cfg.Security.RateLimitWindow,
		RateLimitDisabled:  cfg.Security.RateLimitDisabled,
	})

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           api.NewRouter(handler, mw),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	tree, err := supervisor.NewSupervisorTree(
		logging.NewSlogLogger(logging.WithComponent("supervisor")),
		supervisor.TreeConfig{ShutdownTimeout: cfg.Server.ShutdownTimeout},
	)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	maintenanceInterval := services.DefaultMaintenanceInterval
	if ttl := cfg.Recommend.CacheTTL; ttl > 0 && ttl < maintenanceInterval {
		maintenanceInterval = ttl
	}
	tree.AddMaintenanceService(services.NewMaintenanceService(engine, services.MaintenanceConfig{
		Interval:  maintenanceInterval,
		StartTime: startTime,
	}, logging.WithComponent("maintenance")))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}

// buildEngine loads the configured catalog and builds the engine from it.
func buildEngine(ctx context.Context, cfg *config.Config) (*recommend.Engine, error) {
	loader, err := dataset.New(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	ds, err := dataset.Load(ctx, loader, logging.WithComponent("dataset"))
	if err != nil {
		return nil, err
	}
	return recommend.New(ds, cfg.Recommend, logging.WithComponent("recommend"))
}
