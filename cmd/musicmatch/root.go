// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomtom215/musicmatch/internal/config"
	"github.com/tomtom215/musicmatch/internal/dataset"
	"github.com/tomtom215/musicmatch/internal/logging"
	"github.com/tomtom215/musicmatch/internal/recommend"
)

// rootOptions holds the persistent flags shared by all subcommands.
type rootOptions struct {
	configPath    string
	catalogPath   string
	catalogFormat string
	logLevel      string
	verbose       bool
	stderr        io.Writer
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "musicmatch",
		Short: "Content-based track recommendations",
		Long: `MusicMatch finds tracks similar to a song in a catalog dataset. Queries
are matched against "track name artist name" with fuzzy matching, so small
spelling mistakes still resolve.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.stderr = cmd.ErrOrStderr()
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file path")
	cmd.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "catalog dataset path (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.catalogFormat, "format", "", "catalog format: csv or duckdb (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level written to stderr")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "shorthand for --log-level debug")

	cmd.AddCommand(newRecommendCmd(opts), newStatsCmd(opts))
	return cmd
}

// loadConfig reads the layered configuration and applies flag overrides.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if o.catalogPath != "" {
		cfg.Catalog.Path = o.catalogPath
	}
	if o.catalogFormat != "" {
		cfg.Catalog.Format = o.catalogFormat
	}
	return cfg, nil
}

// loggerConfig returns console logging to stderr at the level chosen by
// --log-level, or debug with --verbose.
func (o *rootOptions) loggerConfig(base logging.Config) (logging.Config, error) {
	level := o.logLevel
	if o.verbose {
		level = "debug"
	}
	if _, err := logging.ParseLevel(level); err != nil {
		return base, err
	}

	base.Level = level
	base.Format = "console"
	base.Output = o.stderr
	if base.Output == nil {
		base.Output = os.Stderr
	}
	return base, nil
}

// buildEngine loads the catalog and builds a recommendation engine.
func (o *rootOptions) buildEngine(ctx context.Context) (*recommend.Engine, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}

	logCfg, err := o.loggerConfig(cfg.Logging.LoggerConfig())
	if err != nil {
		return nil, err
	}
	logging.Init(logCfg)

	loader, err := dataset.New(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	ds, err := dataset.Load(ctx, loader, logging.WithComponent("dataset"))
	if err != nil {
		return nil, err
	}
	// The CLI answers one query per process.
	cfg.Recommend.CacheEnabled = false
	return recommend.New(ds, cfg.Recommend, logging.WithComponent("recommend"))
}
