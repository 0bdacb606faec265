// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

// Command musicmatch answers recommendation queries from the terminal.
//
//	musicmatch recommend "song one" -n 5 --catalog data/tracks.csv
//	musicmatch stats --catalog data/tracks.parquet --format duckdb
//
// Configuration is loaded the same way as the server (config.yaml and
// environment), and the --catalog and --format flags override the catalog
// section.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
