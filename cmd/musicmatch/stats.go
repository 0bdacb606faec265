// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newStatsCmd(root *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print catalog build statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := root.buildEngine(cmd.Context())
			if err != nil {
				return err
			}

			stats := engine.Stats()
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), stats)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Tracks:\t%d\n", stats.Catalog.Tracks)
			fmt.Fprintf(tw, "Rows read:\t%d\n", stats.Catalog.RowsRead)
			fmt.Fprintf(tw, "Dropped (missing):\t%d\n", stats.Catalog.DroppedMissing)
			fmt.Fprintf(tw, "Dropped (duplicate):\t%d\n", stats.Catalog.DroppedDuplicate)
			fmt.Fprintf(tw, "Features:\t%s\n", strings.Join(stats.Catalog.Features, ", "))
			fmt.Fprintf(tw, "Build time:\t%dms\n", stats.BuildDurationMS)
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the statistics as JSON")
	return cmd
}
