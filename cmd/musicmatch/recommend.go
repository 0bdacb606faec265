// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/musicmatch/internal/recommend"
)

var (
	errEmptyQuery = errors.New("Please enter a song name first!")                      //nolint:staticcheck,revive // user-facing message
	errNotFound   = errors.New("Could not find that song! Please check the spelling.") //nolint:staticcheck,revive // user-facing message
)

type recommendOptions struct {
	n      int
	asJSON bool
}

func newRecommendCmd(root *rootOptions) *cobra.Command {
	opts := &recommendOptions{}

	cmd := &cobra.Command{
		Use:   "recommend <query>",
		Short: "Recommend tracks similar to a song",
		Example: `  musicmatch recommend "song one"
  musicmatch recommend "adele hello" -n 10 --json`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.TrimSpace(strings.Join(args, " "))
			if query == "" {
				return errEmptyQuery
			}

			engine, err := root.buildEngine(cmd.Context())
			if err != nil {
				return err
			}

			res := engine.Recommend(query, opts.n)
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			if !res.Found() {
				return errNotFound
			}
			return writeResult(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().IntVarP(&opts.n, "limit", "n", recommend.DefaultN, "number of recommendations")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the result as JSON")
	return cmd
}

// writeResult prints the selected track and one aligned line per
// recommendation.
func writeResult(w io.Writer, res recommend.Result) error {
	fmt.Fprintf(w, "Selected: %s by %s\n\n", res.Query.Name, res.Query.Artist)
	fmt.Fprintln(w, "Top Recommendations")

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, item := range res.Items {
		fmt.Fprintf(tw, "%d.\t%s\t%s\t%.1f%%\t%s\n", i+1, item.Name, item.Artist, item.Score, item.Reason)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
