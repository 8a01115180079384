// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/daily"
)

func newSelectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Pick a puzzle pair in the configured range without storing it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, g, err := a.loadGraph()
			if err != nil {
				return err
			}
			sel := daily.New(g, append(a.cfg.SelectorOptions(), daily.WithLogger(a.logger))...)
			pair, st, err := sel.Select(cmd.Context(), v.Words(), a.cfg.Range())
			if err != nil {
				return err
			}
			p, err := g.ShortestPath(pair.Start, pair.End)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s -> %s (%d steps, %s phase, %d attempts, %d fallback starts, %s)\n",
				pair.Start, pair.End, pair.Steps, st.Phase, st.Attempts, st.FallbackStarts, st.Duration)
			fmt.Fprintln(out, p)
			return nil
		},
	}
	f := cmd.Flags()
	f.Int("min-steps", 0, "shortest allowed ladder, in steps")
	f.Int("max-steps", 0, "longest allowed ladder, in steps")
	f.Int64("seed", 0, "random seed; 0 seeds from the clock")
	f.Int("attempts", 0, "random sampling budget")
	f.Int("fallback-limit", 0, "fallback start-word budget")
	bindFlags(a.v, f, map[string]string{
		"selection.min_steps":      "min-steps",
		"selection.max_steps":      "max-steps",
		"selection.seed":           "seed",
		"selection.attempts":       "attempts",
		"selection.fallback_limit": "fallback-limit",
	})
	return cmd
}
