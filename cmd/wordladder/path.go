// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/vocab"
)

func newPathCmd(a *app) *cobra.Command {
	var (
		all      bool
		maxDepth int
		maxPaths int
		timeout  time.Duration
		avoid    []string
	)
	cmd := &cobra.Command{
		Use:   "path START END",
		Short: "Print a shortest ladder, or every ladder up to a bound",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := a.loadGraph()
			if err != nil {
				return err
			}
			start, end := vocab.Normalize(args[0]), vocab.Normalize(args[1])
			out := cmd.OutOrStdout()

			if !all {
				for i, w := range avoid {
					avoid[i] = vocab.Normalize(w)
				}
				p, err := g.ShortestPathAvoiding(start, end, avoid...)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s (%d steps)\n", p, p.Steps())
				return nil
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			n := 0
			err = g.WalkBoundedPaths(ctx, start, end, maxDepth, maxPaths, func(p ladder.Path) error {
				n++
				_, err := fmt.Fprintf(out, "%s (%d steps)\n", p, p.Steps())
				return err
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%d ladders\n", n)
			return nil
		},
	}
	f := cmd.Flags()
	f.BoolVar(&all, "all", false, "list simple ladders instead of one shortest")
	f.IntVar(&maxDepth, "max-depth", 10, "longest ladder to list, in words")
	f.IntVar(&maxPaths, "max-paths", 20, "most ladders to list")
	f.StringSliceVar(&avoid, "avoid", nil, "words the shortest ladder must not use")
	f.DurationVar(&timeout, "timeout", 10*time.Second, "give up listing after this long")
	return cmd
}
