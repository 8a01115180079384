// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/internal/analysis"
	"github.com/katalvlaran/wordladder/vocab"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		opts      = analysis.DefaultOptions()
		wordsFile string
		format    string
	)
	cmd := &cobra.Command{
		Use:   "analyze [WORD...]",
		Short: "Report path statistics for every ordered pair of the given words",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := a.loadGraph()
			if err != nil {
				return err
			}
			words := make([]string, 0, len(args))
			for _, w := range args {
				words = append(words, vocab.Normalize(w))
			}
			if wordsFile != "" {
				v, err := vocab.Load(wordsFile)
				if err != nil {
					return err
				}
				words = append(words, v.Words()...)
			}
			if len(words) == 0 {
				return fmt.Errorf("analyze: give words as arguments or with --words")
			}

			rep, err := analysis.Run(cmd.Context(), g, words, opts)
			if err != nil {
				return err
			}
			a.logger.Info("analysis done", "pairs", rep.Summary.Pairs,
				"reachable", rep.Summary.Reachable, "timed_out", rep.Summary.TimedOut, "elapsed", rep.Elapsed)
			return rep.Encode(cmd.OutOrStdout(), analysis.Format(format))
		},
	}
	f := cmd.Flags()
	f.StringVar(&wordsFile, "words", "", "file of words to analyze, one per row")
	f.StringVar(&format, "format", string(analysis.FormatYAML), "yaml or json")
	f.IntVar(&opts.Workers, "workers", 0, "concurrent pairs; 0 uses GOMAXPROCS")
	f.IntVar(&opts.MaxDepth, "max-depth", opts.MaxDepth, "bounded enumeration depth, in words")
	f.IntVar(&opts.MaxPaths, "max-paths", opts.MaxPaths, "bounded enumeration cap")
	f.BoolVar(&opts.Exhaustive, "exhaustive", false, "also count every simple path")
	f.DurationVar(&opts.Timeout, "timeout", 2*time.Second, "per-pair exhaustive count limit")
	return cmd
}
