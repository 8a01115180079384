// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/vocab"
)

func newPruneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "prune OUTPUT",
		Short: "Write the word bank without words that have no neighbors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := a.loadGraph()
			if err != nil {
				return err
			}
			pruned := g.Pruned()

			f, err := os.Create(args[0])
			if err != nil {
				return err
			}
			if err := vocab.Write(f, pruned.Words()); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "kept %d of %d words\n", pruned.Len(), g.Len())
			return nil
		},
	}
}
