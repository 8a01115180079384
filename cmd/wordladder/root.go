// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/wordladder/internal/config"
	"github.com/katalvlaran/wordladder/internal/logging"
	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/vocab"
)

// app carries state shared by every subcommand once PersistentPreRunE has run.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "wordladder",
		Short: "Daily word-ladder puzzle engine",
		Long: `wordladder builds a one-letter-difference graph over an equal-length
word list, serves a daily puzzle over HTTP, and solves or analyzes ladders
from the command line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (yaml, json or toml)")
	pf.String("word-bank", "", "word list the graph is built from")
	pf.String("log-level", "", "debug, info, warn or error")
	pf.String("log-format", "", "text or json")
	bindFlags(a.v, pf, map[string]string{
		"word_bank":  "word-bank",
		"log.level":  "log-level",
		"log.format": "log-format",
	})

	root.AddCommand(
		newServeCmd(a),
		newPathCmd(a),
		newSelectCmd(a),
		newAnalyzeCmd(a),
		newPruneCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Config{
		Format: logging.Format(cfg.Log.Format),
		Level:  cfg.Log.Level,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger
	return nil
}

// loadGraph reads the word bank and builds its graph.
func (a *app) loadGraph() (*vocab.Vocabulary, *ladder.Graph, error) {
	v, err := vocab.Load(a.cfg.WordBank)
	if err != nil {
		return nil, nil, err
	}
	g, err := ladder.Build(v)
	if err != nil {
		return nil, nil, err
	}
	s := g.Stats()
	a.logger.Info("graph built", "file", a.cfg.WordBank,
		"words", s.Words, "edges", s.Edges, "isolated", s.Isolated, "components", s.Components)
	return v, g, nil
}

// bindFlags ties viper keys to flags. A flag overrides file and environment
// only when set on the command line.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind %s to --%s: %v", key, name, err))
		}
	}
}
