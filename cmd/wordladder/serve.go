// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/daily"
	"github.com/katalvlaran/wordladder/internal/config"
	"github.com/katalvlaran/wordladder/internal/httpapi"
	"github.com/katalvlaran/wordladder/internal/puzzle"
	"github.com/katalvlaran/wordladder/internal/store"
	"github.com/katalvlaran/wordladder/vocab"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the puzzle HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
	f := cmd.Flags()
	f.String("addr", "", "listen address")
	f.String("valid-words", "", "guess dictionary; empty accepts only word-bank words")
	f.String("store-kind", "", "file or badger")
	f.String("store-path", "", "daily record file or badger directory")
	bindFlags(a.v, f, map[string]string{
		"addr":        "addr",
		"valid_words": "valid-words",
		"store.kind":  "store-kind",
		"store.path":  "store-path",
	})
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	v, g, err := a.loadGraph()
	if err != nil {
		return err
	}
	dict, err := a.loadDictionary(v)
	if err != nil {
		return err
	}
	st, err := a.openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	svc, err := puzzle.New(puzzle.Config{
		Graph:      g,
		Candidates: v.Words(),
		Dictionary: dict,
		Selector:   daily.New(g, append(a.cfg.SelectorOptions(), daily.WithLogger(a.logger))...),
		Store:      st,
		Range:      a.cfg.Range(),
		Logger:     a.logger,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              a.cfg.Addr,
		Handler:           httpapi.NewServer(svc, httpapi.WithLogger(a.logger), httpapi.WithCORSOrigins(a.cfg.CORS.Origins)),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		a.logger.Info("listening", "addr", a.cfg.Addr, "store", a.cfg.Store.Kind)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// loadDictionary merges the optional guess list with the word bank, so every
// ladder word is a legal guess.
func (a *app) loadDictionary(v *vocab.Vocabulary) (*vocab.Set, error) {
	if a.cfg.ValidWords == "" {
		return vocab.NewSet(v.Words())
	}
	set, err := vocab.LoadSet(a.cfg.ValidWords)
	if err != nil {
		return nil, err
	}
	return set.Union(v), nil
}

func (a *app) openStore() (store.Store, error) {
	switch a.cfg.Store.Kind {
	case config.StoreBadger:
		return store.OpenBadger(store.BadgerConfig{
			Path:       a.cfg.Store.Path,
			SyncWrites: true,
			Logger:     a.logger.With("component", "badger"),
		})
	default:
		return store.NewFileStore(a.cfg.Store.Path), nil
	}
}
