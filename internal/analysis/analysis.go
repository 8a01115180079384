// SPDX-License-Identifier: MIT

// Package analysis computes offline path statistics over word pairs, for
// tuning the daily selection range against a real vocabulary.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wordladder/ladder"
)

// ErrTooFewWords is returned when fewer than two analyzable words are given.
var ErrTooFewWords = errors.New("analysis: need at least two graph words")

// Options bound the work done per pair.
type Options struct {
	// Workers caps concurrent pair evaluations; 0 means GOMAXPROCS.
	Workers int

	// MaxDepth and MaxPaths bound BoundedAllPaths (MaxDepth counts words).
	MaxDepth int
	MaxPaths int

	// Exhaustive also runs CountAllPaths.
	Exhaustive bool
	// Timeout caps the enumeration work for each pair, bounded and exhaustive
	// together. Zero means no cap beyond the caller's context.
	Timeout time.Duration
}

// DefaultOptions suits vocabularies of a few thousand words.
func DefaultOptions() Options {
	return Options{MaxDepth: 10, MaxPaths: 100, Timeout: 2 * time.Second}
}

// PairRow is the result for one ordered pair. Steps is -1 when unreachable;
// AllPaths is -1 when the exhaustive count was skipped or timed out, and
// BoundedPaths is -1 when the bounded search itself timed out.
type PairRow struct {
	Start        string `json:"start" yaml:"start"`
	End          string `json:"end" yaml:"end"`
	Steps        int    `json:"steps" yaml:"steps"`
	BoundedPaths int    `json:"bounded_paths" yaml:"bounded_paths"`
	AllPaths     int    `json:"all_paths" yaml:"all_paths"`
	TimedOut     bool   `json:"timed_out,omitempty" yaml:"timed_out,omitempty"`
}

// Summary aggregates the pair rows.
type Summary struct {
	Pairs     int         `json:"pairs" yaml:"pairs"`
	Reachable int         `json:"reachable" yaml:"reachable"`
	MeanSteps float64     `json:"mean_steps" yaml:"mean_steps"`
	MaxSteps  int         `json:"max_steps" yaml:"max_steps"`
	TimedOut  int         `json:"timed_out" yaml:"timed_out"`
	StepHist  map[int]int `json:"step_histogram" yaml:"step_histogram"`
}

// Report is the full analysis output.
type Report struct {
	Graph   ladder.Stats `json:"graph" yaml:"graph"`
	Summary Summary      `json:"summary" yaml:"summary"`
	Pairs   []PairRow    `json:"pairs" yaml:"pairs"`
	Elapsed string       `json:"elapsed" yaml:"elapsed"`
}

// Run evaluates every ordered pair of distinct graph words from words.
// Words absent from g are skipped. Rows come back in input order.
// A per-pair timeout is recorded in the row, not returned as an error;
// canceling ctx aborts the run.
func Run(ctx context.Context, g *ladder.Graph, words []string, opts Options) (*Report, error) {
	began := time.Now()
	if g == nil {
		return nil, errors.New("analysis: graph is nil")
	}
	if opts.MaxDepth < 1 || opts.MaxPaths < 1 {
		return nil, fmt.Errorf("analysis: MaxDepth and MaxPaths must be positive (%d, %d)", opts.MaxDepth, opts.MaxPaths)
	}
	subset := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		if _, dup := seen[w]; dup || !g.HasWord(w) {
			continue
		}
		seen[w] = struct{}{}
		subset = append(subset, w)
	}
	if len(subset) < 2 {
		return nil, ErrTooFewWords
	}

	rows := make([]PairRow, 0, len(subset)*(len(subset)-1))
	for _, a := range subset {
		for _, b := range subset {
			if a != b {
				rows = append(rows, PairRow{Start: a, End: b, AllPaths: -1})
			}
		}
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range rows {
		row := &rows[i]
		eg.Go(func() error {
			return evaluate(ctx, g, row, opts)
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &Report{
		Graph:   g.Stats(),
		Summary: summarize(rows),
		Pairs:   rows,
		Elapsed: time.Since(began).Round(time.Millisecond).String(),
	}, nil
}

// evaluate fills one row; each goroutine owns its row exclusively.
func evaluate(ctx context.Context, g *ladder.Graph, row *PairRow, opts Options) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d, err := g.Distance(row.Start, row.End)
	switch {
	case errors.Is(err, ladder.ErrNoPath):
		row.Steps = -1
		row.AllPaths = 0
		return nil
	case err != nil:
		return err
	}
	row.Steps = d

	pairCtx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		pairCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}
	// A pair deadline is recorded on the row; a parent deadline aborts the run.
	timedOut := func(err error) bool {
		return errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil
	}

	paths, err := g.BoundedAllPaths(pairCtx, row.Start, row.End, opts.MaxDepth, opts.MaxPaths)
	switch {
	case err == nil:
		row.BoundedPaths = len(paths)
	case timedOut(err):
		row.BoundedPaths = -1
		row.TimedOut = true
		return nil
	default:
		return err
	}

	if !opts.Exhaustive {
		return nil
	}
	n, err := g.CountAllPaths(pairCtx, row.Start, row.End)
	switch {
	case err == nil:
		row.AllPaths = n
	case timedOut(err):
		row.TimedOut = true
	default:
		return err
	}
	return nil
}

func summarize(rows []PairRow) Summary {
	s := Summary{Pairs: len(rows), StepHist: make(map[int]int)}
	total := 0
	for _, r := range rows {
		if r.TimedOut {
			s.TimedOut++
		}
		if r.Steps < 0 {
			continue
		}
		s.Reachable++
		total += r.Steps
		s.StepHist[r.Steps]++
		if r.Steps > s.MaxSteps {
			s.MaxSteps = r.Steps
		}
	}
	if s.Reachable > 0 {
		s.MeanSteps = float64(total) / float64(s.Reachable)
	}
	return s
}
