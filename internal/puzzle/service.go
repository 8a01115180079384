// SPDX-License-Identifier: MIT

// Package puzzle ties the ladder graph, pair selection and persistence into
// the operations a daily puzzle front end needs.
package puzzle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/wordladder/daily"
	"github.com/katalvlaran/wordladder/game"
	"github.com/katalvlaran/wordladder/internal/store"
	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/vocab"
)

// Config wires a Service. Graph and Store are required.
type Config struct {
	Graph *ladder.Graph

	// Candidates are the words a daily pair may start from; nil means every graph word.
	Candidates []string

	// Dictionary accepts guesses; nil means the graph's own words.
	Dictionary *vocab.Set

	// Selector defaults to daily.New(Graph).
	Selector *daily.Selector

	Store store.Store

	// Range defaults to daily.DefaultRange().
	Range daily.Range

	// Clock defaults to time.Now. The daily date is its UTC calendar day.
	Clock func() time.Time

	Logger *slog.Logger
}

// Service answers puzzle queries. It is safe for concurrent use.
type Service struct {
	graph      *ladder.Graph
	candidates []string
	dict       *vocab.Set
	selector   *daily.Selector
	store      store.Store
	steps      daily.Range
	clock      func() time.Time
	logger     *slog.Logger
	flight     singleflight.Group
}

// New validates cfg and fills in defaults.
func New(cfg Config) (*Service, error) {
	if cfg.Graph == nil {
		return nil, fmt.Errorf("%w: graph is nil", ErrConfig)
	}
	if cfg.Store == nil {
		return nil, fmt.Errorf("%w: store is nil", ErrConfig)
	}
	s := &Service{
		graph:      cfg.Graph,
		candidates: cfg.Candidates,
		dict:       cfg.Dictionary,
		selector:   cfg.Selector,
		store:      cfg.Store,
		steps:      cfg.Range,
		clock:      cfg.Clock,
		logger:     cfg.Logger,
	}
	if s.candidates == nil {
		s.candidates = cfg.Graph.Words()
	}
	if s.dict == nil {
		d, err := vocab.NewSet(cfg.Graph.Words())
		if err != nil {
			return nil, fmt.Errorf("%w: dictionary: %w", ErrConfig, err)
		}
		s.dict = d
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.selector == nil {
		s.selector = daily.New(cfg.Graph, daily.WithLogger(s.logger))
	}
	if s.steps == (daily.Range{}) {
		s.steps = daily.DefaultRange()
	}
	if err := s.steps.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	return s, nil
}

// Graph returns the underlying word graph.
func (s *Service) Graph() *ladder.Graph { return s.graph }

// Today is the current UTC date key.
func (s *Service) Today() string { return store.DateOf(s.clock()) }

// DailyPair returns today's record, selecting and persisting one if the store
// has none for today. Concurrent callers share a single selection.
func (s *Service) DailyPair(ctx context.Context) (*store.Record, error) {
	rec, err := s.dailyPair(ctx)
	if err != nil {
		observe("daily_pair", "error")
		return nil, err
	}
	observe("daily_pair", "ok")
	return rec, nil
}

func (s *Service) dailyPair(ctx context.Context) (*store.Record, error) {
	date := s.Today()
	rec, err := s.lookup(ctx, date)
	if err != nil || rec != nil {
		return rec, err
	}

	// the shared call outlives any single waiter's cancellation
	shared := context.WithoutCancel(ctx)
	v, err, _ := s.flight.Do(date, func() (interface{}, error) {
		if rec, err := s.lookup(shared, date); err != nil || rec != nil {
			return rec, err
		}
		return s.generate(shared, date)
	})
	if err != nil {
		return nil, err
	}
	out := *v.(*store.Record)
	return &out, nil
}

// lookup returns (nil, nil) when the store has nothing usable for date.
// A record naming words outside the graph, left by an older word bank, is not usable.
func (s *Service) lookup(ctx context.Context, date string) (*store.Record, error) {
	rec, err := s.store.Get(ctx, date)
	switch {
	case err == nil:
		if !s.graph.HasWord(rec.Start()) || !s.graph.HasWord(rec.End()) {
			s.logger.Warn("puzzle: stored pair not in graph, reselecting", "date", date,
				"start", rec.Start(), "end", rec.End())
			return nil, nil
		}
		return rec, nil
	case errors.Is(err, store.ErrNotFound):
		return nil, nil
	case errors.Is(err, store.ErrCorrupt):
		s.logger.Warn("puzzle: discarding corrupt daily record", "date", date, "error", err)
		return nil, nil
	default:
		return nil, fmt.Errorf("puzzle: load %s: %w", date, err)
	}
}

func (s *Service) generate(ctx context.Context, date string) (*store.Record, error) {
	pair, st, err := s.selector.Select(ctx, s.candidates, s.steps)
	selectionDuration.Observe(st.Duration.Seconds())
	selectionAttempts.Observe(float64(st.Attempts + st.FallbackStarts))
	if err != nil {
		s.logger.Error("puzzle: daily selection failed", "date", date,
			"attempts", st.Attempts, "fallback_starts", st.FallbackStarts, "error", err)
		if errors.Is(err, daily.ErrSelectionFailed) {
			return nil, fmt.Errorf("%w: %w", ErrSelectionFailed, err)
		}
		return nil, err
	}
	selectionPhase.WithLabelValues(st.Phase.String()).Inc()

	rec := &store.Record{Date: date, Pair: [2]string{pair.Start, pair.End}}
	if err := s.store.Put(ctx, rec); err != nil {
		return nil, fmt.Errorf("puzzle: persist %s: %w", date, err)
	}
	s.logger.Info("puzzle: daily pair selected", "date", date,
		"start", pair.Start, "end", pair.End, "steps", pair.Steps,
		"phase", st.Phase.String(), "duration", st.Duration)
	return rec, nil
}

// Solution returns a shortest ladder for today's pair.
func (s *Service) Solution(ctx context.Context) (ladder.Path, error) {
	rec, err := s.dailyPair(ctx)
	if err != nil {
		observe("solution", "error")
		return nil, err
	}
	p, err := s.graph.ShortestPath(rec.Start(), rec.End())
	if err != nil {
		observe("solution", "not_found")
		return nil, fmt.Errorf("%w: %w", ErrNoSolution, err)
	}
	observe("solution", "ok")
	return p, nil
}

// ValidateGuess checks that guess is a dictionary word one letter away from current.
func (s *Service) ValidateGuess(_ context.Context, guess, current string) Verdict {
	guess, current = vocab.Normalize(guess), vocab.Normalize(current)
	v := Verdict{Valid: true}
	switch {
	case guess == current:
		v = Verdict{Reason: ReasonSameWord}
	case !s.dict.Contains(guess):
		v = Verdict{Reason: ReasonNotAWord}
	case !game.IsAdjacentGuess(guess, current):
		v = Verdict{Reason: ReasonNotOneLetter}
	}
	if v.Valid {
		observe("validate", "ok")
	} else {
		observe("validate", "invalid")
	}
	return v
}

// Hint reports the distance from word to today's end word.
func (s *Service) Hint(ctx context.Context, word string) (HintResult, error) {
	rec, err := s.dailyPair(ctx)
	if err != nil {
		observe("hint", "error")
		return HintResult{}, err
	}
	word = vocab.Normalize(word)
	d := game.Distance(s.graph, word, rec.End())
	tier := game.TierFor(d)
	if d == game.Unreachable {
		observe("hint", "unreachable")
	} else {
		observe("hint", "ok")
	}
	return HintResult{
		Word:     word,
		Target:   rec.End(),
		Distance: d,
		Tier:     tier,
		Message:  tier.Message(),
	}, nil
}

// Distance returns the steps between two words, or game.Unreachable.
func (s *Service) Distance(word, target string) int {
	d := game.Distance(s.graph, vocab.Normalize(word), vocab.Normalize(target))
	if d == game.Unreachable {
		observe("distance", "unreachable")
	} else {
		observe("distance", "ok")
	}
	return d
}

// History lists past daily records, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]store.Record, error) {
	recs, err := s.store.List(ctx, limit)
	if err != nil {
		observe("history", "error")
		return nil, fmt.Errorf("puzzle: history: %w", err)
	}
	observe("history", "ok")
	return recs, nil
}
