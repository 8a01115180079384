// SPDX-License-Identifier: MIT

package daily

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/ladder"
)

// Selector picks puzzle pairs from a fixed graph.
// A Selector is safe for concurrent use; calls to Select are serialized on the
// random source.
type Selector struct {
	graph *ladder.Graph
	cfg   config
	mu    sync.Mutex
}

// New returns a Selector over g.
func New(g *ladder.Graph, opts ...Option) *Selector {
	return &Selector{graph: g, cfg: newConfig(opts...)}
}

// Select finds two words whose shortest ladder length lies in r.
//
// Only candidates present in the graph take part. The random phase samples up
// to Attempts distinct pairs; the fallback phase runs one BFS from each of up
// to FallbackLimit start words and truncates a path reaching depth MinSteps or
// more. Both phases exhausted yields ErrSelectionFailed.
func (s *Selector) Select(ctx context.Context, candidates []string, r Range) (Pair, Stats, error) {
	began := time.Now()
	var st Stats
	if s.graph == nil {
		return Pair{}, st, ErrGraphNil
	}
	if err := r.Validate(); err != nil {
		return Pair{}, st, err
	}

	words := s.filter(candidates)
	if len(words) < 2 {
		return Pair{}, st, fmt.Errorf("%w: %d usable candidates", ErrSelectionFailed, len(words))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rng := s.cfg.rng
	rng.Shuffle(len(words), func(i, j int) { words[i], words[j] = words[j], words[i] })

	pair, ok, err := s.random(ctx, rng, words, r, &st)
	if err == nil && !ok {
		s.cfg.logger.Debug("daily: random phase exhausted, falling back",
			"attempts", st.Attempts, "min_steps", r.MinSteps, "max_steps", r.MaxSteps)
		pair, ok, err = s.fallback(ctx, rng, words, r, &st)
	}
	st.Duration = time.Since(began)
	if err != nil {
		return Pair{}, st, err
	}
	if !ok {
		s.cfg.logger.Warn("daily: selection failed",
			"attempts", st.Attempts, "fallback_starts", st.FallbackStarts)
		return Pair{}, st, fmt.Errorf("%w: range [%d, %d] after %d attempts and %d fallback starts",
			ErrSelectionFailed, r.MinSteps, r.MaxSteps, st.Attempts, st.FallbackStarts)
	}
	s.cfg.logger.Debug("daily: pair selected",
		"start", pair.Start, "end", pair.End, "steps", pair.Steps,
		"phase", st.Phase.String(), "duration", st.Duration)

	return pair, st, nil
}

// filter keeps graph words, dropping duplicates, in input order.
func (s *Selector) filter(candidates []string) []string {
	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, w := range candidates {
		if _, dup := seen[w]; dup || !s.graph.HasWord(w) {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

func (s *Selector) random(ctx context.Context, rng *rand.Rand, words []string, r Range, st *Stats) (Pair, bool, error) {
	n := len(words)
	for st.Attempts < s.cfg.attempts {
		if err := ctx.Err(); err != nil {
			return Pair{}, false, err
		}
		st.Attempts++

		i := rng.Intn(n)
		j := rng.Intn(n - 1)
		if j >= i {
			j++
		}
		a, b := words[i], words[j]

		// Anything beyond MaxSteps is a miss, so the search need not go deeper.
		res, err := s.graph.BFS(a, bfs.WithContext(ctx), bfs.WithTarget(b), bfs.WithMaxDepth(r.MaxSteps))
		if err != nil {
			return Pair{}, false, err
		}
		if d, ok := res.Depth[b]; ok && r.Contains(d) {
			st.Phase = PhaseRandom
			return Pair{Start: a, End: b, Steps: d}, true, nil
		}
	}
	return Pair{}, false, nil
}

func (s *Selector) fallback(ctx context.Context, rng *rand.Rand, words []string, r Range, st *Stats) (Pair, bool, error) {
	for _, start := range words {
		if st.FallbackStarts >= s.cfg.fallbackLimit {
			break
		}
		if err := ctx.Err(); err != nil {
			return Pair{}, false, err
		}
		st.FallbackStarts++

		res, err := s.graph.BFS(start, bfs.WithContext(ctx))
		if err != nil {
			return Pair{}, false, err
		}
		end, depth := pickEnd(res, words, start, r.MinSteps)
		if end == "" {
			continue
		}
		p, err := res.PathTo(end)
		if err != nil {
			return Pair{}, false, err
		}
		hi := r.MaxSteps
		if depth < hi {
			hi = depth
		}
		k := r.MinSteps + rng.Intn(hi-r.MinSteps+1)
		t := ladder.Path(p).Truncate(k)
		st.Phase = PhaseFallback
		return Pair{Start: t.Start(), End: t.End(), Steps: k}, true, nil
	}
	return Pair{}, false, nil
}

// pickEnd returns the first candidate, in shuffled order, reached at depth
// minSteps or more.
func pickEnd(res *bfs.Result, words []string, start string, minSteps int) (string, int) {
	for _, w := range words {
		if w == start {
			continue
		}
		if d, ok := res.Depth[w]; ok && d >= minSteps {
			return w, d
		}
	}
	return "", 0
}
