// SPDX-License-Identifier: MIT

package ladder

import (
	"context"
	"fmt"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/paths"
)

// ShortestPath returns a minimum-step ladder from start to end.
//
// When several shortest ladders exist, the one returned follows sorted
// neighbor order; only its length is guaranteed unique.
// start == end yields the single-word path.
//
// Errors: ErrWordNotFound if either word is absent, ErrNoPath if unreachable.
// Complexity: O(V + E).
func (g *Graph) ShortestPath(start, end string) (Path, error) {
	return g.shortest(start, end)
}

// ShortestPathAvoiding is ShortestPath restricted to ladders that never step
// onto a word in avoid. start itself is never avoided; avoiding end yields
// ErrNoPath unless start == end.
func (g *Graph) ShortestPathAvoiding(start, end string, avoid ...string) (Path, error) {
	if len(avoid) == 0 {
		return g.shortest(start, end)
	}
	skip := make(map[string]struct{}, len(avoid))
	for _, w := range avoid {
		skip[w] = struct{}{}
	}
	return g.shortest(start, end, bfs.WithFilterNeighbor(func(_, nbr string) bool {
		_, banned := skip[nbr]
		return !banned
	}))
}

func (g *Graph) shortest(start, end string, opts ...bfs.Option) (Path, error) {
	if err := g.requireWords(start, end); err != nil {
		return nil, err
	}
	if start == end {
		return Path{start}, nil
	}
	res, err := bfs.BFS(view{g}, start, append(opts, bfs.WithTarget(end))...)
	if err != nil {
		return nil, fmt.Errorf("ladder: shortest path %q→%q: %w", start, end, err)
	}
	p, err := res.PathTo(end)
	if err != nil {
		return nil, fmt.Errorf("%w: %q→%q", ErrNoPath, start, end)
	}
	return Path(p), nil
}

// Distance returns the number of steps on a shortest ladder from start to end.
// It has the same errors as ShortestPath.
func (g *Graph) Distance(start, end string) (int, error) {
	p, err := g.ShortestPath(start, end)
	if err != nil {
		return 0, err
	}
	return p.Steps(), nil
}

// Reachable reports whether a ladder connects a and b. Absent words are unreachable.
func (g *Graph) Reachable(a, b string) bool {
	_, err := g.ShortestPath(a, b)
	return err == nil
}

// Component returns the sorted words reachable from w, w included.
// It returns nil if w is absent.
func (g *Graph) Component(w string) []string {
	if !g.HasWord(w) {
		return nil
	}
	res, err := bfs.BFS(view{g}, w)
	if err != nil {
		return nil
	}
	return sortedKeys(res.Depth)
}

// Components partitions the graph into connected components. Components are
// ordered by descending size, ties by their first word; words inside a
// component are sorted.
func (g *Graph) Components() [][]string {
	seen := make(map[string]struct{}, len(g.words))
	var out [][]string
	for _, w := range g.words {
		if _, ok := seen[w]; ok {
			continue
		}
		comp := g.Component(w)
		for _, c := range comp {
			seen[c] = struct{}{}
		}
		out = append(out, comp)
	}
	sortComponents(out)
	return out
}

// Pruned returns a graph without isolated words. The receiver is unchanged.
func (g *Graph) Pruned() *Graph {
	words := make([]string, 0, len(g.words))
	adj := make(map[string][]string, len(g.words))
	for _, w := range g.words {
		nbrs := g.adj[w]
		if len(nbrs) == 0 {
			continue
		}
		words = append(words, w)
		adj[w] = nbrs // neighbor lists are never mutated, sharing is safe
	}
	return &Graph{words: words, adj: adj, wordLen: g.wordLen, edges: g.edges}
}

// BoundedAllPaths enumerates at most maxPaths simple ladders from start to end,
// none longer than maxDepth words. Absent endpoints yield an empty result.
// The search holds every partial ladder in memory, so on dense graphs ctx
// should carry a deadline. See package paths for the traversal order.
func (g *Graph) BoundedAllPaths(ctx context.Context, start, end string, maxDepth, maxPaths int) ([]Path, error) {
	raw, err := paths.Bounded(view{g}, start, end, maxDepth, maxPaths, paths.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("ladder: bounded paths %q→%q: %w", start, end, err)
	}
	out := make([]Path, len(raw))
	for i, p := range raw {
		out[i] = Path(p)
	}
	return out, nil
}

// WalkBoundedPaths runs the BoundedAllPaths search and hands each ladder to fn
// as soon as it is found. An error from fn stops the walk and is returned wrapped.
func (g *Graph) WalkBoundedPaths(ctx context.Context, start, end string, maxDepth, maxPaths int, fn func(Path) error) error {
	_, err := paths.Bounded(view{g}, start, end, maxDepth, maxPaths,
		paths.WithContext(ctx),
		paths.WithOnPath(func(p []string) error { return fn(Path(p)) }),
	)
	if err != nil {
		return fmt.Errorf("ladder: bounded paths %q→%q: %w", start, end, err)
	}
	return nil
}

// CountAllPaths counts every simple ladder from start to end. It is unbounded:
// only ctx can cut it short, so restrict it to small curated graphs.
func (g *Graph) CountAllPaths(ctx context.Context, start, end string) (int, error) {
	return paths.Count(view{g}, start, end, paths.WithContext(ctx))
}

// BFS runs a breadth-first traversal from start with the given options.
// It gives callers the full depth map in one pass.
func (g *Graph) BFS(start string, opts ...bfs.Option) (*bfs.Result, error) {
	return bfs.BFS(view{g}, start, opts...)
}

func (g *Graph) requireWords(words ...string) error {
	for _, w := range words {
		if !g.HasWord(w) {
			return fmt.Errorf("%w: %q", ErrWordNotFound, w)
		}
	}
	return nil
}
