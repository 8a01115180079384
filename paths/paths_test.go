package paths_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/paths"
)

type adj map[string][]string

func (a adj) HasWord(w string) bool       { _, ok := a[w]; return ok }
func (a adj) Neighbors(w string) []string { return a[w] }

func (a adj) link(u, v string) {
	a[u] = append(a[u], v)
	a[v] = append(a[v], u)
}

// diamond builds A–B, A–C, B–C, B–D, C–D plus an isolated Z.
// Simple A→D paths: ABD, ACD, ABCD, ACBD.
func diamond() adj {
	g := adj{"Z": nil}
	g.link("A", "B")
	g.link("A", "C")
	g.link("B", "C")
	g.link("B", "D")
	g.link("C", "D")
	return g
}

func TestBounded_Errors(t *testing.T) {
	_, err := paths.Bounded(nil, "A", "D", 3, 3)
	assert.ErrorIs(t, err, paths.ErrGraphNil)

	_, err = paths.Bounded(diamond(), "A", "D", 0, 3)
	assert.ErrorIs(t, err, paths.ErrBadLimit)
	_, err = paths.Bounded(diamond(), "A", "D", 3, 0)
	assert.ErrorIs(t, err, paths.ErrBadLimit)
}

func TestBounded_MissingEndpoint(t *testing.T) {
	got, err := paths.Bounded(diamond(), "A", "nope", 5, 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBounded_Limits(t *testing.T) {
	g := diamond()
	cases := []struct {
		name      string
		maxDepth  int
		maxPaths  int
		wantCount int
	}{
		{"depth 2 too short", 2, 10, 0},
		{"depth 3 shortest only", 3, 10, 2},
		{"depth 4 all", 4, 10, 4},
		{"count cap", 4, 3, 3},
		{"single", 10, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := paths.Bounded(g, "A", "D", tc.maxDepth, tc.maxPaths)
			require.NoError(t, err)
			assert.Len(t, got, tc.wantCount)
			for _, p := range got {
				assert.LessOrEqual(t, len(p), tc.maxDepth)
				assert.Equal(t, "A", p[0])
				assert.Equal(t, "D", p[len(p)-1])
				assertSimple(t, p)
				assertLinked(t, g, p)
			}
		})
	}
}

func TestBounded_OrderedByLength(t *testing.T) {
	got, err := paths.Bounded(diamond(), "A", "D", 4, 10)
	require.NoError(t, err)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, len(got[i-1]), len(got[i]))
	}
}

func TestBounded_SameWord(t *testing.T) {
	got, err := paths.Bounded(diamond(), "B", "B", 3, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"B"}}, got)
}

func TestBounded_Unreachable(t *testing.T) {
	got, err := paths.Bounded(diamond(), "A", "Z", 6, 6)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCount(t *testing.T) {
	g := diamond()
	n, err := paths.Count(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = paths.Count(g, "A", "A")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = paths.Count(g, "A", "Z")
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = paths.Count(g, "A", "missing")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCount_OnPathSeesEveryPath(t *testing.T) {
	seen := map[string]bool{}
	_, err := paths.Count(diamond(), "A", "D", paths.WithOnPath(func(p []string) error {
		seen[fmt.Sprint(p)] = true
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{
		"[A B D]":   true,
		"[A C D]":   true,
		"[A B C D]": true,
		"[A C B D]": true,
	}, seen)
}

func TestCount_HookAbort(t *testing.T) {
	stop := errors.New("stop")
	_, err := paths.Count(diamond(), "A", "D", paths.WithOnPath(func([]string) error { return stop }))
	assert.ErrorIs(t, err, stop)
}

func TestCount_Cancellation(t *testing.T) {
	// complete graph on 9 words: far too many paths to finish instantly
	g := adj{}
	for i := 0; i < 9; i++ {
		for j := i + 1; j < 9; j++ {
			g.link(fmt.Sprint(i), fmt.Sprint(j))
		}
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := paths.Count(g, "0", "8", paths.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = paths.Bounded(g, "0", "8", 9, 1000, paths.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func assertSimple(t *testing.T, p []string) {
	t.Helper()
	seen := map[string]bool{}
	for _, w := range p {
		assert.False(t, seen[w], "word %q repeats in %v", w, p)
		seen[w] = true
	}
}

func assertLinked(t *testing.T, g adj, p []string) {
	t.Helper()
	for i := 1; i < len(p); i++ {
		assert.Contains(t, g[p[i-1]], p[i], "%v: %s–%s not adjacent", p, p[i-1], p[i])
	}
}
