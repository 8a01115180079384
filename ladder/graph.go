// SPDX-License-Identifier: MIT

package ladder

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/wordladder/vocab"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrConstruction indicates the vocabulary could not form a graph.
	ErrConstruction = errors.New("ladder: cannot build graph")

	// ErrNotFound is matched by both ErrWordNotFound and ErrNoPath.
	ErrNotFound = errors.New("ladder: not found")

	// ErrWordNotFound indicates a query endpoint is absent from the graph.
	ErrWordNotFound = fmt.Errorf("%w: word not in graph", ErrNotFound)

	// ErrNoPath indicates that no ladder connects the two words.
	ErrNoPath = fmt.Errorf("%w: no path", ErrNotFound)
)

// Wildcard is the marker substituted into a word to form its bucket patterns.
const Wildcard = '*'

// Graph is an immutable one-letter-difference graph over a vocabulary.
type Graph struct {
	words   []string            // sorted
	adj     map[string][]string // word → sorted neighbors; isolated words map to nil
	wordLen int
	edges   int
}

// Build constructs the graph for v.
//
// Complexity: O(V·L) bucket insertions plus O(Σ bucket²) edge insertions,
// with V words of length L.
func Build(v *vocab.Vocabulary) (*Graph, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: %w", ErrConstruction, vocab.ErrEmpty)
	}
	words := v.Words()
	wordLen := v.WordLen()

	// Pattern buckets live only for the duration of Build.
	buckets := make(map[string][]string, len(words)*wordLen)
	buf := make([]byte, wordLen)
	for _, w := range words {
		for i := 0; i < wordLen; i++ {
			copy(buf, w)
			buf[i] = Wildcard
			key := string(buf)
			buckets[key] = append(buckets[key], w)
		}
	}

	adj := make(map[string][]string, len(words))
	for _, w := range words {
		adj[w] = nil
	}
	// Two distinct words share at most one bucket (the one wildcarding their
	// single differing position), so no edge is inserted twice.
	edges := 0
	for _, bucket := range buckets {
		if len(bucket) < 2 {
			continue
		}
		for i, a := range bucket {
			for _, b := range bucket[i+1:] {
				adj[a] = append(adj[a], b)
				adj[b] = append(adj[b], a)
				edges++
			}
		}
	}
	for _, nbrs := range adj {
		sort.Strings(nbrs)
	}

	return &Graph{words: words, adj: adj, wordLen: wordLen, edges: edges}, nil
}

// BuildWords normalizes words into a vocabulary and builds the graph.
// Vocabulary errors are reported as ErrConstruction and keep their cause.
func BuildWords(words []string) (*Graph, error) {
	v, err := vocab.New(words)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConstruction, err)
	}
	return Build(v)
}

// MustBuild is BuildWords for fixtures and examples; it panics on error.
func MustBuild(words ...string) *Graph {
	g, err := BuildWords(words)
	if err != nil {
		panic(err)
	}
	return g
}

// Len reports the number of words.
func (g *Graph) Len() int { return len(g.words) }

// WordLen reports the shared word length.
func (g *Graph) WordLen() int { return g.wordLen }

// EdgeCount reports the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Words returns a sorted copy of every word, isolated ones included.
func (g *Graph) Words() []string {
	out := make([]string, len(g.words))
	copy(out, g.words)
	return out
}

// HasWord reports whether w is a vertex of the graph.
func (g *Graph) HasWord(w string) bool {
	_, ok := g.adj[w]
	return ok
}

// Neighbors returns a sorted copy of w's neighbors, or nil if w is absent or isolated.
func (g *Graph) Neighbors(w string) []string {
	nbrs := g.adj[w]
	if len(nbrs) == 0 {
		return nil
	}
	out := make([]string, len(nbrs))
	copy(out, nbrs)
	return out
}

// Degree reports the number of neighbors of w (0 when absent).
func (g *Graph) Degree(w string) int { return len(g.adj[w]) }

// Adjacent reports whether a and b are joined by an edge.
// Complexity: O(log deg(a)).
func (g *Graph) Adjacent(a, b string) bool {
	nbrs := g.adj[a]
	i := sort.SearchStrings(nbrs, b)
	return i < len(nbrs) && nbrs[i] == b
}

// view exposes the internal neighbor slices to traversal packages without
// copying. Traversals only read them.
type view struct{ g *Graph }

func (v view) HasWord(w string) bool       { return v.g.HasWord(w) }
func (v view) Neighbors(w string) []string { return v.g.adj[w] }

// OneLetterApart reports whether a and b have equal length and differ in
// exactly one byte position. It does not consult any graph.
func OneLetterApart(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	diff := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			diff++
			if diff > 1 {
				return false
			}
		}
	}
	return diff == 1
}
