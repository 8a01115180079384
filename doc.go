// Package wordladder is a daily word-ladder puzzle engine: a graph that links
// equal-length words differing in exactly one letter, the queries a puzzle
// needs over it, and a small service that serves one puzzle per day.
//
// What is a word ladder?
//
//	cold → cord → card → ward → warm
//
//	Each step changes one letter, and every intermediate word is in the
//	vocabulary. The length of a ladder is its number of steps.
//
// The module is organized in layers:
//
//	vocab/     word lists: normalization, validation, CSV read/write
//	bfs/       breadth-first traversal with hooks, depth limits and early stop
//	paths/     bounded and exhaustive simple-path enumeration
//	ladder/    the word graph: pattern-bucket build, shortest paths, components
//	daily/     choosing a pair whose shortest ladder falls in a step range
//	game/      guess adjacency, distance and hint tiers
//	internal/  persistence, the puzzle service, HTTP API, config, logging, analysis
//	cmd/       the wordladder binary (serve, path, select, analyze, prune)
//
// Graphs are immutable once built, so any number of goroutines may query one
// without locking.
//
// Quick example:
//
//	g, _ := ladder.BuildWords([]string{"cold", "cord", "card", "ward", "warm"})
//	p, _ := g.ShortestPath("cold", "warm")
//	fmt.Println(p) // cold -> cord -> card -> ward -> warm
package wordladder
