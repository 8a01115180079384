// Package ladder builds and queries the word-ladder graph: one vertex per
// vocabulary word, one undirected edge between every two words that differ in
// exactly one letter position.
//
// Construction
//
//	Build groups words into pattern buckets. For a word of length L there are L
//	patterns, each replacing one position with the '*' marker:
//
//	    cold → *old, c*ld, co*d, col*
//
//	Two words differ in exactly one position iff they share a pattern, so every
//	bucket with two or more words is a clique of the graph. This costs
//	O(total vocabulary letters) bucket insertions instead of O(V²) comparisons.
//	Words with no neighbor stay in the graph with an empty neighbor list.
//
// Immutability
//
//	A Graph is never mutated after Build returns. Neighbor lists are sorted
//	and handed out as copies, so every query method is safe for concurrent use
//	without locks.
//
// Queries
//
//   - ShortestPath / Distance: breadth-first search (package bfs).
//   - Reachable / Component / Components: reachability and connected components.
//   - BoundedAllPaths / CountAllPaths: simple-path enumeration (package paths).
//   - Pruned: the subgraph without isolated words.
//
// Errors
//
//   - ErrConstruction  empty vocabulary or mixed word lengths; wraps the vocab cause.
//   - ErrWordNotFound  a query endpoint is not in the graph.
//   - ErrNoPath        both endpoints exist but are not connected.
package ladder
