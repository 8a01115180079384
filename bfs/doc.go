// Package bfs provides breadth-first search over any word adjacency,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore words in non-decreasing distance (step count) from a start word.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from word → distance (steps) from start
//   - Parent: map from word → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a word is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error or stop with ErrStop)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Unweighted shortest paths in O(V + E): the first time BFS reaches a word
//     it does so along a minimum-step path.
//   - Reachability, connected components, and level layering for ladder analysis.
//
// Termination
//
//	A word is marked visited when it is enqueued, never later, so each word
//	enters the queue at most once and the loop ends after at most V dequeues.
//
// Determinism
//
//	BFS enqueues neighbors in the order Adjacency.Neighbors returns them.
//	ladder.Graph returns sorted neighbor lists, so traversals over it are
//	reproducible.
//
// Usage
//
//	res, err := bfs.BFS(g, "cold", bfs.WithTarget("warm"))
//	if err != nil {
//		// ErrGraphNil, ErrStartNotFound, ErrOptionViolation, ctx error, hook error
//	}
//	path, err := res.PathTo("warm")
//
// Errors
//
//   - ErrGraphNil          if the adjacency is nil.
//   - ErrStartNotFound     if the start word does not exist.
//   - ErrOptionViolation   if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
