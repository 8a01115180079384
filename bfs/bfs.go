// Package bfs provides breadth-first search over a word adjacency,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores words in increasing distance from a start word,
// with optional hooks, depth limiting, neighbor filtering and early stop.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// queueItem pairs a word with its BFS depth.
type queueItem struct {
	word  string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   Adjacency
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	head    int
	visited map[string]struct{}
	res     *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error other than ErrStop.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g Adjacency, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasWord(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[string]struct{}),
		res: &Result{
			Start:  start,
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}

	// Seed queue with the start word (no parent)
	w.enqueue(start, 0, "")
	if err := w.loop(); err != nil {
		if errors.Is(err, ErrStop) {
			return w.res, nil
		}
		return w.res, err
	}
	return w.res, nil
}

// enqueue marks w visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue. Marking on enqueue bounds every word to one
// queue entry.
func (w *walker) enqueue(word string, d int, parent string) {
	w.visited[word] = struct{}{}
	w.res.Depth[word] = d
	if d > 0 {
		w.res.Parent[word] = parent
	}
	w.opts.OnEnqueue(word, d)
	w.queue = append(w.queue, queueItem{word: word, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[w.head]
	w.head++
	w.opts.OnDequeue(item.word, item.depth)
	return item
}

// visit records the word in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.word)
	if err := w.opts.OnVisit(item.word, item.depth); err != nil {
		if errors.Is(err, ErrStop) {
			return err
		}
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.word, err)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.word) {
		if _, seen := w.visited[nbr]; seen {
			continue
		}
		if !w.opts.FilterNeighbor(item.word, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.word)
	}
}
