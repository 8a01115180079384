// Package paths enumerates simple paths (no repeated word) between two words.
//
// Two entry points exist:
//
//   - Bounded: breadth-expanding enumeration capped by path length (in words)
//     and by the number of paths returned. Safe to call on any graph.
//   - Count: exhaustive depth-first count with backtracking. A ladder graph can
//     hold exponentially many simple paths, so callers must restrict Count to
//     small curated subgraphs or pass a context with a deadline.
//
// Results of Bounded depend on neighbor order; it is an analysis heuristic,
// not a puzzle-correctness tool.
//
// Complexity:
//
//   - Bounded: O(maxPaths + F·maxDepth) time where F is the number of partial
//     paths expanded; F is bounded by the branching factor to the maxDepth power.
//   - Count:   O(number of simple paths × path length) time, O(V) memory.
package paths

import (
	"fmt"
)

// Bounded returns up to maxPaths simple paths from start to end, each at most
// maxDepth words long, in non-decreasing length order.
// Missing endpoints yield an empty result and a nil error.
func Bounded(g Adjacency, start, end string, maxDepth, maxPaths int, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if maxDepth < 1 || maxPaths < 1 {
		return nil, fmt.Errorf("%w: maxDepth=%d maxPaths=%d", ErrBadLimit, maxDepth, maxPaths)
	}
	if !g.HasWord(start) || !g.HasWord(end) {
		return [][]string{}, nil
	}
	o := resolve(opts)

	found := make([][]string, 0, maxPaths)
	queue := [][]string{{start}}
	for head := 0; head < len(queue) && len(found) < maxPaths; head++ {
		select {
		case <-o.Ctx.Done():
			return found, o.Ctx.Err()
		default:
		}

		p := queue[head]
		queue[head] = nil // release expanded prefixes
		last := p[len(p)-1]
		if last == end {
			if o.OnPath != nil {
				if err := o.OnPath(p); err != nil {
					return found, fmt.Errorf("paths: OnPath hook: %w", err)
				}
			}
			found = append(found, p)
			continue
		}
		if len(p) >= maxDepth {
			continue
		}
		for _, nbr := range g.Neighbors(last) {
			if contains(p, nbr) {
				continue
			}
			next := make([]string, len(p)+1)
			copy(next, p)
			next[len(p)] = nbr
			queue = append(queue, next)
		}
	}

	return found, nil
}

// Count returns the number of simple paths from start to end.
// Missing endpoints count as zero. start == end counts the single-word path.
func Count(g Adjacency, start, end string, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if !g.HasWord(start) || !g.HasWord(end) {
		return 0, nil
	}
	c := &counter{
		graph:  g,
		opts:   resolve(opts),
		end:    end,
		onPath: map[string]struct{}{},
	}
	err := c.walk(start)
	return c.count, err
}

// counter carries the backtracking state of Count.
type counter struct {
	graph  Adjacency
	opts   Options
	end    string
	onPath map[string]struct{}
	stack  []string
	count  int
}

// walk extends the current path with w and recurses into unused neighbors,
// undoing its own mark on return.
func (c *counter) walk(w string) error {
	select {
	case <-c.opts.Ctx.Done():
		return c.opts.Ctx.Err()
	default:
	}

	c.onPath[w] = struct{}{}
	c.stack = append(c.stack, w)
	defer func() {
		delete(c.onPath, w)
		c.stack = c.stack[:len(c.stack)-1]
	}()

	if w == c.end {
		c.count++
		if c.opts.OnPath != nil {
			if err := c.opts.OnPath(c.stack); err != nil {
				return fmt.Errorf("paths: OnPath hook: %w", err)
			}
		}
		return nil
	}
	for _, nbr := range c.graph.Neighbors(w) {
		if _, used := c.onPath[nbr]; used {
			continue
		}
		if err := c.walk(nbr); err != nil {
			return err
		}
	}
	return nil
}

func contains(p []string, w string) bool {
	for _, x := range p {
		if x == w {
			return true
		}
	}
	return false
}
