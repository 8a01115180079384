// SPDX-License-Identifier: MIT

package ladder

import "strings"

// Path is an ordered start-to-end word sequence.
type Path []string

// Steps reports the number of edges in the path (words − 1); -1 for an empty path.
func (p Path) Steps() int { return len(p) - 1 }

// Start returns the first word, or "" for an empty path.
func (p Path) Start() string {
	if len(p) == 0 {
		return ""
	}
	return p[0]
}

// End returns the last word, or "" for an empty path.
func (p Path) End() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Truncate returns the prefix of p with the given number of steps.
// Out-of-range values are clamped to [0, Steps()].
func (p Path) Truncate(steps int) Path {
	if len(p) == 0 {
		return p
	}
	switch {
	case steps < 0:
		steps = 0
	case steps > p.Steps():
		steps = p.Steps()
	}
	out := make(Path, steps+1)
	copy(out, p[:steps+1])
	return out
}

// IsLadder reports whether p is non-empty, never repeats a word, and each
// consecutive pair is one letter apart.
func (p Path) IsLadder() bool {
	if len(p) == 0 {
		return false
	}
	seen := make(map[string]struct{}, len(p))
	for i, w := range p {
		if _, dup := seen[w]; dup {
			return false
		}
		seen[w] = struct{}{}
		if i > 0 && !OneLetterApart(p[i-1], w) {
			return false
		}
	}
	return true
}

// String renders the path as "cold -> cord -> card".
func (p Path) String() string { return strings.Join(p, " -> ") }
