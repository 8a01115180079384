// SPDX-License-Identifier: MIT

package daily

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrSelectionFailed means both search phases ran out without finding a pair.
	// It usually means the vocabulary is too small or too sparsely connected.
	ErrSelectionFailed = errors.New("daily: no pair found in target range")

	// ErrBadRange indicates an unusable step range.
	ErrBadRange = errors.New("daily: invalid step range")

	// ErrGraphNil is returned when the selector has no graph.
	ErrGraphNil = errors.New("daily: graph is nil")
)

// Range is an inclusive bound on the shortest-path length of a pair, in steps
// (edges). A ladder of 7 to 10 words is Range{6, 9}.
type Range struct {
	MinSteps int `json:"min_steps" mapstructure:"min_steps"`
	MaxSteps int `json:"max_steps" mapstructure:"max_steps"`
}

// DefaultRange is the reference policy: 7–10 words, i.e. 6–9 steps.
func DefaultRange() Range { return Range{MinSteps: 6, MaxSteps: 9} }

// Validate rejects ranges that could only yield identical or no words.
func (r Range) Validate() error {
	if r.MinSteps < 1 || r.MaxSteps < r.MinSteps {
		return fmt.Errorf("%w: [%d, %d]", ErrBadRange, r.MinSteps, r.MaxSteps)
	}
	return nil
}

// Contains reports whether steps lies in [MinSteps, MaxSteps].
func (r Range) Contains(steps int) bool {
	return steps >= r.MinSteps && steps <= r.MaxSteps
}

// Pair is a selected puzzle: Steps is the shortest-path length between the words.
type Pair struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Steps int    `json:"steps"`
}

// Phase names the search phase that produced a pair.
type Phase int

const (
	PhaseNone     Phase = iota // nothing found
	PhaseRandom                // uniform sampling
	PhaseFallback              // truncated BFS path
)

func (p Phase) String() string {
	switch p {
	case PhaseRandom:
		return "random"
	case PhaseFallback:
		return "fallback"
	default:
		return "none"
	}
}

// Stats captures how much search a selection took.
type Stats struct {
	Attempts       int
	FallbackStarts int
	Phase          Phase
	Duration       time.Duration
}
