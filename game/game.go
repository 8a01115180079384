// SPDX-License-Identifier: MIT

package game

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wordladder/ladder"
)

// Unreachable is the distance reported when no ladder connects two words.
const Unreachable = -1

// IsAdjacentGuess reports whether candidate is one letter away from current.
// It is a structural check only; dictionary membership is the caller's concern.
func IsAdjacentGuess(candidate, current string) bool {
	return ladder.OneLetterApart(candidate, current)
}

// Distance returns the number of steps from word to target, or Unreachable
// when either word is absent or no ladder connects them.
func Distance(g *ladder.Graph, word, target string) int {
	if g == nil {
		return Unreachable
	}
	d, err := g.Distance(word, target)
	if err != nil {
		return Unreachable
	}
	return d
}

// Tier buckets a distance for hint display.
type Tier int

const (
	FarOrUnreachable Tier = iota
	VeryClose
	OnTrack
	Drifting
)

// ErrUnknownTier is returned when parsing an unrecognized tier name.
var ErrUnknownTier = errors.New("game: unknown tier")

// TierFor maps a step distance to its tier: ≤3 very close, 4–6 on track,
// 7 and beyond drifting. Unreachable (any negative distance) is far.
func TierFor(distance int) Tier {
	switch {
	case distance < 0:
		return FarOrUnreachable
	case distance <= 3:
		return VeryClose
	case distance <= 6:
		return OnTrack
	default:
		return Drifting
	}
}

var tierNames = [...]string{
	FarOrUnreachable: "far_or_unreachable",
	VeryClose:        "very_close",
	OnTrack:          "on_track",
	Drifting:         "drifting",
}

var tierMessages = [...]string{
	FarOrUnreachable: "That word can't reach the target. Try another path.",
	VeryClose:        "Very close! You're almost there.",
	OnTrack:          "On track. Keep going.",
	Drifting:         "Drifting away. Consider a different route.",
}

func (t Tier) valid() bool { return t >= FarOrUnreachable && t <= Drifting }

func (t Tier) String() string {
	if !t.valid() {
		return fmt.Sprintf("tier(%d)", int(t))
	}
	return tierNames[t]
}

// Message is the player-facing hint text.
func (t Tier) Message() string {
	if !t.valid() {
		return ""
	}
	return tierMessages[t]
}

// MarshalText encodes the tier by name.
func (t Tier) MarshalText() ([]byte, error) {
	if !t.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTier, int(t))
	}
	return []byte(tierNames[t]), nil
}

// UnmarshalText decodes a tier name.
func (t *Tier) UnmarshalText(b []byte) error {
	for i, name := range tierNames {
		if name == string(b) {
			*t = Tier(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownTier, b)
}
