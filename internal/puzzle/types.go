// SPDX-License-Identifier: MIT

package puzzle

import (
	"errors"

	"github.com/katalvlaran/wordladder/game"
)

var (
	// ErrSelectionFailed wraps daily.ErrSelectionFailed; callers should retry later.
	ErrSelectionFailed = errors.New("puzzle: could not select a daily pair")

	// ErrNoSolution means today's pair has no connecting ladder.
	ErrNoSolution = errors.New("puzzle: no solution for today's pair")

	// ErrConfig reports a missing dependency at construction.
	ErrConfig = errors.New("puzzle: invalid configuration")
)

// Reason explains why a guess was rejected.
type Reason string

const (
	ReasonNone         Reason = ""
	ReasonNotAWord     Reason = "not_a_word"
	ReasonNotOneLetter Reason = "not_one_letter"
	ReasonSameWord     Reason = "same_word"
)

// Verdict is the outcome of ValidateGuess.
type Verdict struct {
	Valid  bool   `json:"valid"`
	Reason Reason `json:"reason,omitempty"`
}

// HintResult reports how far a word is from today's target.
type HintResult struct {
	Word     string    `json:"word"`
	Target   string    `json:"-"`
	Distance int       `json:"distance"`
	Tier     game.Tier `json:"tier"`
	Message  string    `json:"message"`
}
