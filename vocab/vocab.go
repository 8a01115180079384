// SPDX-License-Identifier: MIT

package vocab

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for vocabulary construction.
var (
	// ErrEmpty indicates that no words remained after trimming and deduplication.
	ErrEmpty = errors.New("vocab: vocabulary is empty")

	// ErrMixedLength indicates that words of different lengths were supplied.
	ErrMixedLength = errors.New("vocab: words have mixed lengths")

	// ErrInvalidWord indicates a word with a rune outside the lowercase alphabet.
	ErrInvalidWord = errors.New("vocab: invalid word")
)

// Vocabulary is an immutable set of equal-length lowercase words.
type Vocabulary struct {
	words   []string            // sorted, unique
	index   map[string]struct{} // membership
	wordLen int                 // shared length in bytes
}

// New normalizes words (trim, lower-case), drops blanks and duplicates,
// and validates that every word has the same length and only uses 'a'..'z'.
//
// Complexity: O(N log N) for N input words (sorting dominates).
func New(words []string) (*Vocabulary, error) {
	index := make(map[string]struct{}, len(words))
	uniq := make([]string, 0, len(words))
	wordLen := -1
	for _, raw := range words {
		w := Normalize(raw)
		if w == "" {
			continue
		}
		if _, dup := index[w]; dup {
			continue
		}
		if !IsWord(w) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWord, raw)
		}
		switch {
		case wordLen < 0:
			wordLen = len(w)
		case len(w) != wordLen:
			return nil, fmt.Errorf("%w: %q has length %d, want %d", ErrMixedLength, w, len(w), wordLen)
		}
		index[w] = struct{}{}
		uniq = append(uniq, w)
	}
	if len(uniq) == 0 {
		return nil, ErrEmpty
	}
	sort.Strings(uniq)

	return &Vocabulary{words: uniq, index: index, wordLen: wordLen}, nil
}

// MustNew is New for fixtures and examples; it panics on error.
func MustNew(words ...string) *Vocabulary {
	v, err := New(words)
	if err != nil {
		panic(err)
	}
	return v
}

// Len reports the number of distinct words.
func (v *Vocabulary) Len() int { return len(v.words) }

// WordLen reports the shared word length.
func (v *Vocabulary) WordLen() int { return v.wordLen }

// Contains reports whether w (after normalization) is in the vocabulary.
func (v *Vocabulary) Contains(w string) bool {
	_, ok := v.index[Normalize(w)]
	return ok
}

// Words returns a sorted copy of the vocabulary.
func (v *Vocabulary) Words() []string {
	out := make([]string, len(v.words))
	copy(out, v.words)
	return out
}

// Normalize trims surrounding whitespace and lower-cases w.
func Normalize(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}

// IsWord reports whether w is non-empty and made only of 'a'..'z'.
func IsWord(w string) bool {
	if w == "" {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}
