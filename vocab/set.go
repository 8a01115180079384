// SPDX-License-Identifier: MIT

package vocab

// Set is a guess dictionary: normalized, deduplicated, any length.
// Rows that are not words (digits, punctuation) are skipped rather than rejected,
// since dictionaries scraped from the wild routinely contain a few of them.
type Set struct {
	index map[string]struct{}
}

// NewSet builds a Set from words. An empty result is an ErrEmpty error.
func NewSet(words []string) (*Set, error) {
	index := make(map[string]struct{}, len(words))
	for _, raw := range words {
		w := Normalize(raw)
		if !IsWord(w) {
			continue
		}
		index[w] = struct{}{}
	}
	if len(index) == 0 {
		return nil, ErrEmpty
	}
	return &Set{index: index}, nil
}

// Len reports the number of distinct words.
func (s *Set) Len() int { return len(s.index) }

// Contains reports whether w (after normalization) is a known word.
func (s *Set) Contains(w string) bool {
	_, ok := s.index[Normalize(w)]
	return ok
}

// Union returns a Set holding the words of s and every word of v.
// The puzzle word bank is merged into the guess dictionary this way so that
// every word on the ladder is always a legal guess.
func (s *Set) Union(v *Vocabulary) *Set {
	index := make(map[string]struct{}, len(s.index)+v.Len())
	for w := range s.index {
		index[w] = struct{}{}
	}
	for _, w := range v.words {
		index[w] = struct{}{}
	}
	return &Set{index: index}
}
