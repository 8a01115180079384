// Package vocab holds the word lists a ladder puzzle is played over.
//
// Two kinds of list exist:
//
//   - Vocabulary: the deduplicated, equal-length set of lowercase words a
//     ladder.Graph is built from (the "word bank").
//   - Set: a looser dictionary used only to accept or reject guesses. It may be a
//     superset of the Vocabulary and may mix lengths.
//
// Both are immutable after construction and safe for concurrent reads.
//
// Word lists are stored one word per row. Only the first CSV column is read, so
// plain newline-separated files and single-column CSV exports both work.
//
// Errors:
//
//   - ErrEmpty        no words remained after normalization.
//   - ErrMixedLength  a Vocabulary received words of different lengths.
//   - ErrInvalidWord  a word contains a rune outside 'a'..'z'.
package vocab
