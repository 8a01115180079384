// SPDX-License-Identifier: MIT

// Package daily chooses the start and end words of a daily puzzle.
//
// A pair qualifies when its shortest ladder length, in steps, lies inside a
// Range. Selection runs in two bounded phases:
//
//   - random: sample two distinct candidates and measure their distance, up to
//     WithAttempts times (default 5000);
//   - fallback: from up to WithFallbackLimit start words, run one BFS, take a
//     candidate reached at depth MinSteps or more, and cut its path to a random
//     length inside the range. A prefix of a shortest path is itself a shortest
//     path, so the cut endpoints keep the chosen distance.
//
// When both phases come up empty Select returns ErrSelectionFailed. Total work
// is bounded by (attempts + fallback starts) × O(V + E).
//
// Determinism
//
//	WithSeed or WithRand fix the random source; with a fixed source and the same
//	candidates, Select returns the same pair.
package daily
