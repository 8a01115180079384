// SPDX-License-Identifier: MIT

// Package game holds the player-facing rules of a ladder puzzle: whether a
// guess is a legal next step, how far a word is from the target, and which
// hint tier that distance falls into.
package game
