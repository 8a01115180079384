// SPDX-License-Identifier: MIT

// Package store persists daily pair records.
//
// Two backends share the Store interface: FileStore keeps only the current
// record in a single JSON file, BadgerStore keeps the full history in an
// embedded BadgerDB keyed by date.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used for record keys.
const DateLayout = "2006-01-02"

var (
	// ErrNotFound means no record exists for the requested date. A stored
	// record for an older date is reported the same way.
	ErrNotFound = errors.New("store: record not found")

	// ErrCorrupt means stored bytes could not be decoded into a Record.
	ErrCorrupt = errors.New("store: corrupt record")

	// ErrInvalidRecord is returned by Put for malformed records.
	ErrInvalidRecord = errors.New("store: invalid record")
)

// Record is the persisted daily pair: Pair holds the start and end words.
type Record struct {
	Date string    `json:"date"`
	Pair [2]string `json:"pair"`
}

// Start returns the first word of the pair.
func (r Record) Start() string { return r.Pair[0] }

// End returns the target word of the pair.
func (r Record) End() string { return r.Pair[1] }

// Validate checks the date layout and that both words are set and distinct.
func (r Record) Validate() error {
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return fmt.Errorf("%w: date %q: %w", ErrInvalidRecord, r.Date, err)
	}
	if r.Pair[0] == "" || r.Pair[1] == "" || r.Pair[0] == r.Pair[1] {
		return fmt.Errorf("%w: pair %q", ErrInvalidRecord, r.Pair)
	}
	return nil
}

// DateOf formats t as a UTC calendar date.
func DateOf(t time.Time) string { return t.UTC().Format(DateLayout) }

// Store reads and writes daily records.
// Implementations are safe for concurrent use.
type Store interface {
	// Get returns the record for date, or ErrNotFound.
	Get(ctx context.Context, date string) (*Record, error)
	// Put writes r, replacing any record for the same date.
	Put(ctx context.Context, r *Record) error
	// List returns up to limit records, newest first. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]Record, error)
	Close() error
}
