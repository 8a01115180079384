// SPDX-License-Identifier: MIT

package vocab

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// readRows returns the first column of every non-blank row in r.
func readRows(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // rows may carry extra columns (frequency, tags)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var rows []string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("vocab: read word list: %w", err)
		}
		if len(rec) == 0 || strings.TrimSpace(rec[0]) == "" {
			continue
		}
		rows = append(rows, rec[0])
	}
	return rows, nil
}

// Read parses a word list and builds a Vocabulary from it.
func Read(r io.Reader) (*Vocabulary, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}
	return New(rows)
}

// Load opens path and parses it with Read.
func Load(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vocab: open %s: %w", path, err)
	}
	defer f.Close()

	v, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// ReadSet parses a guess dictionary.
func ReadSet(r io.Reader) (*Set, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}
	return NewSet(rows)
}

// LoadSet opens path and parses it with ReadSet.
func LoadSet(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vocab: open %s: %w", path, err)
	}
	defer f.Close()

	s, err := ReadSet(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Write emits words one per row in the same format Read accepts.
func Write(w io.Writer, words []string) error {
	cw := csv.NewWriter(w)
	for _, word := range words {
		if err := cw.Write([]string{word}); err != nil {
			return fmt.Errorf("vocab: write word list: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
