// SPDX-License-Identifier: MIT

package analysis

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format selects the report encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Encode writes r to w in the given format.
func (r *Report) Encode(w io.Writer, f Format) error {
	switch f {
	case FormatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("analysis: encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("analysis: encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("analysis: unknown format %q", f)
	}
}
