// SPDX-License-Identifier: MIT

package ladder

import "sort"

// Stats is a read-only summary of a graph.
type Stats struct {
	Words            int     `json:"words" yaml:"words"`
	WordLen          int     `json:"word_len" yaml:"word_len"`
	Edges            int     `json:"edges" yaml:"edges"`
	Isolated         int     `json:"isolated" yaml:"isolated"`
	Components       int     `json:"components" yaml:"components"`
	LargestComponent int     `json:"largest_component" yaml:"largest_component"`
	MaxDegree        int     `json:"max_degree" yaml:"max_degree"`
	MeanDegree       float64 `json:"mean_degree" yaml:"mean_degree"`
}

// Stats computes a Stats snapshot. Complexity: O(V + E).
func (g *Graph) Stats() Stats {
	s := Stats{Words: len(g.words), WordLen: g.wordLen, Edges: g.edges}
	for _, w := range g.words {
		d := len(g.adj[w])
		if d == 0 {
			s.Isolated++
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
	}
	if s.Words > 0 {
		s.MeanDegree = float64(2*g.edges) / float64(s.Words)
	}
	comps := g.Components()
	s.Components = len(comps)
	if len(comps) > 0 {
		s.LargestComponent = len(comps[0])
	}
	return s
}

func sortedKeys(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// sortComponents orders by size descending, then by first word.
func sortComponents(cs [][]string) {
	sort.Slice(cs, func(i, j int) bool {
		if len(cs[i]) != len(cs[j]) {
			return len(cs[i]) > len(cs[j])
		}
		return cs[i][0] < cs[j][0]
	})
}
