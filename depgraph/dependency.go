package depgraph

import (
	"sort"

	"github.com/katalvlaran/dmperm/matching"
	"github.com/katalvlaran/dmperm/pattern"
)

// BuildRowDependencyGraph produces the directed graph on rows of sp
// implied by m: an edge i -> k exists when row i has a nonzero in some
// column j with ColToRow[j] == k and k != i. Self-loops (a row matched to
// one of its own nonzeros) are dropped; they carry no inter-row
// dependency. Unmatched rows still appear as nodes, possibly with empty
// out-edges; edges targeting unmatched columns are omitted since such
// columns have no back-reference into the row graph.
//
// Complexity: O(nnz log(max row width)) for the per-row sort/dedup.
func BuildRowDependencyGraph(sp *pattern.Sparsity, m *matching.Matching) (*Graph, error) {
	if sp == nil || m == nil {
		return nil, ErrNilInput
	}
	if len(sp.Rows) != sp.NumRows || len(m.ColToRow) != sp.NumCols {
		return nil, ErrDimensionMismatch
	}

	adj := make([][]int, sp.NumRows)
	for i, cols := range sp.Rows {
		seen := make(map[int]bool, len(cols))
		var succ []int
		for _, j := range cols {
			k := m.ColToRow[j]
			if k == matching.Unmatched || k == i || seen[k] {
				continue
			}
			seen[k] = true
			succ = append(succ, k)
		}
		sort.Ints(succ)
		adj[i] = succ
	}

	return &Graph{N: sp.NumRows, Adj: adj}, nil
}
