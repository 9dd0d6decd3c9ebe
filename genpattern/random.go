package genpattern

import (
	"math/rand"

	"github.com/katalvlaran/dmperm/pattern"
)

// RandomPattern generates an Erdős–Rényi-style random bipartite sparsity
// pattern over `rows` rows and `cols` columns, including each candidate
// (i, j) edge independently with probability p.
//
// Iteration order is fixed (i outer, j inner) so that, for a given rng
// and seed, the resulting pattern is reproducible. p == 0 and p == 1 are
// handled without consulting rng at all, matching this codebase's
// convention that deterministic corner cases never require a random
// source; rng == nil for 0 < p < 1 is rejected rather than silently
// defaulting.
//
// Complexity: O(rows * cols).
func RandomPattern(rows, cols int, p float64, rng *rand.Rand) (*pattern.Sparsity, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidShape
	}
	if p < 0 || p > 1 {
		return nil, ErrInvalidProbability
	}
	if p > 0 && p < 1 && rng == nil {
		return nil, ErrNeedRandSource
	}

	out := make([][]int, rows)
	for i := 0; i < rows; i++ {
		var cs []int
		for j := 0; j < cols; j++ {
			switch {
			case p == 0:
				continue
			case p == 1:
				cs = append(cs, j)
			case rng.Float64() < p:
				cs = append(cs, j)
			}
		}
		out[i] = cs
	}

	return &pattern.Sparsity{NumRows: rows, NumCols: cols, Rows: out}, nil
}

// CompleteBipartite returns the sparsity pattern in which every row has a
// nonzero in every column: the densest possible pattern of the given
// shape, used as a deterministic corner case in property tests.
func CompleteBipartite(rows, cols int) (*pattern.Sparsity, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidShape
	}
	out := make([][]int, rows)
	for i := 0; i < rows; i++ {
		cs := make([]int, cols)
		for j := 0; j < cols; j++ {
			cs[j] = j
		}
		out[i] = cs
	}
	return &pattern.Sparsity{NumRows: rows, NumCols: cols, Rows: out}, nil
}
