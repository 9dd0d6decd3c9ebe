package matching

import (
	"math"

	"github.com/katalvlaran/dmperm/pattern"
)

// runner holds the per-call working state for one Hopcroft–Karp
// invocation: the adjacency being matched, the current matching arrays,
// and the BFS layer/iterator buffers reused across phases.
type runner struct {
	rows     [][]int // row -> sorted columns, from pattern.Sparsity
	numCols  int
	rowToCol []int
	colToRow []int
	rowLevel []int // BFS layer of each row; math.MaxInt if unreached this phase
	iter     []int // next adjacency index to try per row, reset each phase
}

// MaximumMatching computes a maximum-cardinality matching between the rows
// and columns of sp using Hopcroft–Karp.
//
// Steps:
//  1. Validate sp != nil.
//  2. Initialize row_to_col / col_to_row to Unmatched, then optionally
//     seed the matching with a greedy pass (Options.GreedyInit).
//  3. Repeat: BFS-layer from every free row; if no free column is
//     reached, stop. Otherwise DFS-augment from every free row along the
//     strictly-layered graph, flipping the matching along each
//     successful path.
//
// Determinism: row adjacency lists are iterated in their stored ascending
// order in both BFS and DFS (and in the greedy seeding pass), so the
// resulting matching is reproducible regardless of Options.
// Complexity: O(E * sqrt(V)).
func MaximumMatching(sp *pattern.Sparsity, opts ...Option) (*Matching, error) {
	if sp == nil {
		return nil, ErrNilSparsity
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner{
		rows:     sp.Rows,
		numCols:  sp.NumCols,
		rowToCol: initUnmatched(sp.NumRows),
		colToRow: initUnmatched(sp.NumCols),
		rowLevel: make([]int, sp.NumRows),
		iter:     make([]int, sp.NumRows),
	}

	if cfg.GreedyInit {
		r.greedySeed()
	}

	for r.bfsLayer() {
		for i := range r.rows {
			if r.rowToCol[i] == Unmatched {
				r.dfsAugment(i)
			}
		}
	}

	size := 0
	for _, c := range r.rowToCol {
		if c != Unmatched {
			size++
		}
	}

	return &Matching{RowToCol: r.rowToCol, ColToRow: r.colToRow, Size: size}, nil
}

// greedySeed claims, for each row in order, the first column in its
// adjacency list that is still free. It never produces a wrong matching
// (every claim respects the bijection invariant) but may fall short of
// maximum cardinality; the subsequent BFS/DFS phases close the gap.
func (r *runner) greedySeed() {
	for i, cols := range r.rows {
		for _, j := range cols {
			if r.colToRow[j] == Unmatched {
				r.rowToCol[i] = j
				r.colToRow[j] = i
				break
			}
		}
	}
}

func initUnmatched(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = Unmatched
	}
	return s
}

// bfsLayer assigns layer 0 to every free row and BFS-expands through
// columns (via row adjacency) and back to rows (via the current
// matching), stopping as soon as a free column is discovered at the
// current frontier. It reports whether any free column was reached.
func (r *runner) bfsLayer() bool {
	queue := make([]int, 0, len(r.rows))
	for i := range r.rows {
		r.iter[i] = 0
		if r.rowToCol[i] == Unmatched {
			r.rowLevel[i] = 0
			queue = append(queue, i)
		} else {
			r.rowLevel[i] = math.MaxInt
		}
	}

	foundFree := false
	freeLevel := math.MaxInt
	for head := 0; head < len(queue); head++ {
		i := queue[head]
		if r.rowLevel[i] > freeLevel {
			break
		}
		for _, j := range r.rows[i] {
			k := r.colToRow[j]
			if k == Unmatched {
				foundFree = true
				freeLevel = r.rowLevel[i]
				continue
			}
			if r.rowLevel[k] == math.MaxInt {
				r.rowLevel[k] = r.rowLevel[i] + 1
				queue = append(queue, k)
			}
		}
	}

	return foundFree
}

// dfsAugment attempts to extend the matching with an augmenting path
// starting at free row i, descending only through the strictly-layered
// graph built by the preceding bfsLayer call. Columns already tried this
// phase are skipped via r.iter, bounding total work per phase to O(V+E).
func (r *runner) dfsAugment(i int) bool {
	adj := r.rows[i]
	for ; r.iter[i] < len(adj); r.iter[i]++ {
		j := adj[r.iter[i]]
		k := r.colToRow[j]
		if k == Unmatched || (r.rowLevel[k] == r.rowLevel[i]+1 && r.dfsAugment(k)) {
			r.rowToCol[i] = j
			r.colToRow[j] = i
			return true
		}
	}
	r.rowLevel[i] = math.MaxInt
	return false
}
