package dmperm

import (
	"sort"

	"github.com/katalvlaran/dmperm/depgraph"
	"github.com/katalvlaran/dmperm/matching"
	"github.com/katalvlaran/dmperm/ordering"
	"github.com/katalvlaran/dmperm/pattern"
	"github.com/katalvlaran/dmperm/permutation"
	"github.com/katalvlaran/dmperm/scc"
)

// UpperTriangularPermutations runs the full decomposition pipeline on M
// and returns the row and column permutation sequences as host-boundary
// swap lists, ready to apply directly to the rows and columns of the
// matched submatrix (the rows in sorted(structure.RowOrder) order, the
// columns in sorted(structure.ColOrder) order).
//
// Complexity: O(n*m) entry accesses to read the pattern, plus
// O(nnz * sqrt(n+m)) for Hopcroft–Karp matching.
func UpperTriangularPermutations[T any](m pattern.Matrix[T], isZero pattern.IsZero[T]) (Pr, Pc []permutation.Swap, err error) {
	structure, err := decompose(m, isZero)
	if err != nil {
		return nil, nil, err
	}

	Pr, err = permutation.PermutationSequenceFromOrder(localOrder(structure.RowOrder))
	if err != nil {
		return nil, nil, err
	}
	Pc, err = permutation.PermutationSequenceFromOrder(localOrder(structure.ColOrder))
	if err != nil {
		return nil, nil, err
	}

	return Pr, Pc, nil
}

// localOrder remaps order, a list of distinct original matrix indices, to
// the ranks of those same values within their own sorted set, producing a
// permutation of [0, len(order)) as required by
// permutation.PermutationSequenceFromOrder. RowOrder and ColOrder list
// original row/column indices, which need not themselves lie in
// [0, len(order)) whenever the matching is not perfect on that side
// (e.g. a rectangular or structurally singular matrix): applying Pr/Pc
// to the submatrix extracted by sorting those same original indices
// recovers the order structure.RowOrder/ColOrder describes.
func localOrder(order []int) []int {
	sorted := append([]int(nil), order...)
	sort.Ints(sorted)
	rank := make(map[int]int, len(sorted))
	for i, v := range sorted {
		rank[v] = i
	}
	local := make([]int, len(order))
	for i, v := range order {
		local[i] = rank[v]
	}
	return local
}

// UpperBlockTriangularStructure runs the full decomposition pipeline on M
// and returns the diagnostic Structure describing the block-triangular
// layout, without converting the orders to a swap sequence.
func UpperBlockTriangularStructure[T any](m pattern.Matrix[T], isZero pattern.IsZero[T]) (*Structure, error) {
	return decompose(m, isZero)
}

// decompose wires together pattern -> matching -> depgraph -> scc ->
// ordering into one Structure. It is the sole place the pipeline's
// stages are composed; both public entry points call through it.
func decompose[T any](m pattern.Matrix[T], isZero pattern.IsZero[T]) (*Structure, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	sp, err := pattern.BuildRowAdjacency[T](m, isZero)
	if err != nil {
		return nil, err
	}

	mt, err := matching.MaximumMatching(sp)
	if err != nil {
		return nil, err
	}

	dg, err := depgraph.BuildRowDependencyGraph(sp, mt)
	if err != nil {
		return nil, err
	}

	sccResult := scc.StronglyConnectedComponents(dg)
	cond := depgraph.Condense(dg, sccResult.ComponentOf, sccResult.NumComponents)
	blockSizes := ordering.BlockSizes(sccResult.Members)

	componentOrder, _, err := ordering.TopoSortWithTiebreak(cond, blockSizes)
	if err != nil {
		return nil, err
	}
	fullRowOrder := ordering.DeriveRowOrder(componentOrder, sccResult.Members)

	rowOrder := filterMatched(fullRowOrder, mt)
	colOrder := ordering.DeriveColOrder(rowOrder, mt)

	return &Structure{
		MatchingSize:   mt.Size,
		BlockSizes:     matchedBlockSizes(componentOrder, sccResult.Members, mt),
		RowOrder:       rowOrder,
		ColOrder:       colOrder,
		ComponentOfRow: sccResult.ComponentOf,
	}, nil
}

// filterMatched drops unmatched rows from order, preserving relative
// order; only matched rows have a corresponding column to occupy a
// diagonal block.
func filterMatched(order []int, m *matching.Matching) []int {
	out := make([]int, 0, len(order))
	for _, row := range order {
		if m.RowToCol[row] != matching.Unmatched {
			out = append(out, row)
		}
	}
	return out
}

// matchedBlockSizes recomputes block sizes counting only matched rows
// within each component, in componentOrder, dropping any block that
// becomes empty once unmatched rows are excluded.
func matchedBlockSizes(componentOrder []int, members [][]int, m *matching.Matching) []int {
	var sizes []int
	for _, c := range componentOrder {
		count := 0
		for _, row := range members[c] {
			if m.RowToCol[row] != matching.Unmatched {
				count++
			}
		}
		if count > 0 {
			sizes = append(sizes, count)
		}
	}
	return sizes
}
