package ordering_test

import (
	"testing"

	"github.com/katalvlaran/dmperm/depgraph"
	"github.com/katalvlaran/dmperm/matching"
	"github.com/katalvlaran/dmperm/ordering"
	"github.com/stretchr/testify/require"
)

func TestTopoSortWithTiebreak_PreferSmallerBlock(t *testing.T) {
	// Two independent components (no edges): tie-break by block size.
	cond := &depgraph.Graph{N: 2, Adj: [][]int{{}, {}}}
	order, fallback, err := ordering.TopoSortWithTiebreak(cond, []int{3, 1})
	require.NoError(t, err)
	require.False(t, fallback)
	require.Equal(t, []int{1, 0}, order)
}

func TestTopoSortWithTiebreak_RespectsEdges(t *testing.T) {
	cond := &depgraph.Graph{N: 2, Adj: [][]int{{1}, {}}}
	order, fallback, err := ordering.TopoSortWithTiebreak(cond, []int{1, 5})
	require.NoError(t, err)
	require.False(t, fallback)
	require.Equal(t, []int{0, 1}, order)
}

func TestTopoSortWithTiebreak_CycleFallsBack(t *testing.T) {
	// Not a valid condensation (has a cycle); exercises the defensive path.
	cond := &depgraph.Graph{N: 2, Adj: [][]int{{1}, {0}}}
	order, fallback, err := ordering.TopoSortWithTiebreak(cond, []int{1, 1})
	require.NoError(t, err)
	require.True(t, fallback)
	require.Equal(t, []int{0, 1}, order)
}

func TestTopoSortWithTiebreak_StrictReturnsErrorOnCycle(t *testing.T) {
	cond := &depgraph.Graph{N: 2, Adj: [][]int{{1}, {0}}}
	order, fallback, err := ordering.TopoSortWithTiebreak(cond, []int{1, 1}, ordering.WithStrict(true))
	require.ErrorIs(t, err, ordering.ErrCycleDetected)
	require.True(t, fallback)
	require.Nil(t, order)
}

func TestDeriveRowOrder(t *testing.T) {
	members := [][]int{{2, 3}, {0}, {1}}
	rows := ordering.DeriveRowOrder([]int{1, 2, 0}, members)
	require.Equal(t, []int{0, 1, 2, 3}, rows)
}

func TestDeriveColOrder(t *testing.T) {
	m := &matching.Matching{RowToCol: []int{5, 6, 7}, ColToRow: []int{-1, -1, -1, -1, -1, 0, 1, 2}, Size: 3}
	cols := ordering.DeriveColOrder([]int{2, 0, 1}, m)
	require.Equal(t, []int{7, 5, 6}, cols)
}

func TestBlockSizes(t *testing.T) {
	sizes := ordering.BlockSizes([][]int{{0, 1}, {2}})
	require.Equal(t, []int{2, 1}, sizes)
}
