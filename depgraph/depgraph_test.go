package depgraph_test

import (
	"testing"

	"github.com/katalvlaran/dmperm/depgraph"
	"github.com/katalvlaran/dmperm/matching"
	"github.com/katalvlaran/dmperm/pattern"
	"github.com/stretchr/testify/require"
)

func TestBuildRowDependencyGraph(t *testing.T) {
	// 2x2 full cycle: row0 matched to col1, row1 matched to col0.
	sp := &pattern.Sparsity{
		NumRows: 2,
		NumCols: 2,
		Rows:    [][]int{{0, 1}, {0, 1}},
	}
	m := &matching.Matching{
		RowToCol: []int{1, 0},
		ColToRow: []int{1, 0},
		Size:     2,
	}
	g, err := depgraph.BuildRowDependencyGraph(sp, m)
	require.NoError(t, err)
	require.Equal(t, 2, g.N)
	require.Equal(t, []int{1}, g.Adj[0])
	require.Equal(t, []int{0}, g.Adj[1])
}

func TestBuildRowDependencyGraph_SelfLoopDropped(t *testing.T) {
	sp := &pattern.Sparsity{
		NumRows: 1,
		NumCols: 1,
		Rows:    [][]int{{0}},
	}
	m := &matching.Matching{RowToCol: []int{0}, ColToRow: []int{0}, Size: 1}
	g, err := depgraph.BuildRowDependencyGraph(sp, m)
	require.NoError(t, err)
	require.Empty(t, g.Adj[0])
}

func TestBuildRowDependencyGraph_NilInput(t *testing.T) {
	_, err := depgraph.BuildRowDependencyGraph(nil, nil)
	require.ErrorIs(t, err, depgraph.ErrNilInput)
}

func TestCondense_Acyclic(t *testing.T) {
	g := &depgraph.Graph{N: 3, Adj: [][]int{{1}, {2}, {}}}
	componentOf := []int{0, 1, 2}
	cond := depgraph.Condense(g, componentOf, 3)
	require.Equal(t, []int{1}, cond.Adj[0])
	require.Equal(t, []int{2}, cond.Adj[1])
	require.Empty(t, cond.Adj[2])
}

func TestCondense_CollapsesSCC(t *testing.T) {
	// nodes 0,1 form one SCC (component 0); node 2 is its own component (1).
	g := &depgraph.Graph{N: 3, Adj: [][]int{{1}, {0, 2}, {}}}
	componentOf := []int{0, 0, 1}
	cond := depgraph.Condense(g, componentOf, 2)
	require.Equal(t, []int{1}, cond.Adj[0])
	require.Empty(t, cond.Adj[1])
}
