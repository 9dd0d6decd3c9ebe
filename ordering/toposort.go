package ordering

import (
	"container/heap"

	"github.com/katalvlaran/dmperm/depgraph"
	"github.com/katalvlaran/dmperm/matching"
)

// TopoSortWithTiebreak produces a topological order of cond's C
// components, preferring smaller blockSizes[c] among components that
// become available simultaneously, then smaller component id.
//
// Implementation: Kahn's algorithm. In-degrees are computed from cond;
// every zero-in-degree component is pushed onto a (blockSize, id)
// min-heap; repeatedly pop the minimum, append it to the order, and
// decrement the in-degree of its successors, pushing any that reach
// zero.
//
// Defensive fallback: if the heap empties before all C components are
// emitted, this can only mean cond contained a cycle, which a correct
// condensation never does. Rather than return a partial or corrupt
// order, the function falls back to the identity order 0..C-1 and
// reports fallback = true, unless Options.Strict is set, in which case
// it returns ErrCycleDetected instead.
func TopoSortWithTiebreak(cond *depgraph.Graph, blockSizes []int, opts ...Option) ([]int, bool, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	c := cond.N
	indegree := make([]int, c)
	for _, succs := range cond.Adj {
		for _, v := range succs {
			indegree[v]++
		}
	}

	pq := make(componentPQ, 0, c)
	for id := 0; id < c; id++ {
		if indegree[id] == 0 {
			pq = append(pq, componentItem{id: id, blockSize: blockSizes[id]})
		}
	}
	heap.Init(&pq)

	order := make([]int, 0, c)
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(componentItem)
		order = append(order, item.id)
		for _, v := range cond.Adj[item.id] {
			indegree[v]--
			if indegree[v] == 0 {
				heap.Push(&pq, componentItem{id: v, blockSize: blockSizes[v]})
			}
		}
	}

	if len(order) != c {
		if cfg.Strict {
			return nil, true, ErrCycleDetected
		}
		identity := make([]int, c)
		for i := range identity {
			identity[i] = i
		}
		return identity, true, nil
	}

	return order, false, nil
}

// DeriveRowOrder concatenates members[c] for each c in componentOrder,
// preserving each component's internal order (the order Tarjan popped
// its members off the open stack).
func DeriveRowOrder(componentOrder []int, members [][]int) []int {
	var rows []int
	for _, c := range componentOrder {
		rows = append(rows, members[c]...)
	}
	return rows
}

// DeriveColOrder maps each row in rowOrder through the matching to its
// matched column. Every row in rowOrder must be matched; the pipeline
// only ever calls this over the matched-row subgraph.
func DeriveColOrder(rowOrder []int, m *matching.Matching) []int {
	cols := make([]int, len(rowOrder))
	for i, row := range rowOrder {
		cols[i] = m.RowToCol[row]
	}
	return cols
}

// BlockSizes returns the size of each component in members, indexed by
// component id.
func BlockSizes(members [][]int) []int {
	sizes := make([]int, len(members))
	for c, m := range members {
		sizes[c] = len(m)
	}
	return sizes
}
