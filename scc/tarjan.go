package scc

import "github.com/katalvlaran/dmperm/depgraph"

// Result is the outcome of StronglyConnectedComponents: a partition of
// g's nodes into components, each node labeled exactly once.
type Result struct {
	ComponentOf   []int   // node -> component id, len == g.N
	Members       [][]int // component id -> nodes, in the order Tarjan pops them off the open stack
	NumComponents int
}

// frame is one entry of the explicit work stack: the node being
// processed and the index of the next successor to visit.
type frame struct {
	node int
	next int
}

// StronglyConnectedComponents partitions g's nodes into strongly
// connected components using iterative Tarjan.
//
// Component ids are assigned in the order components are popped off the
// internal "open" stack, which is reverse topological order of the
// condensation: for an edge u -> v with differing components,
// ComponentOf[u] > ComponentOf[v]. Downstream ordering relies on this.
//
// Complexity: O(V + E).
func StronglyConnectedComponents(g *depgraph.Graph) *Result {
	n := g.N
	index := make([]int, n)
	lowlink := make([]int, n)
	onStack := make([]bool, n)
	for i := range index {
		index[i] = -1
	}

	open := make([]int, 0, n)
	componentOf := make([]int, n)
	for i := range componentOf {
		componentOf[i] = -1
	}
	var members [][]int
	counter := 0

	var work []frame

	for start := 0; start < n; start++ {
		if index[start] != -1 {
			continue
		}
		work = append(work, frame{node: start, next: 0})
		index[start] = counter
		lowlink[start] = counter
		counter++
		open = append(open, start)
		onStack[start] = true

		for len(work) > 0 {
			top := &work[len(work)-1]
			v := top.node
			succ := g.Adj[v]

			advanced := false
			for top.next < len(succ) {
				w := succ[top.next]
				top.next++
				if index[w] == -1 {
					index[w] = counter
					lowlink[w] = counter
					counter++
					open = append(open, w)
					onStack[w] = true
					work = append(work, frame{node: w, next: 0})
					advanced = true
					break
				}
				if onStack[w] && lowlink[w] < lowlink[v] {
					lowlink[v] = lowlink[w]
				}
			}
			if advanced {
				continue
			}

			// All successors of v processed: pop v's frame and propagate
			// its lowlink to its parent, then close v's SCC if it is a root.
			work = work[:len(work)-1]
			if len(work) > 0 {
				parent := &work[len(work)-1]
				if lowlink[v] < lowlink[parent.node] {
					lowlink[parent.node] = lowlink[v]
				}
			}
			if lowlink[v] == index[v] {
				var comp []int
				for {
					w := open[len(open)-1]
					open = open[:len(open)-1]
					onStack[w] = false
					componentOf[w] = len(members)
					comp = append(comp, w)
					if w == v {
						break
					}
				}
				members = append(members, comp)
			}
		}
	}

	return &Result{ComponentOf: componentOf, Members: members, NumComponents: len(members)}
}
