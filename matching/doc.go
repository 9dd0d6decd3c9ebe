// Package matching computes a maximum-cardinality bipartite matching
// between the rows and columns of a pattern.Sparsity using Hopcroft–Karp.
//
// The algorithm alternates BFS layering from every free row with DFS
// augmentation along the strictly-layered graph, in the same BFS-level /
// DFS-blocking-flow shape this codebase uses for Dinic's max-flow
// algorithm, specialized to unit-capacity bipartite edges. Complexity:
// O(E * sqrt(V)).
package matching
