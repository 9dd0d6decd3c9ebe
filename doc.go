// Package dmperm computes row and column permutations that bring a
// sparse matrix's structural pattern to block upper-triangular form: the
// classical Dulmage–Mendelsohn decomposition, which gives this package
// its name.
//
// Pipeline (see the sub-packages for each stage):
//
//	pattern      row-to-column adjacency from a caller's matrix
//	matching     bipartite maximum matching (Hopcroft–Karp)
//	depgraph     row dependency graph + its condensation
//	scc          strongly connected components (iterative Tarjan)
//	ordering     topological order with (block size, id) tie-break
//	permutation  integer order -> swap-sequence host adapter
//
// UpperTriangularPermutations and UpperBlockTriangularStructure are the
// two entry points; everything else in this module is a stage the
// pipeline composes, sparsematrix (a convenience concrete matrix
// implementation for callers without one of their own), or genpattern
// (a random sparsity-pattern generator for property tests).
//
// The whole computation is a single-threaded, synchronous, pure function
// of the input pattern: no shared mutable state, no locking, fully
// deterministic output for identical input.
package dmperm
