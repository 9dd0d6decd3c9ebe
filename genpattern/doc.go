// Package genpattern generates deterministic random bipartite sparsity
// patterns for property-based testing of the decomposition pipeline. The
// generator is a direct generalization of this codebase's Erdős–Rényi
// random-graph builder, re-targeted from undirected-graph edges to
// directed row/column incidence pairs.
package genpattern
