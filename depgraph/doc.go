// Package depgraph builds the directed row-dependency graph implied by a
// matching over a sparsity pattern, and condenses a strongly-connected
// partition of such a graph into its acyclic component DAG.
package depgraph
