// Package permutation converts an integer target order into the sequence
// of pairwise swaps that realizes it starting from the identity. This is
// the host-boundary adapter: the decomposition core emits order vectors;
// callers whose matrix library expects a sequence-of-transpositions
// permutation object use this package to get there.
package permutation
