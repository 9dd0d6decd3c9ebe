// Package sparsematrix provides one concrete, minimal pattern.Matrix[T]
// implementation: a row-major Dense[T] backed by a flat slice. It exists
// to give tests, examples, and callers without an existing matrix type
// something concrete to decompose; any type satisfying pattern.Matrix[T]
// works equally well with the decomposition core.
package sparsematrix
