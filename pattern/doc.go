// Package pattern abstracts the sparsity pattern of a matrix: the set of
// (row, column) positions holding a structural nonzero, independent of the
// values stored there. It is the single boundary across which the
// decomposition core observes a caller's matrix.
//
// A type satisfies Matrix[T] by exposing its shape and an At accessor; the
// caller separately supplies an IsZero predicate, since "zero" is not a
// universal notion for an arbitrary T (a host's scalar type may be a
// struct or an interface, not something comparable with ==).
package pattern
