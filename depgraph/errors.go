package depgraph

import "errors"

// ErrNilInput is returned when a required sparsity or matching argument is nil.
var ErrNilInput = errors.New("depgraph: nil input")

// ErrDimensionMismatch is returned when a matching's array lengths disagree with the sparsity's shape.
var ErrDimensionMismatch = errors.New("depgraph: dimension mismatch")
