package sparsematrix

import "errors"

// ErrInvalidDimensions is returned when a requested shape is not strictly positive.
var ErrInvalidDimensions = errors.New("sparsematrix: invalid dimensions")

// ErrOutOfRange is returned when a row or column index falls outside the matrix shape.
var ErrOutOfRange = errors.New("sparsematrix: index out of range")
