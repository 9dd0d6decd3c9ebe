package matching

import "errors"

// ErrNilSparsity is returned when MaximumMatching receives a nil pattern.Sparsity.
var ErrNilSparsity = errors.New("matching: nil sparsity")
