package permutation

import "errors"

// ErrNotAPermutation is returned when the input to PermutationSequenceFromOrder
// does not contain each index of [0, len(order)) exactly once.
var ErrNotAPermutation = errors.New("permutation: not a permutation")
