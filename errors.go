package dmperm

import "errors"

// ErrNilMatrix is returned when UpperTriangularPermutations or
// UpperBlockTriangularStructure is called with a nil matrix.
var ErrNilMatrix = errors.New("dmperm: nil matrix")

// ErrInternalInvariant marks a condition that should be unreachable for
// any correct implementation (e.g. a condensation containing a cycle).
// It is reported rather than panicking so a host embedding this library
// never crashes on a library bug it cannot fix; see ordering's defensive
// topological-sort fallback, which is what actually absorbs this case in
// practice. ErrInternalInvariant exists for any future internal
// consistency check that cannot be so gracefully absorbed.
var ErrInternalInvariant = errors.New("dmperm: internal invariant violated")
