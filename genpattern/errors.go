package genpattern

import "errors"

// ErrInvalidShape is returned when rows or cols is non-positive.
var ErrInvalidShape = errors.New("genpattern: invalid shape")

// ErrInvalidProbability is returned when p is outside [0, 1].
var ErrInvalidProbability = errors.New("genpattern: probability out of range")

// ErrNeedRandSource is returned when 0 < p < 1 but rng is nil.
var ErrNeedRandSource = errors.New("genpattern: random source required for 0 < p < 1")
