package builder

import "errors"

// ErrTooSmall indicates that rows or cols is below a constructor's minimum.
var ErrTooSmall = errors.New("builder: grid too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a constructor could not complete, e.g. a
// nil constructor or an endpoint outside the grid.
var ErrConstructFailed = errors.New("builder: construction failed")
