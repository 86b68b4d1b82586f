package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the minimum of the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that could not proceed, such
// as a nil Constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownKind is returned by ByName for an unrecognised topology name.
var ErrUnknownKind = errors.New("builder: unknown topology")
