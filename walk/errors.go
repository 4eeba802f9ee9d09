package walk

import "errors"

var (
	// ErrTooShort indicates a walk without edges.
	ErrTooShort = errors.New("walk: need at least one edge")

	// ErrNotClosed indicates that the first and last points differ.
	ErrNotClosed = errors.New("walk: first and last points differ")

	// ErrZeroLengthEdge indicates two consecutive points coincide.
	ErrZeroLengthEdge = errors.New("walk: zero-length edge")

	// ErrCoincidentVertices indicates two non-consecutive vertices coincide.
	ErrCoincidentVertices = errors.New("walk: coincident vertices")

	// ErrNonFinite indicates a NaN or ±Inf coordinate.
	ErrNonFinite = errors.New("walk: NaN or Inf coordinate")

	// ErrSamplerExhausted indicates that no closed walk was found within MaxAttempts.
	ErrSamplerExhausted = errors.New("walk: sampler exhausted attempts")

	// ErrBadLength indicates a sampler length below the minimum.
	ErrBadLength = errors.New("walk: sampler length must be >= 4")

	// ErrSyntax indicates a malformed line in walk text input.
	ErrSyntax = errors.New("walk: syntax error")
)
