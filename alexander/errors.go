package alexander

import "errors"

var (
	// ErrBadGenerator indicates an Underpass whose generator is outside
	// [0, I).
	ErrBadGenerator = errors.New("alexander: generator out of range")

	// ErrNonFiniteT indicates a NaN or ±Inf evaluation point.
	ErrNonFiniteT = errors.New("alexander: t must be finite")
)
