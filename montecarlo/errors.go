package montecarlo

import "errors"

var (
	// ErrBadWalkCount indicates a negative number of walks.
	ErrBadWalkCount = errors.New("montecarlo: walk count must be >= 0")

	// ErrNilRunner indicates a nil *Runner receiver.
	ErrNilRunner = errors.New("montecarlo: nil runner")
)
