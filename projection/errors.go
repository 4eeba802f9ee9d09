package projection

import "errors"

var (
	// ErrDegenerateProjection indicates a diagram that violates genericity:
	// a collapsed edge, coincident vertices, or a vertex on another edge.
	ErrDegenerateProjection = errors.New("projection: degenerate projection")

	// ErrEmptyWalk indicates that there is nothing to project.
	ErrEmptyWalk = errors.New("projection: empty walk")
)
