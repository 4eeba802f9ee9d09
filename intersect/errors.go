package intersect

import "errors"

var (
	// ErrNilProjection indicates a nil projection argument.
	ErrNilProjection = errors.New("intersect: nil projection")

	// ErrOverlappingEdges indicates two collinear edges sharing a stretch of
	// the diagram, which a regular projection never produces.
	ErrOverlappingEdges = errors.New("intersect: overlapping collinear edges")
)
