package crossing

import "errors"

var (
	// ErrAmbiguousCrossing indicates two edges at (numerically) the same depth
	// at their plane intersection, so neither is over.
	ErrAmbiguousCrossing = errors.New("crossing: ambiguous over/under at intersection")

	// ErrUnresolvedGenerator indicates an occurrence sequence in which an
	// under-crossing has no over partner, or no under-occurrence precedes it.
	ErrUnresolvedGenerator = errors.New("crossing: unresolved generator")

	// ErrNilProjection indicates a nil projection argument.
	ErrNilProjection = errors.New("crossing: nil projection")
)
