package crossing

import "math"

// DefaultTolerance is the smallest depth gap that still decides over/under.
const DefaultTolerance = 1e-12

const panicToleranceInvalid = "crossing: WithTolerance: tol must be finite, non-negative"

// Option configures Classify.
type Option func(*options)

type options struct {
	tol float64
}

// WithTolerance sets the depth gap below which a crossing is ambiguous.
// Panics when tol is negative, NaN or ±Inf.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tol = tol }
}

func gatherOptions(opts ...Option) options {
	o := options{tol: DefaultTolerance}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
