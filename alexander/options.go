package alexander

import (
	"math"

	"github.com/katalvlaran/knotwalk/crossing"
	"github.com/katalvlaran/knotwalk/intersect"
	"github.com/katalvlaran/knotwalk/projection"
)

// DefaultKnotTolerance is how far |Δ| may stray from 1 and still count as the
// unknot. Δ(-1) of a knot is an odd integer, so any value well below 1 works.
const DefaultKnotTolerance = 1e-6

const (
	panicWorkersInvalid   = "alexander: WithWorkers: workers must be >= 1"
	panicToleranceInvalid = "alexander: WithDepthTolerance: tol must be finite, non-negative"
	panicProjectorNil     = "alexander: WithProjector: nil projector"
)

// Option configures Assemble and Compute.
type Option func(*options)

type options struct {
	cyclic    bool
	projector *projection.Projector
	workers   int
	depthTol  float64
}

// WithCyclicClosure makes the last row's k+1 term wrap around to column 0.
func WithCyclicClosure() Option {
	return func(o *options) { o.cyclic = true }
}

// WithProjector replaces the default projector (projection.New()).
func WithProjector(pr *projection.Projector) Option {
	if pr == nil {
		panic(panicProjectorNil)
	}

	return func(o *options) { o.projector = pr }
}

// WithWorkers sets the goroutine count of the intersection scan.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

// WithDepthTolerance sets the over/under ambiguity threshold.
func WithDepthTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.depthTol = tol }
}

func gatherOptions(opts ...Option) options {
	o := options{workers: intersect.DefaultWorkers, depthTol: crossing.DefaultTolerance}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.projector == nil {
		o.projector = defaultProjector
	}

	return o
}

var defaultProjector = projection.New()
