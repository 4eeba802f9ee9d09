package projection

import "math"

// Defaults for the view rotation and genericity tolerance.
const (
	// DefaultAlpha is the rotation about the X axis.
	DefaultAlpha = math.Pi / 3

	// DefaultBeta is the rotation about the Y axis, applied after DefaultAlpha.
	DefaultBeta = math.Pi / 6

	// DefaultEpsilon is the plane distance below which two diagram features
	// are considered to touch.
	DefaultEpsilon = 1e-9
)

const (
	panicAngleInvalid   = "projection: WithAngles: angles must be finite"
	panicEpsilonInvalid = "projection: WithEpsilon: eps must be finite, non-negative"
)

// Option configures a Projector.
type Option func(*Options)

// Options is the resolved Projector configuration.
type Options struct {
	alpha, beta float64
	eps         float64
	checks      bool
}

// WithAngles sets the two view rotation angles in radians.
func WithAngles(alpha, beta float64) Option {
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) || math.IsNaN(beta) || math.IsInf(beta, 0) {
		panic(panicAngleInvalid)
	}

	return func(o *Options) { o.alpha, o.beta = alpha, beta }
}

// WithEpsilon sets the genericity tolerance.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithoutGenericityChecks skips the O(N²) diagram checks. Only use it when
// the caller already knows the walk projects regularly.
func WithoutGenericityChecks() Option {
	return func(o *Options) { o.checks = false }
}

func gatherOptions(opts ...Option) Options {
	o := Options{alpha: DefaultAlpha, beta: DefaultBeta, eps: DefaultEpsilon, checks: true}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
