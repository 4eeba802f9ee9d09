package montecarlo

import (
	"math"
	"runtime"

	"github.com/katalvlaran/knotwalk/alexander"
	"github.com/katalvlaran/knotwalk/walk"
)

const (
	// DefaultLength is the number of lattice steps per walk.
	DefaultLength = 40

	// DefaultT is the evaluation point; at -1 the polynomial is ±Δ(-1), the
	// knot determinant.
	DefaultT = -1.0

	// DefaultSeed makes runs reproducible unless overridden.
	DefaultSeed int64 = 1
)

const (
	panicWorkersInvalid = "montecarlo: WithWorkers: workers must be >= 1"
	panicSamplerNil     = "montecarlo: WithSampler: nil sampler"
	panicTInvalid       = "montecarlo: WithT: t must be finite"
	panicEpsInvalid     = "montecarlo: WithKnotTolerance: eps must be finite, positive"
)

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers bounds the number of walks processed concurrently.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(r *Runner) { r.workers = n }
}

// WithSeed sets the root seed of the per-walk RNG streams.
func WithSeed(seed int64) Option {
	return func(r *Runner) { r.seed = seed }
}

// WithT sets the point at which Sample.Value is reported. Knottedness and the
// determinant histogram always come from Δ(-1).
func WithT(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		panic(panicTInvalid)
	}

	return func(r *Runner) { r.t = t }
}

// WithKnotTolerance sets the eps of alexander.IsKnotted.
func WithKnotTolerance(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic(panicEpsInvalid)
	}

	return func(r *Runner) { r.eps = eps }
}

// WithSampler replaces the default walk.NewSampler(DefaultLength).
func WithSampler(s *walk.Sampler) Option {
	if s == nil {
		panic(panicSamplerNil)
	}

	return func(r *Runner) { r.sampler = s }
}

// WithPipeline passes options through to alexander.Compute.
func WithPipeline(opts ...alexander.Option) Option {
	return func(r *Runner) { r.pipeline = append(r.pipeline, opts...) }
}

// WithMetrics records every walk outcome in m.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

func defaultWorkers() int { return runtime.GOMAXPROCS(0) }
