package intersect

// DefaultWorkers runs the pair scan on the calling goroutine.
const DefaultWorkers = 1

const panicWorkersInvalid = "intersect: WithWorkers: workers must be >= 1"

// Option configures Find.
type Option func(*options)

type options struct {
	workers int
}

// WithWorkers sets the number of goroutines used for the pair scan.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

func gatherOptions(opts ...Option) options {
	o := options{workers: DefaultWorkers}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
