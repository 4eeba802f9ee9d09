package montecarlo

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/golang/glog"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/knotwalk/alexander"
	"github.com/katalvlaran/knotwalk/walk"
)

// crossingSigFigs is the HDR histogram precision; crossing counts are small
// integers and are recorded exactly at this precision.
const crossingSigFigs = 3

// Runner runs batches. It is immutable after NewRunner and safe for
// concurrent use.
type Runner struct {
	sampler  *walk.Sampler
	workers  int
	seed     int64
	t        float64
	eps      float64
	pipeline []alexander.Option
	metrics  *Metrics
}

// NewRunner returns a Runner with defaults: walks of DefaultLength, one worker
// per GOMAXPROCS, DefaultSeed, t = DefaultT.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		sampler: walk.NewSampler(DefaultLength),
		workers: defaultWorkers(),
		seed:    DefaultSeed,
		t:       DefaultT,
		eps:     alexander.DefaultKnotTolerance,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(r)
		}
	}

	return r
}

// Run processes walks closed walks and reduces them into a Report.
//
// Errors:
//   - ErrNilRunner, ErrBadWalkCount.
//   - ctx.Err() when the context is cancelled before the run completes.
func (r *Runner) Run(ctx context.Context, walks int) (*Report, error) {
	if r == nil {
		return nil, ErrNilRunner
	}
	if walks < 0 {
		return nil, fmt.Errorf("%d: %w", walks, ErrBadWalkCount)
	}

	start := time.Now()
	id := uuid.New()
	glog.Infof("[montecarlo %s] %d walks of length %d, seed %d, %d workers",
		id, walks, r.sampler.Length(), r.seed, r.workers)

	samples := make([]Sample, walks)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i := 0; i < walks; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			samples[i] = r.one(i)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rep := r.reduce(id, samples)
	rep.Elapsed = time.Since(start)
	glog.Infof("[montecarlo %s] done in %v: %d knotted, %d unknotted, %d failed",
		id, rep.Elapsed, rep.Knotted, rep.Unknotted, rep.Failed)

	return rep, nil
}

// one samples and evaluates walk i on its own RNG stream.
func (r *Runner) one(i int) Sample {
	s := Sample{Index: i}

	w, attempts, err := r.sampler.Sample(walk.StreamRNG(r.seed, uint64(i)))
	s.Attempts = attempts
	if err != nil {
		s.Err = err
		glog.Warningf("walk %d: sample: %v", i, err)

		return s
	}

	res, err := alexander.Compute(w, -1, r.pipeline...)
	if err != nil {
		s.Err = err
		glog.Warningf("walk %d: %v", i, err)

		return s
	}
	s.Crossings = len(res.Crossings)
	s.Determinant = int(math.Round(math.Abs(res.Value)))
	s.Knotted = res.Knotted(r.eps)
	s.Value = res.Value
	if r.t != -1 {
		if s.Value, err = res.Evaluate(r.t, r.pipeline...); err != nil {
			s.Err = err
			glog.Warningf("walk %d: evaluate at %g: %v", i, r.t, err)

			return s
		}
	}
	if glog.V(1) {
		glog.Infof("walk %d: %d attempts, %d crossings, Δ(%g) = %g, determinant %d, knotted %v",
			i, attempts, s.Crossings, r.t, s.Value, s.Determinant, s.Knotted)
	}

	return s
}

// reduce folds samples in walk order.
func (r *Runner) reduce(id uuid.UUID, samples []Sample) *Report {
	maxCrossings := int64(r.sampler.Length()) * int64(r.sampler.Length())
	rep := &Report{
		ID:           id,
		Seed:         r.seed,
		Length:       r.sampler.Length(),
		T:            r.t,
		Walks:        len(samples),
		Crossings:    hdrhistogram.New(0, max(maxCrossings, 1), crossingSigFigs),
		Determinants: make(map[int]int),
		Samples:      samples,
	}
	for _, s := range samples {
		rep.Attempts += s.Attempts
		r.metrics.observe(s)
		if s.Err != nil {
			rep.Failed++
			continue
		}
		if s.Knotted {
			rep.Knotted++
		} else {
			rep.Unknotted++
		}
		if err := rep.Crossings.RecordValue(int64(s.Crossings)); err != nil {
			_ = rep.Crossings.RecordValue(rep.Crossings.HighestTrackableValue())
		}
		rep.Determinants[s.Determinant]++
	}

	return rep
}
