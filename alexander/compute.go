package alexander

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/knotwalk/crossing"
	"github.com/katalvlaran/knotwalk/intersect"
	"github.com/katalvlaran/knotwalk/matrix"
	"github.com/katalvlaran/knotwalk/projection"
	"github.com/katalvlaran/knotwalk/walk"
)

// Result holds every intermediate of one pipeline run. It owns its data.
type Result struct {
	Projection  *projection.Projection
	Crossings   []crossing.Crossing
	Underpasses []crossing.Underpass
	Matrix      *matrix.Dense
	T           float64
	Value       float64 // Δ(T)
}

// Size returns I, the number of under-crossings (the matrix order).
func (r *Result) Size() int { return len(r.Underpasses) }

// Knotted applies IsKnotted to the value. Only meaningful for T == -1.
func (r *Result) Knotted(eps float64) bool { return IsKnotted(r.Value, eps) }

// Evaluate reassembles the matrix from r's underpasses at t and returns Δ(t).
// opts should carry the closure policy r was computed with.
func (r *Result) Evaluate(t float64, opts ...Option) (float64, error) {
	m, err := Assemble(r.Underpasses, t, opts...)
	if err != nil {
		return 0, err
	}

	return Polynomial(m)
}

// Compute runs the full pipeline on w at t. w is only read.
//
// Errors are those of the stages, wrapped with the stage name:
// walk.Err*, projection.ErrDegenerateProjection (also carried by coincident
// vertices and zero-length edges), intersect.ErrOverlappingEdges,
// crossing.ErrAmbiguousCrossing, crossing.ErrUnresolvedGenerator.
func Compute(w walk.Walk, t float64, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	if err := walk.Validate(w, walk.DefaultEpsilon); err != nil {
		if errors.Is(err, walk.ErrCoincidentVertices) || errors.Is(err, walk.ErrZeroLengthEdge) {
			return nil, fmt.Errorf("alexander: walk: %w: %w", projection.ErrDegenerateProjection, err)
		}
		return nil, fmt.Errorf("alexander: walk: %w", err)
	}
	p, err := o.projector.Project(w)
	if err != nil {
		return nil, fmt.Errorf("alexander: project: %w", err)
	}
	xs, err := intersect.Find(p, intersect.WithWorkers(o.workers))
	if err != nil {
		return nil, fmt.Errorf("alexander: intersect: %w", err)
	}
	cs, err := crossing.Classify(p, xs, crossing.WithTolerance(o.depthTol))
	if err != nil {
		return nil, fmt.Errorf("alexander: classify: %w", err)
	}
	ups, err := crossing.Resolve(cs)
	if err != nil {
		return nil, fmt.Errorf("alexander: resolve: %w", err)
	}
	m, err := Assemble(ups, t, opts...)
	if err != nil {
		return nil, fmt.Errorf("alexander: assemble: %w", err)
	}
	v, err := Polynomial(m)
	if err != nil {
		return nil, fmt.Errorf("alexander: polynomial: %w", err)
	}

	return &Result{
		Projection:  p,
		Crossings:   cs,
		Underpasses: ups,
		Matrix:      m,
		T:           t,
		Value:       v,
	}, nil
}
