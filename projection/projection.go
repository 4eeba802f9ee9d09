package projection

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"

	"github.com/katalvlaran/knotwalk/walk"
)

// Projection is the diagram of a walk, index-aligned with it.
//   - Space[i] is walk[i] in view coordinates; Space[i].Z is its depth
//     (larger Z is closer to the viewer).
//   - Plane[i] is (Space[i].X, Space[i].Y).
type Projection struct {
	Space []r3.Vector
	Plane []r2.Point
}

// Edges returns the number of diagram edges.
func (p *Projection) Edges() int {
	if len(p.Plane) == 0 {
		return 0
	}

	return len(p.Plane) - 1
}

// Depth returns the depth of edge i at fractional position s ∈ [0,1].
func (p *Projection) Depth(i int, s float64) float64 {
	a, b := p.Space[i].Z, p.Space[i+1].Z

	return a + s*(b-a)
}

// Direction returns the plane direction vector of edge i.
func (p *Projection) Direction(i int) r2.Point {
	return p.Plane[i+1].Sub(p.Plane[i])
}

// Projector rotates walks into a fixed generic view.
type Projector struct {
	opts Options
	rot  [3][3]float64
}

// New returns a Projector. It holds no mutable state and is safe for
// concurrent use.
func New(opts ...Option) *Projector {
	o := gatherOptions(opts...)

	return &Projector{opts: o, rot: rotation(o.alpha, o.beta)}
}

// rotation returns Ry(beta)·Rx(alpha).
func rotation(alpha, beta float64) [3][3]float64 {
	ca, sa := math.Cos(alpha), math.Sin(alpha)
	cb, sb := math.Cos(beta), math.Sin(beta)

	return [3][3]float64{
		{cb, sb * sa, sb * ca},
		{0, ca, -sa},
		{-sb, cb * sa, cb * ca},
	}
}

func (pr *Projector) apply(v r3.Vector) r3.Vector {
	m := &pr.rot

	return r3.Vector{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Project rotates w and drops the depth coordinate.
//
// Errors:
//   - ErrEmptyWalk for a walk without edges.
//   - ErrDegenerateProjection (wrapped with the offending indices) when the
//     diagram is not regular.
//
// Complexity: O(N) for the rotation, O(N²) for the genericity checks.
func (pr *Projector) Project(w walk.Walk) (*Projection, error) {
	if w.Edges() < 1 {
		return nil, ErrEmptyWalk
	}
	p := &Projection{
		Space: make([]r3.Vector, len(w)),
		Plane: make([]r2.Point, len(w)),
	}
	for i, v := range w {
		s := pr.apply(v)
		p.Space[i] = s
		p.Plane[i] = r2.Point{X: s.X, Y: s.Y}
	}
	if pr.opts.checks {
		if err := checkGeneric(p, pr.opts.eps); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// checkGeneric rejects collapsed edges, coincident vertices and vertices
// lying on the interior of a non-incident edge.
func checkGeneric(p *Projection, eps float64) error {
	n := p.Edges()
	for i := 0; i < n; i++ {
		if p.Direction(i).Norm() <= eps {
			return fmt.Errorf("edge %d collapses: %w", i, ErrDegenerateProjection)
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if p.Plane[i].Sub(p.Plane[j]).Norm() <= eps {
				return fmt.Errorf("vertices %d and %d coincide: %w", i, j, ErrDegenerateProjection)
			}
		}
	}
	for v := 0; v < n; v++ {
		for e := 0; e < n; e++ {
			if e == v || (e+1)%n == v {
				continue
			}
			if onSegment(p.Plane[v], p.Plane[e], p.Plane[e+1], eps) {
				return fmt.Errorf("vertex %d lies on edge %d: %w", v, e, ErrDegenerateProjection)
			}
		}
	}

	return nil
}

// onSegment reports whether q is within eps of the open segment (a, b).
func onSegment(q, a, b r2.Point, eps float64) bool {
	d := b.Sub(a)
	l2 := d.Dot(d)
	s := q.Sub(a).Dot(d) / l2
	if s <= 0 || s >= 1 {
		return false
	}

	return math.Abs(d.Cross(q.Sub(a)))/math.Sqrt(l2) <= eps
}
