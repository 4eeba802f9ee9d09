package intersect

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/golang/geo/r2"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/knotwalk/projection"
)

// Find returns every crossing of the diagram, ordered by (EdgeA, ParamA).
//
// Errors:
//   - ErrNilProjection.
//   - ErrOverlappingEdges (wrapped with the edge indices).
func Find(p *projection.Projection, opts ...Option) ([]Intersection, error) {
	if p == nil {
		return nil, ErrNilProjection
	}
	o := gatherOptions(opts...)
	n := p.Edges()
	rows := make([][]Intersection, n)

	if o.workers == 1 {
		for i := 0; i < n; i++ {
			r, err := scanRow(p.Plane, i, n)
			if err != nil {
				return nil, err
			}
			rows[i] = r
		}
	} else {
		var g errgroup.Group
		g.SetLimit(o.workers)
		for i := 0; i < n; i++ {
			g.Go(func() error {
				r, err := scanRow(p.Plane, i, n)
				rows[i] = r

				return err
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	var out []Intersection
	for _, r := range rows {
		out = append(out, r...)
	}
	slices.SortStableFunc(out, func(a, b Intersection) int {
		if c := cmp.Compare(a.EdgeA, b.EdgeA); c != 0 {
			return c
		}

		return cmp.Compare(a.ParamA, b.ParamA)
	})

	return out, nil
}

// scanRow tests edge i against every later non-adjacent edge.
func scanRow(pts []r2.Point, i, n int) ([]Intersection, error) {
	var out []Intersection
	a0, a1 := pts[i], pts[i+1]
	boxA := r2.RectFromPoints(a0, a1)
	for j := i + 2; j < n; j++ {
		if Adjacent(i, j, n) {
			continue
		}
		b0, b1 := pts[j], pts[j+1]
		if !boxA.Intersects(r2.RectFromPoints(b0, b1)) {
			continue
		}
		x, ok, err := Segments(a0, a1, b0, b1)
		if err != nil {
			return nil, fmt.Errorf("edges %d and %d: %w", i, j, err)
		}
		if ok {
			x.EdgeA, x.EdgeB = i, j
			out = append(out, x)
		}
	}

	return out, nil
}

// Segments intersects the open segments (a0,a1) and (b0,b1).
//
// It solves a0 + s·da = b0 + u·db with det = da × db. det == 0 means the
// lines are parallel: ok is false, and err is ErrOverlappingEdges only when
// the segments are collinear and share more than an endpoint. Otherwise ok
// reports 0 < s < 1 and 0 < u < 1. Edge indices of the result are left zero.
func Segments(a0, a1, b0, b1 r2.Point) (Intersection, bool, error) {
	da, db := a1.Sub(a0), b1.Sub(b0)
	w := b0.Sub(a0)

	det := da.Cross(db)
	if det == 0 {
		if w.Cross(da) == 0 && collinearOverlap(a0, da, b0, b1) {
			return Intersection{}, false, ErrOverlappingEdges
		}

		return Intersection{}, false, nil
	}

	s := w.Cross(db) / det
	u := w.Cross(da) / det
	if s <= 0 || s >= 1 || u <= 0 || u >= 1 {
		return Intersection{}, false, nil
	}

	return Intersection{
		Point:  a0.Add(da.Mul(s)),
		ParamA: s,
		ParamB: u,
	}, true, nil
}

// collinearOverlap reports whether [b0,b1] overlaps (a0, a0+da) in more than
// a point, measured along da.
func collinearOverlap(a0, da, b0, b1 r2.Point) bool {
	l2 := da.Dot(da)
	t0 := b0.Sub(a0).Dot(da) / l2
	t1 := b1.Sub(a0).Dot(da) / l2
	lo, hi := min(t0, t1), max(t0, t1)

	return lo < 1 && hi > 0
}
