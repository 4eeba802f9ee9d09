package crossing

import (
	"fmt"
	"math"

	"github.com/katalvlaran/knotwalk/intersect"
	"github.com/katalvlaran/knotwalk/projection"
)

// Classify decides over/under and the Type of every intersection. The result
// is index-aligned with xs.
//
// Errors:
//   - ErrNilProjection.
//   - ErrAmbiguousCrossing (wrapped with the crossing index and depth gap).
func Classify(p *projection.Projection, xs []intersect.Intersection, opts ...Option) ([]Crossing, error) {
	if p == nil {
		return nil, ErrNilProjection
	}
	o := gatherOptions(opts...)

	out := make([]Crossing, len(xs))
	for i, x := range xs {
		za := p.Depth(x.EdgeA, x.ParamA)
		zb := p.Depth(x.EdgeB, x.ParamB)
		if gap := math.Abs(za - zb); gap < o.tol || math.IsNaN(gap) {
			return nil, fmt.Errorf("crossing %d (%s): depth gap %g: %w", i, x, gap, ErrAmbiguousCrossing)
		}

		c := Crossing{Intersection: x}
		if za > zb {
			c.Over, c.OverParam = x.EdgeA, x.ParamA
			c.Under, c.UnderParam = x.EdgeB, x.ParamB
		} else {
			c.Over, c.OverParam = x.EdgeB, x.ParamB
			c.Under, c.UnderParam = x.EdgeA, x.ParamA
		}
		if p.Direction(c.Under).Cross(p.Direction(c.Over)) > 0 {
			c.Type = TypeI
		} else {
			c.Type = TypeII
		}
		out[i] = c
	}

	return out, nil
}
