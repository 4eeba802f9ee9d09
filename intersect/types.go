package intersect

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Intersection is one crossing of edges (EdgeA, EdgeA+1) and (EdgeB, EdgeB+1)
// with EdgeA < EdgeB. ParamA and ParamB are the fractional positions of Point
// along each edge, both in the open interval (0, 1).
type Intersection struct {
	EdgeA, EdgeB   int
	Point          r2.Point
	ParamA, ParamB float64
}

func (x Intersection) String() string {
	return fmt.Sprintf("(%d@%.4g × %d@%.4g) at (%.6g, %.6g)", x.EdgeA, x.ParamA, x.EdgeB, x.ParamB, x.Point.X, x.Point.Y)
}

// Adjacent reports whether edges i and j of an N-edge closed polygon share an
// endpoint (or are the same edge).
func Adjacent(i, j, n int) bool {
	d := i - j
	if d < 0 {
		d = -d
	}

	return d <= 1 || d == n-1
}
