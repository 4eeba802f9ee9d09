package walk

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// New copies points into a Walk, appending the closure point when the input
// is open, and validates the result with DefaultEpsilon.
func New(points []r3.Vector) (Walk, error) {
	w := make(Walk, len(points), len(points)+1)
	copy(w, points)
	if len(w) > 0 && w[0] != w[len(w)-1] {
		w = append(w, w[0])
	}
	if err := Validate(w, DefaultEpsilon); err != nil {
		return nil, err
	}

	return w, nil
}

// FromTriples builds a Walk from (x, y, z) triples; see New.
func FromTriples(xyz [][3]float64) (Walk, error) {
	pts := make([]r3.Vector, len(xyz))
	for i, p := range xyz {
		pts[i] = r3.Vector{X: p[0], Y: p[1], Z: p[2]}
	}

	return New(pts)
}

// Validate checks the Walk invariants. Vertices closer than eps count as
// coincident. The check is O(N²).
func Validate(w Walk, eps float64) error {
	if len(w) < 2 {
		return fmt.Errorf("%d points: %w", len(w), ErrTooShort)
	}
	for i, p := range w {
		if !finite(p) {
			return fmt.Errorf("point %d: %w", i, ErrNonFinite)
		}
	}
	n := len(w) - 1
	if w[0] != w[n] {
		return ErrNotClosed
	}
	for i := 0; i < n; i++ {
		if w[i].Sub(w[i+1]).Norm() <= eps {
			return fmt.Errorf("edge %d: %w", i, ErrZeroLengthEdge)
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if w[i].Sub(w[j]).Norm() <= eps {
				return fmt.Errorf("vertices %d and %d: %w", i, j, ErrCoincidentVertices)
			}
		}
	}

	return nil
}

// Edges returns the number of edges N.
func (w Walk) Edges() int {
	if len(w) == 0 {
		return 0
	}

	return len(w) - 1
}

// Edge returns the endpoints of edge i, i.e. (w[i], w[i+1]).
func (w Walk) Edge(i int) (r3.Vector, r3.Vector) {
	return w[i], w[i+1]
}

// Reverse returns a new Walk traversed in the opposite direction. The
// closure point is kept, so Reverse(w)[0] == w[N].
func (w Walk) Reverse() Walk {
	out := make(Walk, len(w))
	for i, p := range w {
		out[len(w)-1-i] = p
	}

	return out
}

// Clone returns an independent copy.
func (w Walk) Clone() Walk {
	out := make(Walk, len(w))
	copy(out, w)

	return out
}

func finite(p r3.Vector) bool {
	for _, c := range [...]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}

	return true
}
