package alexander

import (
	"fmt"
	"math"

	"github.com/katalvlaran/knotwalk/crossing"
	"github.com/katalvlaran/knotwalk/matrix"
)

// Assemble builds the I×I presentation matrix for ups (one entry per
// under-crossing, in walk order) evaluated at t. I == 0 yields a 0×0 matrix.
//
// Errors:
//   - ErrNonFiniteT.
//   - ErrBadGenerator (wrapped with the row).
//
// Complexity: O(I²) for the zeroed buffer, O(I) for the entries.
func Assemble(ups []crossing.Underpass, t float64, opts ...Option) (*matrix.Dense, error) {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return nil, ErrNonFiniteT
	}
	o := gatherOptions(opts...)
	n := len(ups)

	data := make([]float64, n*n)
	// next adds v at column k+1 of row k, honouring the closure policy.
	next := func(k int, v float64) {
		if k+1 < n {
			data[k*n+k+1] += v
		} else if o.cyclic {
			data[k*n] += v
		}
	}

	for k, up := range ups {
		g := up.Generator
		if g < 0 || g >= n {
			return nil, fmt.Errorf("row %d: generator %d of %d: %w", k, g, n, ErrBadGenerator)
		}
		if g == k || g == (k+1)%n {
			data[k*n+k] += -1
			next(k, 1)
			continue
		}
		data[k*n+g] += t - 1
		switch up.Type {
		case crossing.TypeI:
			data[k*n+k] += 1
			next(k, -t)
		default:
			data[k*n+k] += -t
			next(k, 1)
		}
	}

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v := data[i*n+j]; v != 0 {
				if err = m.Set(i, j, v); err != nil {
					return nil, err
				}
			}
		}
	}

	return m, nil
}

// Polynomial evaluates Δ as the determinant of the leading (I-1)×(I-1)
// minor of m. For I <= 1 the value is 1.
func Polynomial(m *matrix.Dense) (float64, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return 0, err
	}
	if m.Rows() <= 1 {
		return 1, nil
	}
	minor, err := m.LeadingMinor(m.Rows() - 1)
	if err != nil {
		return 0, err
	}

	return matrix.Determinant(minor)
}

// IsKnotted reports whether an Alexander value evaluated at t = -1 differs
// from a unit by more than eps.
func IsKnotted(delta, eps float64) bool {
	return math.Abs(math.Abs(delta)-1) > eps
}
