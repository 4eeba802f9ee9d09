package alexander_test

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/katalvlaran/knotwalk/walk"
	"github.com/stretchr/testify/require"
)

// closedCurve samples f at n equally spaced parameters on [0, 2π).
func closedCurve(t *testing.T, n int, f func(s float64) r3.Vector) walk.Walk {
	t.Helper()
	pts := make([]r3.Vector, n)
	for k := range pts {
		pts[k] = f(2 * math.Pi * float64(k) / float64(n))
	}
	w, err := walk.New(pts)
	require.NoError(t, err)

	return w
}

func trefoil(t *testing.T) walk.Walk {
	return closedCurve(t, 30, func(s float64) r3.Vector {
		return r3.Vector{
			X: math.Sin(s) + 2*math.Sin(2*s),
			Y: math.Cos(s) - 2*math.Cos(2*s),
			Z: -math.Sin(3 * s),
		}
	})
}

func figureEight(t *testing.T) walk.Walk {
	return closedCurve(t, 40, func(s float64) r3.Vector {
		r := 2 + math.Cos(2*s)

		return r3.Vector{X: r * math.Cos(3*s), Y: r * math.Sin(3*s), Z: math.Sin(4 * s)}
	})
}

func wobblyCircle(t *testing.T) walk.Walk {
	return closedCurve(t, 12, func(s float64) r3.Vector {
		return r3.Vector{X: math.Cos(s), Y: math.Sin(s), Z: 0.3 * math.Sin(2*s)}
	})
}

// octahedralLoop is a planar diamond with collinear consecutive edges.
func octahedralLoop(t *testing.T) walk.Walk {
	w, err := walk.FromTriples([][3]float64{
		{0, 0, 0}, {1, 1, 1}, {2, 2, 2}, {1, 1, 3},
		{0, 0, 4}, {-1, -1, 3}, {-2, -2, 2}, {-1, -1, 1}, {0, 0, 0},
	})
	require.NoError(t, err)

	return w
}

// kinkLoop is an unknot whose diagram has exactly one crossing.
func kinkLoop(t *testing.T) walk.Walk {
	w, err := walk.FromTriples([][3]float64{
		{-1, -1, 0}, {1, 1, 0.2}, {2, 1, 0}, {2, -1, 0},
		{1, -1, 0}, {-1, 1, -0.2}, {-2, 1, 0}, {-2, -1, 0},
	})
	require.NoError(t, err)

	return w
}
