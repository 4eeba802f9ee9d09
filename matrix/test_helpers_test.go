package matrix_test

import (
	"testing"

	"github.com/katalvlaran/knotwalk/matrix"
	"github.com/stretchr/testify/require"
)

// fromRows builds a Dense from a rectangular literal and fails the test on error.
func fromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	c := 0
	if len(rows) > 0 {
		c = len(rows[0])
	}
	m, err := matrix.NewDense(len(rows), c)
	require.NoError(t, err)
	for i, r := range rows {
		require.Len(t, r, c, "ragged literal at row %d", i)
		for j, v := range r {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}
