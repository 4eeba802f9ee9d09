// Package matrix_test contains unit tests for the Dense storage.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/knotwalk/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(-1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseEmpty verifies that the empty presentation matrix is legal.
func TestNewDenseEmpty(t *testing.T) {
	m, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
	require.Empty(t, m.String())

	_, err = m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

// TestSetRejectsNaNInf checks the finite-value policy and that a rejected
// Set leaves the entry unchanged.
func TestSetRejectsNaNInf(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1.0))

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, orig)

	got, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, got)
}

// TestInducedAndLeadingMinor checks copy semantics and bounds of submatrices.
func TestInducedAndLeadingMinor(t *testing.T) {
	m := fromRows(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	sub, err := m.Induced([]int{0, 2}, []int{1, 2})
	require.NoError(t, err)
	require.Equal(t, "[2, 3]\n[8, 9]\n", sub.String())

	lead, err := m.LeadingMinor(2)
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[4, 5]\n", lead.String())

	empty, err := m.LeadingMinor(0)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())

	_, err = m.LeadingMinor(4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Induced([]int{3}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestEqualAndRow covers bitwise equality and row copies.
func TestEqualAndRow(t *testing.T) {
	a := fromRows(t, [][]float64{{1, -2}, {0.5, 0}})
	b := a.Clone()
	require.True(t, a.Equal(b))

	require.NoError(t, b.Set(1, 1, 1e-300))
	require.False(t, a.Equal(b))

	row, err := a.Row(0)
	require.NoError(t, err)
	require.Equal(t, []float64{1, -2}, row)
	row[0] = 42
	v, _ := a.At(0, 0)
	require.Equal(t, 1.0, v, "Row must return a copy")

	_, err = a.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
