// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used on presentation
// matrices: determinant by pivoted LU elimination and row reductions.
//
// Notes:
//   - All kernels validate through validators.go and wrap failures with an
//     operation tag via matrixErrorf.
//   - Inputs are never mutated; elimination runs on a private copy.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for reductions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opDeterminant = "Determinant"
	opRowSums     = "RowSums"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Determinant computes det(m) by Gaussian elimination with partial pivoting.
//
// Implementation:
//   - Stage 1: validate m (not nil, square); det of 0×0 is 1.
//   - Stage 2: copy m into a private flat buffer.
//   - Stage 3: for each column pick the row with the largest |pivot|, swap
//     (flipping the sign), eliminate below, accumulate the diagonal product.
//
// Behavior highlights:
//   - A pivot with |p| <= eps (WithEpsilon, DefaultEpsilon) means the matrix
//     is singular: the result is exactly 0 with a nil error.
//   - Deterministic: fixed column order, ties broken by the lowest row index.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Determinant(m *Dense, opts ...Option) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	o := gatherOptions(opts...)

	n := m.Rows()
	if n == 0 {
		return 1, nil
	}

	a := make([]float64, len(m.data))
	copy(a, m.data)

	det := 1.0
	var col, row, k, p int
	var best, v, f float64
	for col = 0; col < n; col++ {
		// Partial pivoting: largest magnitude in column, lowest row on ties.
		p = col
		best = math.Abs(a[col*n+col])
		for row = col + 1; row < n; row++ {
			if v = math.Abs(a[row*n+col]); v > best {
				best, p = v, row
			}
		}
		if best <= o.eps {
			return 0, nil
		}
		if p != col {
			for k = 0; k < n; k++ {
				a[col*n+k], a[p*n+k] = a[p*n+k], a[col*n+k]
			}
			det = -det
		}
		det *= a[col*n+col]

		for row = col + 1; row < n; row++ {
			f = a[row*n+col] / a[col*n+col]
			if f == 0 {
				continue
			}
			for k = col; k < n; k++ {
				a[row*n+k] -= f * a[col*n+k]
			}
		}
	}

	return det, nil
}

// RowSums returns the vector of row sums.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func RowSums(m *Dense) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	out := make([]float64, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		sum := ZeroSum
		for j = 0; j < m.c; j++ {
			sum += m.data[i*m.c+j]
		}
		out[i] = sum
	}

	return out, nil
}
