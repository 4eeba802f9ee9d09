// Package matrix provides the small dense linear-algebra kernel used to hold
// and evaluate Alexander presentation matrices.
//
// What is here:
//
//   - Dense: row-major float64 storage with safe At/Set (errors, not panics),
//     deep Clone, Induced submatrix extraction and a readable String dump.
//     A 0×0 Dense is legal: it is the presentation matrix of a diagram
//     without crossings.
//   - Determinant: LU factorization with partial pivoting; det of 0×0 is 1.
//   - RowSums: per-row reduction used to check presentation invariants.
//
// Set rejects NaN and ±Inf. The pivot tolerance of Determinant is configured
// through functional options (see options.go); there is no global mutable state.
//
// Complexity:
//
//   - At/Set O(1), Clone O(r·c), Induced O(r'·c'), Determinant O(n³).
//
// Example:
//
//	m, _ := matrix.NewDense(2, 2)
//	_ = m.Set(0, 0, 3)
//	_ = m.Set(1, 1, 2)
//	det, _ := matrix.Determinant(m) // 6
package matrix
