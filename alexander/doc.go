// Package alexander assembles the Alexander (Wirtinger presentation) matrix of
// a closed walk and evaluates the Alexander polynomial at a numeric t.
//
// Pipeline (Compute):
//
//	walk → projection.Project → intersect.Find → crossing.Classify
//	     → crossing.Resolve → Assemble → Polynomial
//
// Matrix rows (Assemble), for under-crossing k with generator g among I
// under-crossings:
//   - g == k or g == (k+1) mod I: M[k,k] = -1, M[k,k+1] = 1.
//   - otherwise M[k,g] = t-1 and
//     TypeI:  M[k,k] = 1,  M[k,k+1] = -t;
//     TypeII: M[k,k] = -t, M[k,k+1] = 1.
//
// The k+1 term of the last row is omitted by default; WithCyclicClosure wraps
// it into column 0 instead, which makes every row sum to zero at t = 1. The
// polynomial is the determinant of the leading (I-1)×(I-1) minor, so the last
// row never reaches it and both layouts give the same value.
//
// The Alexander polynomial is defined up to a unit ±t^m. At t = -1 the unit is
// ±1 and |Δ(-1)| is the knot determinant: 1 for the unknot, an odd integer
// greater than 1 for every knot with a nontrivial determinant. IsKnotted uses
// exactly that test.
//
// Every stage error is returned wrapped; errors.Is matches the sentinels of
// walk, projection, intersect, crossing and matrix.
package alexander
