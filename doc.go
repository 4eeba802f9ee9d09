// Package knotwalk decides whether a closed polygonal walk in 3-space is
// knotted, by way of its Alexander polynomial.
//
// 🚀 What is knotwalk?
//
//	A small pipeline of single-purpose packages:
//		• walk:       closed walks, validation, a BCC lattice walk sampler
//		• projection: rotation onto a generic plane diagram (+ depth)
//		• intersect:  pairwise edge crossings, ordered along the walk
//		• crossing:   over/under, handedness, generator resolution
//		• matrix:     dense matrices and a pivoted determinant
//		• alexander:  the Alexander matrix, Δ(t) and the knot test
//		• montecarlo: reproducible parallel batches with metrics
//
// ✨ Guarantees
//
//   - Deterministic: the same walk always yields a bit-identical matrix.
//   - Read-only inputs: no stage mutates the caller's walk.
//   - Typed failures: every stage reports sentinel errors (errors.Is).
//
// Quick example (a trefoil sampled as a (2,3) torus curve):
//
//	r, err := alexander.Compute(w, -1)
//	// |r.Value| == 3, r.Knotted(alexander.DefaultKnotTolerance) == true
//
// The knotwalk command (cmd/knotwalk) runs batches ("run") and analyses
// single walks read from text files ("eval").
//
//	go install github.com/katalvlaran/knotwalk/cmd/knotwalk@latest
package knotwalk
