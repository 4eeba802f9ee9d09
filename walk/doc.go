// Package walk defines the closed polygonal curve consumed by the knot
// pipeline and a deterministic lattice sampler that supplies such curves.
//
// A Walk is an ordered, cyclic sequence of N+1 points in 3-space with
// w[0] == w[N]. Callers own it; every pipeline stage borrows it read-only.
//
// Invariants checked by Validate:
//   - explicit closure (first point equals last),
//   - at least one edge,
//   - no zero-length edge,
//   - no two vertices coincide except the closure pair.
//
// Sampler draws closed self-avoiding walks on the body-centred cubic lattice
// (steps (±1,±1,±1)) with a closure-biased step distribution, so that batch
// runs spend little time rejecting open chains. Same seed, same walks.
//
//	s := walk.NewSampler(40)
//	w, attempts, err := s.Sample(rand.New(rand.NewSource(7)))
package walk
