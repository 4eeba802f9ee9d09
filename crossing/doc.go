// Package crossing turns plane intersections into knot-diagram crossings and
// resolves, for every under-crossing, the generator (arc) that passes over it.
//
// Classification (Classify):
//   - The depth of each edge at the intersection is interpolated linearly by
//     the fractional position along that edge. The edge with the larger depth
//     passes over; depths closer than the tolerance are ErrAmbiguousCrossing.
//   - The crossing Type is the sign of the plane cross product
//     under-direction × over-direction: positive is TypeI, otherwise TypeII.
//
// Resolution (Resolve):
//   - Every crossing contributes one under- and one over-occurrence. Sorted by
//     (Edge, Param) they form the cyclic occurrence Sequence of the walk.
//   - Under-occurrences are numbered 0..I-1 in that order. Arc k ends at
//     under-crossing k and arc k+1 (mod I) starts there.
//   - The generator of under-crossing k is the arc containing its partner
//     over-occurrence: scanning backwards (cyclically) from the over-occurrence
//     to the nearest under-occurrence j gives generator (j+1) mod I.
//
// Complexity: Classify O(C); NewSequence O(C log C); Resolve O(C) after
// sorting, for C crossings.
package crossing
