// Package projection maps a closed 3D walk to a regular (generic) plane
// diagram.
//
// The walk is rotated about the X axis by α and then about the Y axis by β
// (defaults π/3 and π/6) and the rotated Z coordinate becomes the depth.
// The fixed, non-axis-aligned view makes accidental coincidences in the
// diagram (triple points, vertices on foreign edges) vanishingly unlikely for
// walks with distinct vertices; when one happens anyway Project reports
// ErrDegenerateProjection instead of continuing.
//
// The rotation is deterministic: projecting the same walk twice yields
// bit-identical output.
//
//	p, err := projection.New().Project(w)
//	// p.Plane[i] is the diagram point of w[i]; p.Space[i].Z its depth.
package projection
