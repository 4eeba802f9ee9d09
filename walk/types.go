package walk

import "github.com/golang/geo/r3"

// DefaultEpsilon is the distance under which two vertices are considered
// coincident by Validate.
const DefaultEpsilon = 1e-12

// Walk is a closed polygon: len(w) == N+1 and w[0] == w[N].
type Walk []r3.Vector
