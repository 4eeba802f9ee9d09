// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the kernels.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import "math"

// Numeric policy defaults.
const (
	// DefaultEpsilon is the pivot magnitude at or below which a column is
	// treated as singular by Determinant (the determinant is then exactly 0).
	DefaultEpsilon = 1e-12
)

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// WithEpsilon sets the pivot tolerance used by Determinant.
//
// Panics when eps is negative, NaN or ±Inf.
//
// AI-Hints:
//   - Presentation matrices hold small integers and (t-1), t; the default is
//     fine for |t| of order 1. Raise it only for very large |t|.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{eps: DefaultEpsilon}
}

// gatherOptions applies opts over the defaults in order; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
