// Package montecarlo estimates how often closed lattice walks are knotted.
//
// A Runner draws walks from a walk.Sampler, runs each through
// alexander.Compute at t = -1 (by default) and reduces the outcomes into a
// Report: knotted / unknotted / failed counts, a crossing-count histogram and
// the distribution of knot determinants |Δ(-1)|.
//
// Concurrency: walks are processed by a bounded errgroup pool (WithWorkers).
// Walk i always draws from the RNG stream derived from (seed, i), and the
// reduction runs in walk order, so a Report depends only on the seed, the
// sampler and the walk count, never on scheduling.
//
// Per-walk pipeline errors (degenerate projection, ambiguous crossing, sampler
// exhaustion) are counted as failures and logged; only context cancellation
// aborts a run.
//
// Metrics (optional, WithMetrics) are exported through Prometheus:
//
//	knotwalk_walks_total{outcome="knotted"|"unknotted"|"failed"}
//	knotwalk_crossings (histogram of crossings per walk)
package montecarlo
