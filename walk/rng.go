// Package walk - RNG utilities shared by the sampler and batch runners.
//
// Goals:
//   - Determinism: same seed ⇒ identical walks across runs.
//   - A single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use StreamRNG to create independent streams per walk or per worker.
package walk

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// RNGFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func RNGFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64-style finalizer, so that neighbouring stream ids
// produce uncorrelated sources.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// StreamRNG returns the RNG for stream id under a base seed. The result
// depends only on (seed, stream), never on scheduling order, which keeps
// parallel batches reproducible.
func StreamRNG(seed int64, stream uint64) *rand.Rand {
	parent := seed
	if parent == 0 {
		parent = defaultRNGSeed
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
