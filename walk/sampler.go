package walk

import (
	"fmt"
	"math/rand"

	"github.com/golang/geo/r3"
)

// lattice is a BCC lattice site.
type lattice [3]int

// bccSteps lists the eight body-centred cubic unit steps (±1,±1,±1).
var bccSteps = [8]lattice{
	{-1, -1, -1}, {-1, -1, 1}, {-1, 1, -1}, {-1, 1, 1},
	{1, -1, -1}, {1, -1, 1}, {1, 1, -1}, {1, 1, 1},
}

// Sampler draws closed self-avoiding walks of a fixed number of edges on the
// BCC lattice, starting at the origin.
//
// Algorithm (one attempt):
//  1. From the origin take length-1 steps. With n steps remaining at site x,
//     step d gets weight ∏_k (n - d_k·x_k) / (2n), clamped at 0, which
//     biases the chain back towards the origin.
//  2. Immediate reversal and already visited sites get weight 0; if every
//     weight is 0 the attempt is abandoned.
//  3. The attempt succeeds when the last site is a lattice neighbour of the
//     origin; the closing edge and the closure point are appended.
//
// A Sampler holds no mutable state and may be shared across goroutines; the
// *rand.Rand passed to Sample may not.
type Sampler struct {
	length      int
	maxAttempts int
}

// NewSampler returns a sampler for closed walks with the given number of edges.
func NewSampler(length int, opts ...SamplerOption) *Sampler {
	s := &Sampler{length: length, maxAttempts: DefaultMaxAttempts}
	for _, fn := range opts {
		if fn != nil {
			fn(s)
		}
	}

	return s
}

// Length returns the number of edges of sampled walks.
func (s *Sampler) Length() int { return s.length }

// Sample draws one closed walk. It returns the walk and the number of
// attempts it took.
//
// Errors:
//   - ErrBadLength if the sampler length is below MinSamplerLength.
//   - ErrSamplerExhausted if no attempt closed within the attempt budget.
func (s *Sampler) Sample(rng *rand.Rand) (Walk, int, error) {
	if s.length < MinSamplerLength {
		return nil, 0, fmt.Errorf("length %d: %w", s.length, ErrBadLength)
	}
	if rng == nil {
		rng = RNGFromSeed(0)
	}
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		if sites, ok := s.attempt(rng); ok {
			return toWalk(sites), attempt, nil
		}
	}

	return nil, s.maxAttempts, fmt.Errorf("%d attempts: %w", s.maxAttempts, ErrSamplerExhausted)
}

// attempt grows one chain of length sites; ok reports closure.
func (s *Sampler) attempt(rng *rand.Rand) ([]lattice, bool) {
	var (
		node    lattice
		prev    lattice
		hasPrev bool
		weights [len(bccSteps)]float64
	)
	sites := make([]lattice, 1, s.length)
	seen := map[lattice]struct{}{node: {}}

	for i := 1; i < s.length; i++ {
		n := float64(s.length - i)
		total := 0.0
		for d, step := range bccSteps {
			w := 1.0
			for k := 0; k < 3; k++ {
				w *= (n - float64(step[k]*node[k])) / (2 * n)
				if w < 0 {
					w = 0
				}
			}
			next := lattice{node[0] + step[0], node[1] + step[1], node[2] + step[2]}
			if _, ok := seen[next]; ok || (hasPrev && step == negate(prev)) {
				w = 0
			}
			weights[d] = w
			total += w
		}
		if total <= 0 {
			return nil, false
		}

		step := bccSteps[pick(rng, weights[:], total)]
		node = lattice{node[0] + step[0], node[1] + step[1], node[2] + step[2]}
		seen[node] = struct{}{}
		sites = append(sites, node)
		prev, hasPrev = step, true
	}

	for k := 0; k < 3; k++ {
		if node[k] != 1 && node[k] != -1 {
			return nil, false
		}
	}

	return sites, true
}

// pick draws an index with probability weights[i]/total.
func pick(rng *rand.Rand, weights []float64, total float64) int {
	r := rng.Float64() * total
	last := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		last = i
		if r < w {
			return i
		}
		r -= w
	}

	return last
}

func negate(l lattice) lattice { return lattice{-l[0], -l[1], -l[2]} }

func toWalk(sites []lattice) Walk {
	w := make(Walk, len(sites)+1)
	for i, s := range sites {
		w[i] = r3.Vector{X: float64(s[0]), Y: float64(s[1]), Z: float64(s[2])}
	}
	w[len(sites)] = w[0]

	return w
}
