package crossing

import (
	"cmp"
	"fmt"
	"slices"
)

// NewSequence lays out the two occurrences of every crossing in walk order.
// Ties on (Edge, Param) fall back to crossing index, so the order is total.
func NewSequence(cs []Crossing) Sequence {
	seq := make(Sequence, 0, 2*len(cs))
	for i, c := range cs {
		seq = append(seq,
			Occurrence{Edge: c.Over, Param: c.OverParam, Crossing: i, Over: true},
			Occurrence{Edge: c.Under, Param: c.UnderParam, Crossing: i, Over: false},
		)
	}
	slices.SortFunc(seq, func(a, b Occurrence) int {
		if c := cmp.Compare(a.Edge, b.Edge); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Param, b.Param); c != 0 {
			return c
		}

		return cmp.Compare(a.Crossing, b.Crossing)
	})

	return seq
}

// Unders returns the crossing index of each under-occurrence, in walk order.
func (s Sequence) Unders() []int {
	var out []int
	for _, o := range s {
		if !o.Over {
			out = append(out, o.Crossing)
		}
	}

	return out
}

// ResolveIndices returns the generator of every under-crossing of seq,
// indexed by under-crossing number k. seq is taken as already ordered; it
// need not come from geometry.
//
// Errors: ErrUnresolvedGenerator when a crossing lacks exactly one over and
// one under occurrence, or when the sequence has overs but no unders.
func ResolveIndices(seq Sequence) ([]int, error) {
	overAt := make(map[int]int)  // crossing → position of its over-occurrence
	underOf := make(map[int]int) // crossing → under number k
	underPos := -1               // last under position, seeds the cyclic scan
	count := 0
	for pos, o := range seq {
		if o.Over {
			if _, dup := overAt[o.Crossing]; dup {
				return nil, fmt.Errorf("crossing %d: second over-occurrence: %w", o.Crossing, ErrUnresolvedGenerator)
			}
			overAt[o.Crossing] = pos
			continue
		}
		if _, dup := underOf[o.Crossing]; dup {
			return nil, fmt.Errorf("crossing %d: second under-occurrence: %w", o.Crossing, ErrUnresolvedGenerator)
		}
		underOf[o.Crossing] = count
		underPos = pos
		count++
	}
	if count == 0 {
		if len(overAt) > 0 {
			return nil, fmt.Errorf("%d over-occurrences without unders: %w", len(overAt), ErrUnresolvedGenerator)
		}

		return nil, nil
	}
	for c := range overAt {
		if _, ok := underOf[c]; !ok {
			return nil, fmt.Errorf("crossing %d: no under-occurrence: %w", c, ErrUnresolvedGenerator)
		}
	}

	// prev[pos]: under number of the nearest under strictly before pos,
	// cyclically.
	prev := make([]int, len(seq))
	last := underOf[seq[underPos].Crossing]
	for pos, o := range seq {
		prev[pos] = last
		if !o.Over {
			last = underOf[o.Crossing]
		}
	}

	gens := make([]int, count)
	for _, o := range seq {
		if o.Over {
			continue
		}
		pos, ok := overAt[o.Crossing]
		if !ok {
			return nil, fmt.Errorf("crossing %d: no over-occurrence: %w", o.Crossing, ErrUnresolvedGenerator)
		}
		gens[underOf[o.Crossing]] = (prev[pos] + 1) % count
	}

	return gens, nil
}

// Resolve orders the crossings along the walk and returns one Underpass per
// under-crossing, in walk order.
func Resolve(cs []Crossing) ([]Underpass, error) {
	seq := NewSequence(cs)
	gens, err := ResolveIndices(seq)
	if err != nil {
		return nil, err
	}

	ups := make([]Underpass, len(gens))
	for k, c := range seq.Unders() {
		ups[k] = Underpass{Crossing: c, Type: cs[c].Type, Generator: gens[k]}
	}

	return ups, nil
}
