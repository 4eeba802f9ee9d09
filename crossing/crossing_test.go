package crossing_test

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/katalvlaran/knotwalk/crossing"
	"github.com/katalvlaran/knotwalk/intersect"
	"github.com/katalvlaran/knotwalk/projection"
	"github.com/katalvlaran/knotwalk/walk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bowtie returns a self-crossing quadrilateral diagram with the given vertex
// depths; edges 0 and 2 cross at (1,1).
func bowtie(z0, z1, z2, z3 float64) *projection.Projection {
	xy := []r2.Point{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 2}}
	z := []float64{z0, z1, z2, z3}
	p := &projection.Projection{}
	for i := 0; i <= len(xy); i++ {
		q := xy[i%len(xy)]
		p.Plane = append(p.Plane, q)
		p.Space = append(p.Space, r3.Vector{X: q.X, Y: q.Y, Z: z[i%len(z)]})
	}

	return p
}

// TestClassify_OverUnderAndType checks depth comparison and that mirroring
// the depths flips the crossing type.
func TestClassify_OverUnderAndType(t *testing.T) {
	p := bowtie(1, 1, 0, 0)
	xs, err := intersect.Find(p)
	require.NoError(t, err)
	require.Len(t, xs, 1)

	cs, err := crossing.Classify(p, xs)
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, 0, cs[0].Over)
	assert.Equal(t, 2, cs[0].Under)
	assert.InDelta(t, 0.5, cs[0].OverParam, 1e-12)
	assert.Equal(t, crossing.TypeII, cs[0].Type)

	mirror := bowtie(0, 0, 1, 1)
	cs, err = crossing.Classify(mirror, xs)
	require.NoError(t, err)
	assert.Equal(t, 2, cs[0].Over)
	assert.Equal(t, 0, cs[0].Under)
	assert.Equal(t, crossing.TypeI, cs[0].Type)
}

// TestClassify_InterpolatesAlongEdge uses sloped edges whose endpoint depths
// alone would give the wrong answer.
func TestClassify_InterpolatesAlongEdge(t *testing.T) {
	// Edge 0 climbs from depth -3 to 5 (1 at the crossing); edge 2 is flat
	// at 0.5. Edge 0 starts below edge 2 yet is over at the crossing.
	p := bowtie(-3, 5, 0.5, 0.5)
	xs, err := intersect.Find(p)
	require.NoError(t, err)
	cs, err := crossing.Classify(p, xs)
	require.NoError(t, err)
	assert.Equal(t, 0, cs[0].Over)
}

// TestClassify_Ambiguous reports equal depths and honours WithTolerance.
func TestClassify_Ambiguous(t *testing.T) {
	p := bowtie(0, 0, 0, 0)
	xs, err := intersect.Find(p)
	require.NoError(t, err)
	_, err = crossing.Classify(p, xs)
	require.ErrorIs(t, err, crossing.ErrAmbiguousCrossing)

	p = bowtie(1e-6, 1e-6, 0, 0)
	_, err = crossing.Classify(p, xs)
	require.NoError(t, err)
	_, err = crossing.Classify(p, xs, crossing.WithTolerance(1e-3))
	require.ErrorIs(t, err, crossing.ErrAmbiguousCrossing)

	_, err = crossing.Classify(nil, xs)
	require.ErrorIs(t, err, crossing.ErrNilProjection)

	assert.Panics(t, func() { crossing.WithTolerance(-1) })
}

// TestNewSequence_Order checks (Edge, Param) ordering and the two
// occurrences per crossing.
func TestNewSequence_Order(t *testing.T) {
	cs := []crossing.Crossing{
		{Over: 4, OverParam: 0.2, Under: 1, UnderParam: 0.9},
		{Over: 1, OverParam: 0.3, Under: 6, UnderParam: 0.1},
	}
	seq := crossing.NewSequence(cs)
	require.Len(t, seq, 4)

	want := []crossing.Occurrence{
		{Edge: 1, Param: 0.3, Crossing: 1, Over: true},
		{Edge: 1, Param: 0.9, Crossing: 0, Over: false},
		{Edge: 4, Param: 0.2, Crossing: 0, Over: true},
		{Edge: 6, Param: 0.1, Crossing: 1, Over: false},
	}
	assert.Equal(t, want, []crossing.Occurrence(seq))
	assert.Equal(t, []int{0, 1}, seq.Unders())
}

// parseSeq reads "O0 U1 ..." into a synthetic Sequence; the edge is the
// token position.
func parseSeq(t *testing.T, s string) crossing.Sequence {
	t.Helper()
	var seq crossing.Sequence
	for pos, tok := range strings.Fields(s) {
		c, err := strconv.Atoi(tok[1:])
		require.NoError(t, err)
		seq = append(seq, crossing.Occurrence{Edge: pos, Param: 0.5, Crossing: c, Over: tok[0] == 'O'})
	}

	return seq
}

// TestResolveIndices_Table covers standard diagrams and malformed input.
func TestResolveIndices_Table(t *testing.T) {
	cases := []struct {
		name string
		seq  string
		want []int
	}{
		{"empty", "", nil},
		{"kink", "U0 O0", []int{0}},
		{"kink over first", "O0 U0", []int{0}},
		{"trefoil", "O0 U1 O2 U0 O1 U2", []int{2, 0, 1}},
		{"figure eight", "O0 U1 O2 U3 O1 U0 O3 U2", []int{2, 3, 0, 1}},
		{"two kinks", "U0 O0 U1 O1", []int{1, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := crossing.ResolveIndices(parseSeq(t, tc.seq))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	for _, bad := range []string{"O0", "O0 O1 U1", "U0 U0 O0", "O0 O0 U0", "U0"} {
		_, err := crossing.ResolveIndices(parseSeq(t, bad))
		require.ErrorIs(t, err, crossing.ErrUnresolvedGenerator, bad)
	}
}

// TestResolveIndices_OverLiesOnGenerator checks on random sequences that the
// partner over-occurrence of under-crossing k lies on arc Generator(k), i.e.
// strictly between under-crossings g-1 and g. In particular Generator(k) == k
// exactly when the partner lies on arc k.
func TestResolveIndices_OverLiesOnGenerator(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 300; trial++ {
		c := 1 + rng.Intn(8)
		var seq crossing.Sequence
		for i := 0; i < c; i++ {
			seq = append(seq, crossing.Occurrence{Crossing: i, Over: true}, crossing.Occurrence{Crossing: i})
		}
		rng.Shuffle(len(seq), func(a, b int) { seq[a], seq[b] = seq[b], seq[a] })
		for pos := range seq {
			seq[pos].Edge = pos
		}

		gens, err := crossing.ResolveIndices(seq)
		require.NoError(t, err)
		require.Len(t, gens, c)

		n := len(seq)
		underPos := make([]int, 0, c)
		overPos := make(map[int]int)
		for pos, o := range seq {
			if o.Over {
				overPos[o.Crossing] = pos
			} else {
				underPos = append(underPos, pos)
			}
		}
		for k, g := range gens {
			start := underPos[(g-1+c)%c]
			end := underPos[g]
			span := (end - start + n) % n
			if span == 0 {
				span = n
			}
			op := overPos[seq[underPos[k]].Crossing]
			d := (op - start + n) % n
			assert.True(t, d > 0 && d < span, "trial %d: k=%d g=%d", trial, k, g)
		}
	}
}

// TestResolve_Loop runs the geometric stages on a single-kink loop in either
// direction: one TypeII under-crossing that is its own generator.
func TestResolve_Loop(t *testing.T) {
	pts := [][3]float64{
		{-1, -1, 0}, {1, 1, 0.2}, {2, 1, 0}, {2, -1, 0},
		{1, -1, 0}, {-1, 1, -0.2}, {-2, 1, 0}, {-2, -1, 0},
	}
	w, err := walk.FromTriples(pts)
	require.NoError(t, err)

	for _, ww := range []walk.Walk{w, w.Reverse()} {
		p, err := projection.New().Project(ww)
		require.NoError(t, err)
		xs, err := intersect.Find(p)
		require.NoError(t, err)
		cs, err := crossing.Classify(p, xs)
		require.NoError(t, err)
		ups, err := crossing.Resolve(cs)
		require.NoError(t, err)
		require.Len(t, ups, 1)
		assert.Equal(t, crossing.TypeII, ups[0].Type)
		assert.Equal(t, 0, ups[0].Generator)
	}
}

// TestType_String covers the enum names.
func TestType_String(t *testing.T) {
	assert.Equal(t, "I", crossing.TypeI.String())
	assert.Equal(t, "II", crossing.TypeII.String())
	assert.Equal(t, "Type(7)", crossing.Type(7).String())
}
