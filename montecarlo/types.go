package montecarlo

import (
	"fmt"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/google/uuid"
)

// Sample is the outcome of one walk.
type Sample struct {
	Index     int
	Attempts  int // sampler attempts spent on this walk
	Crossings int
	Value     float64 // Δ(t); zero when Err != nil
	// Determinant is round(|Δ(-1)|); Knotted is decided from it whatever t is.
	Determinant int
	Knotted     bool
	Err         error
}

// Report is the reduction of one run.
type Report struct {
	ID     uuid.UUID
	Seed   int64
	Length int
	T      float64

	Walks     int
	Knotted   int
	Unknotted int
	Failed    int
	Attempts  int

	// Crossings counts crossings per successful walk.
	Crossings *hdrhistogram.Histogram
	// Determinants maps the knot determinant round(|Δ(-1)|) to the number of walks with that value.
	Determinants map[int]int
	// Samples is index-aligned with the walk number.
	Samples []Sample

	Elapsed time.Duration
}

// KnotFraction is Knotted / (Knotted + Unknotted), or 0 for an empty run.
func (r *Report) KnotFraction() float64 {
	ok := r.Knotted + r.Unknotted
	if ok == 0 {
		return 0
	}

	return float64(r.Knotted) / float64(ok)
}

func (r *Report) String() string {
	return fmt.Sprintf("run %s: %d walks of length %d, %d knotted, %d unknotted, %d failed (%.2f%% knotted)",
		r.ID, r.Walks, r.Length, r.Knotted, r.Unknotted, r.Failed, 100*r.KnotFraction())
}
