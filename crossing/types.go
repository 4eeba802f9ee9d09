package crossing

import (
	"fmt"

	"github.com/katalvlaran/knotwalk/intersect"
)

// Type is the handedness class of a crossing.
type Type uint8

const (
	// TypeI: under-direction × over-direction > 0.
	TypeI Type = iota
	// TypeII: every other crossing.
	TypeII
)

func (t Type) String() string {
	switch t {
	case TypeI:
		return "I"
	case TypeII:
		return "II"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// Crossing is a classified intersection. Over and Under are edge indices;
// OverParam and UnderParam the fractional positions on those edges.
type Crossing struct {
	intersect.Intersection

	Over, Under           int
	OverParam, UnderParam float64
	Type                  Type
}

func (c Crossing) String() string {
	return fmt.Sprintf("%d over %d at (%.6g, %.6g), type %s", c.Over, c.Under, c.Point.X, c.Point.Y, c.Type)
}

// Occurrence is one passage of the walk through a crossing.
type Occurrence struct {
	Edge     int
	Param    float64
	Crossing int  // index into the crossing list
	Over     bool // the walk passes over here
}

// Sequence is the cyclic, walk-ordered list of occurrences: sorted by
// (Edge, Param), two entries per crossing.
type Sequence []Occurrence

// Underpass is the resolved data of one under-crossing, indexed by its
// position k in walk order.
type Underpass struct {
	Crossing  int
	Type      Type
	Generator int
}
