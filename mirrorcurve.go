package mirrorcurve

import (
	"errors"
	"fmt"
	"math"
)

// Vec2 is a 2D point or vector. The coordinate system has its origin at the
// top-left, with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Lerp linearly interpolates between v and o.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
	}
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	dx := o.X - v.X
	dy := o.Y - v.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Orientation distinguishes the two kinds of grid edges.
type Orientation uint8

const (
	Horizontal Orientation = iota // edge runs left-right between two lattice points
	Vertical                      // edge runs top-down between two lattice points
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Direction is one of the four diagonal travel directions. It identifies both
// which neighbor an edge connects to and the velocity of a traveler passing
// through or reflecting off an edge.
//
// The declaration order (NW, NE, SW, SE) is the enumeration order used when
// picking the next unconsumed start, so it is part of the observable contract.
type Direction uint8

const (
	NW Direction = iota // up-left
	NE                  // up-right
	SW                  // down-left
	SE                  // down-right

	numDirections = 4
)

// Opposite returns the geometrically opposite direction (NW↔SE, NE↔SW).
func (d Direction) Opposite() Direction {
	switch d {
	case NW:
		return SE
	case NE:
		return SW
	case SW:
		return NE
	default:
		return NW
	}
}

// Vector returns the unit vector pointing along d.
func (d Direction) Vector() Vec2 {
	const s = math.Sqrt2 / 2
	switch d {
	case NW:
		return Vec2{X: -s, Y: -s}
	case NE:
		return Vec2{X: s, Y: -s}
	case SW:
		return Vec2{X: -s, Y: s}
	default:
		return Vec2{X: s, Y: s}
	}
}

func (d Direction) String() string {
	switch d {
	case NW:
		return "NW"
	case NE:
		return "NE"
	case SW:
		return "SW"
	case SE:
		return "SE"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// valid reports whether d is one of the four declared directions.
func (d Direction) valid() bool {
	return d < numDirections
}

// EdgeID identifies an edge within a Grid. IDs are dense: horizontal edges
// come first in row-major order, then vertical edges in row-major order.
// An EdgeID is only meaningful for the Grid that produced it.
type EdgeID int

// InvalidEdge is the zero-information edge id, used where no edge applies.
const InvalidEdge EdgeID = -1

var (
	// ErrGridExit reports that a traversal stepped off the grid. It is a
	// recognized terminal condition, not a failure: Trace converts it into
	// a curve with LeftGrid set.
	ErrGridExit = errors.New("mirrorcurve: traversal left the grid")

	// ErrTraceOverflow reports that a traversal failed to close or exit
	// within the safety cap. The curve build has failed and its result
	// must be discarded.
	ErrTraceOverflow = errors.New("mirrorcurve: trace exceeded step cap")

	// ErrInvalidArgument reports an out-of-range argument: a bad edge id,
	// an unknown direction, a probability outside [0, 1], or non-positive
	// grid dimensions. The operation applied no mutation.
	ErrInvalidArgument = errors.New("mirrorcurve: invalid argument")

	// ErrStaleCurve reports a curve that references a grid other than the
	// one it is being used with (for example after a dimension change).
	ErrStaleCurve = errors.New("mirrorcurve: curve references a stale grid")
)
