package mirrorcurve

import (
	"fmt"
	"os"
)

// Logf is the reporting hook for recoverable enumeration failures (a trace
// that overflowed its safety cap). It defaults to stderr; replace it to route
// reports elsewhere, or set it to a no-op to silence them.
var Logf = func(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[mirrorcurve] "+format+"\n", args...)
}

// FindNextCurve scans edges in id order (all horizontal edges row-major, then
// all vertical edges row-major) and, for the first edge with any uncovered
// direction, traces a curve starting at its lowest-ordered uncovered
// direction. The scan order determines which curve is "next" and is part of
// the contract.
//
// The scan keys on coverage rather than consumption. A pair consumed only as
// the opposite of a walked pair still needs a curve of its own: a directed
// loop hemmed in by its neighbors' opposite marks would otherwise never be
// traced and its pairs would stay unwalked.
//
// Returns nil once every direction of every edge is covered. A failed trace
// is reported through Logf and the scan continues at the next uncovered
// start.
func FindNextCurve(g *Grid) *Curve {
	for id := EdgeID(0); int(id) < g.EdgeCount(); id++ {
		for {
			dirs := g.UncoveredDirections(id)
			if len(dirs) == 0 {
				break
			}
			c, err := Trace(g, id, dirs[0])
			if err != nil {
				Logf("discarding curve from edge %d direction %v: %v", id, dirs[0], err)
				continue
			}
			return c
		}
	}
	return nil
}

// FindAllCurves resets the grid's consumed bookkeeping and repeatedly calls
// FindNextCurve until the grid is exhausted, returning curves in discovery
// order. The returned curves' steps partition exactly the (edge, direction)
// pairs not pre-seeded as boundary-redundant.
func FindAllCurves(g *Grid) []*Curve {
	g.ResetConsumed()
	var curves []*Curve
	for {
		c := FindNextCurve(g)
		if c == nil {
			return curves
		}
		curves = append(curves, c)
	}
}
