package mirrorcurve

import "fmt"

// Step is one element of a curve: the edge a traveler occupies and the
// direction it leaves that edge with (after reflection).
type Step struct {
	Edge EdgeID
	Dir  Direction
}

// Curve is one complete traversal from a start (edge, direction) to closure
// or grid exit. A curve is immutable once built. Exactly one of Closed or
// LeftGrid holds for every curve Trace returns.
type Curve struct {
	grid     *Grid
	steps    []Step
	closed   bool
	leftGrid bool
	exit     Step
}

// Steps returns the ordered (edge, direction) steps, beginning with the start
// pair. For a closed curve the final step repeats the start, so the step
// sequence maps to a point sequence whose first and last points coincide.
// The returned slice must not be modified.
func (c *Curve) Steps() []Step { return c.steps }

// Len returns the number of steps, including the repeated closing step of a
// closed curve.
func (c *Curve) Len() int { return len(c.steps) }

// Start returns the (edge, direction) pair the traversal began with.
func (c *Curve) Start() Step { return c.steps[0] }

// Closed reports whether the traveler returned to its exact starting edge and
// direction.
func (c *Curve) Closed() bool { return c.closed }

// LeftGrid reports whether the traversal terminated by stepping off the grid.
func (c *Curve) LeftGrid() bool { return c.leftGrid }

// Exit returns the edge and direction at which the traversal left the grid.
// Only meaningful when LeftGrid reports true.
func (c *Curve) Exit() (EdgeID, Direction) { return c.exit.Edge, c.exit.Dir }

// Grid returns the grid the curve was traced on. Consumers that hold curves
// across grid replacement compare this against the current grid to detect
// staleness.
func (c *Curve) Grid() *Grid { return c.grid }

// traceCap returns the safety cap on traversal length. A legal curve visits
// each edge at most twice (once per diagonal axis), so the cap only trips on
// a modeling bug, which is reported as ErrTraceOverflow rather than looping
// forever.
func traceCap(g *Grid) int {
	return 8*g.EdgeCount() + 16
}

// Trace performs the reflection walk from (start, dir) and returns the
// resulting curve. The start pair and every visited (edge, direction) pair is
// marked consumed on the grid, opposite directions included, as the walk
// proceeds.
func Trace(g *Grid, start EdgeID, dir Direction) (*Curve, error) {
	if _, err := g.edge(start); err != nil {
		return nil, err
	}
	if !dir.valid() {
		return nil, fmt.Errorf("%w: direction %v", ErrInvalidArgument, dir)
	}

	c := &Curve{
		grid:  g,
		steps: []Step{{Edge: start, Dir: dir}},
	}
	g.MarkConsumed(start, dir)

	cur, cd := start, dir
	for i := 0; i < traceCap(g); i++ {
		next, err := g.Neighbor(cur, cd)
		if err != nil {
			// Stepping off the grid ends the curve as open. Any other
			// error would mean a broken neighbor table.
			c.leftGrid = true
			c.exit = Step{Edge: cur, Dir: cd}
			return c, nil
		}

		out, err := g.Reflect(next, cd)
		if err != nil {
			return nil, fmt.Errorf("reflect at edge %d: %w", next, err)
		}

		c.steps = append(c.steps, Step{Edge: next, Dir: out})
		g.MarkConsumed(next, out)

		if len(c.steps) > 3 && next == start && out == dir {
			c.closed = true
			return c, nil
		}
		cur, cd = next, out
	}

	return nil, fmt.Errorf("%w: start edge %d direction %v", ErrTraceOverflow, start, dir)
}
