package mirrorcurve

import (
	"fmt"
	"math/rand/v2"
)

// edge holds per-edge state. Neighbors are computed once at construction and
// never change; only the mirror flag and the consumed set mutate.
type edge struct {
	orientation Orientation
	row, col    int
	mirror      bool
	boundary    bool
	neighbors   [numDirections]EdgeID
	consumed    [numDirections]bool
	covered     [numDirections]bool
}

// EdgeInfo is an immutable snapshot of a single edge, handed to the rendering
// layer for static drawing of grid lines and mirrors.
type EdgeInfo struct {
	ID          EdgeID
	Orientation Orientation
	Row, Col    int
	Mirror      bool
	Boundary    bool
}

// Grid owns the edges of a rows×cols puzzle, their diagonal adjacency, their
// mirror flags, and the per-edge consumed-direction bookkeeping used during
// curve enumeration.
//
// A grid of R×C cells has (R+1)·C horizontal edges and R·(C+1) vertical
// edges. Every outer-boundary edge is a mirror and stays one for the grid's
// lifetime.
type Grid struct {
	rows, cols    int
	edges         []edge
	numHorizontal int

	// Rand, when non-nil, is the source used by Randomize. When nil the
	// shared package source is used. Tests inject a seeded source here.
	Rand *rand.Rand
}

// NewGrid builds the edge table for a rows×cols grid: neighbor maps for all
// four diagonal directions, mirror flags on every boundary edge, and the
// boundary-direction pre-seeding that keeps enumeration from starting curves
// pointing off the grid.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: grid dimensions %dx%d", ErrInvalidArgument, rows, cols)
	}

	numH := (rows + 1) * cols
	numV := rows * (cols + 1)
	g := &Grid{
		rows:          rows,
		cols:          cols,
		edges:         make([]edge, numH+numV),
		numHorizontal: numH,
	}

	for r := 0; r <= rows; r++ {
		for c := 0; c < cols; c++ {
			e := &g.edges[g.HorizontalEdge(r, c)]
			e.orientation = Horizontal
			e.row, e.col = r, c
			e.boundary = r == 0 || r == rows
			e.mirror = e.boundary
			// Horizontal edges connect to vertical edges only. Off-grid
			// neighbors come back as InvalidEdge.
			e.neighbors[NW] = g.VerticalEdge(r-1, c)
			e.neighbors[NE] = g.VerticalEdge(r-1, c+1)
			e.neighbors[SW] = g.VerticalEdge(r, c)
			e.neighbors[SE] = g.VerticalEdge(r, c+1)
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c <= cols; c++ {
			e := &g.edges[g.VerticalEdge(r, c)]
			e.orientation = Vertical
			e.row, e.col = r, c
			e.boundary = c == 0 || c == cols
			e.mirror = e.boundary
			// Vertical edges connect to horizontal edges only.
			e.neighbors[NW] = g.HorizontalEdge(r, c-1)
			e.neighbors[NE] = g.HorizontalEdge(r, c)
			e.neighbors[SW] = g.HorizontalEdge(r+1, c-1)
			e.neighbors[SE] = g.HorizontalEdge(r+1, c)
		}
	}

	g.seedBoundary()
	return g, nil
}

// Rows returns the number of cell rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of cell columns.
func (g *Grid) Cols() int { return g.cols }

// EdgeCount returns the total number of edges.
func (g *Grid) EdgeCount() int { return len(g.edges) }

// HorizontalEdge returns the id of the horizontal edge in edge-row row
// (0..Rows) and column col (0..Cols-1), or InvalidEdge if out of range.
func (g *Grid) HorizontalEdge(row, col int) EdgeID {
	if row < 0 || row > g.rows || col < 0 || col >= g.cols {
		return InvalidEdge
	}
	return EdgeID(row*g.cols + col)
}

// VerticalEdge returns the id of the vertical edge in row row (0..Rows-1) and
// edge-column col (0..Cols), or InvalidEdge if out of range.
func (g *Grid) VerticalEdge(row, col int) EdgeID {
	if row < 0 || row >= g.rows || col < 0 || col > g.cols {
		return InvalidEdge
	}
	return EdgeID(g.numHorizontal + row*(g.cols+1) + col)
}

// EdgeInfo returns a snapshot of the edge with the given id.
func (g *Grid) EdgeInfo(id EdgeID) (EdgeInfo, error) {
	e, err := g.edge(id)
	if err != nil {
		return EdgeInfo{}, err
	}
	return EdgeInfo{
		ID:          id,
		Orientation: e.orientation,
		Row:         e.row,
		Col:         e.col,
		Mirror:      e.mirror,
		Boundary:    e.boundary,
	}, nil
}

// Snapshot returns a snapshot of every edge, in id order. The rendering layer
// uses this for static drawing; mutating the returned slice has no effect on
// the grid.
func (g *Grid) Snapshot() []EdgeInfo {
	out := make([]EdgeInfo, len(g.edges))
	for i := range g.edges {
		out[i], _ = g.EdgeInfo(EdgeID(i))
	}
	return out
}

// IsMirror reports whether the edge is currently a mirror. Unknown ids report
// false.
func (g *Grid) IsMirror(id EdgeID) bool {
	e, err := g.edge(id)
	return err == nil && e.mirror
}

// IsBoundary reports whether the edge lies on the outer boundary. Unknown ids
// report false.
func (g *Grid) IsBoundary(id EdgeID) bool {
	e, err := g.edge(id)
	return err == nil && e.boundary
}

// ToggleMirror sets the edge's mirror flag. Boundary edges are immutable
// mirrors; toggling one is rejected with ErrInvalidArgument.
func (g *Grid) ToggleMirror(id EdgeID, mirror bool) error {
	e, err := g.edge(id)
	if err != nil {
		return err
	}
	if e.boundary {
		return fmt.Errorf("%w: edge %d is on the boundary", ErrInvalidArgument, id)
	}
	e.mirror = mirror
	return nil
}

// Randomize flips each non-boundary edge's mirror flag with probability p,
// independently. Boundary edges are untouched. p outside [0, 1] is rejected
// with no mutation applied.
func (g *Grid) Randomize(p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%w: probability %v", ErrInvalidArgument, p)
	}
	for i := range g.edges {
		e := &g.edges[i]
		if e.boundary {
			continue
		}
		if g.randFloat() < p {
			e.mirror = !e.mirror
		}
	}
	return nil
}

func (g *Grid) randFloat() float64 {
	if g.Rand != nil {
		return g.Rand.Float64()
	}
	return rand.Float64()
}

// Reset clears every non-boundary mirror and resets the consumed bookkeeping,
// returning the grid to its freshly constructed state.
func (g *Grid) Reset() {
	for i := range g.edges {
		e := &g.edges[i]
		if !e.boundary {
			e.mirror = false
		}
	}
	g.ResetConsumed()
}

// Reflect returns the direction a traveler moving in incoming leaves the edge
// with. Non-mirror edges pass the traveler straight through. A mirror's map
// depends only on its orientation: horizontal mirrors flip the vertical
// component (NW↔SW, NE↔SE), vertical mirrors flip the horizontal component
// (NW↔NE, SW↔SE).
func (g *Grid) Reflect(id EdgeID, incoming Direction) (Direction, error) {
	e, err := g.edge(id)
	if err != nil {
		return incoming, err
	}
	if !incoming.valid() {
		return incoming, fmt.Errorf("%w: direction %v", ErrInvalidArgument, incoming)
	}
	if !e.mirror {
		return incoming, nil
	}
	if e.orientation == Horizontal {
		switch incoming {
		case NW:
			return SW, nil
		case NE:
			return SE, nil
		case SW:
			return NW, nil
		default:
			return NE, nil
		}
	}
	switch incoming {
	case NW:
		return NE, nil
	case NE:
		return NW, nil
	case SW:
		return SE, nil
	default:
		return SW, nil
	}
}

// Neighbor returns the id of the edge adjacent to id in direction d.
// Stepping outside the grid is reported as ErrGridExit, the terminal
// condition a traversal uses to recognize it has left the grid.
func (g *Grid) Neighbor(id EdgeID, d Direction) (EdgeID, error) {
	e, err := g.edge(id)
	if err != nil {
		return InvalidEdge, err
	}
	if !d.valid() {
		return InvalidEdge, fmt.Errorf("%w: direction %v", ErrInvalidArgument, d)
	}
	n := e.neighbors[d]
	if n == InvalidEdge {
		return InvalidEdge, fmt.Errorf("%w: edge %d direction %v", ErrGridExit, id, d)
	}
	return n, nil
}

// MarkConsumed marks (id, d) as walked by a traversal and blocks its
// geometric opposite in the same step, so a pass-through uses the edge up
// from both sides of its axis at once. Only d itself is recorded as covered;
// see UncoveredDirections for why the two notions differ.
func (g *Grid) MarkConsumed(id EdgeID, d Direction) error {
	e, err := g.edge(id)
	if err != nil {
		return err
	}
	if !d.valid() {
		return fmt.Errorf("%w: direction %v", ErrInvalidArgument, d)
	}
	e.consumed[d] = true
	e.consumed[d.Opposite()] = true
	e.covered[d] = true
	return nil
}

// IsConsumed reports whether (id, d) has been used by a traversal or was
// pre-seeded as boundary-redundant.
func (g *Grid) IsConsumed(id EdgeID, d Direction) (bool, error) {
	e, err := g.edge(id)
	if err != nil {
		return false, err
	}
	if !d.valid() {
		return false, fmt.Errorf("%w: direction %v", ErrInvalidArgument, d)
	}
	return e.consumed[d], nil
}

// UnconsumedDirections returns the edge's unused directions in enumeration
// order (NW, NE, SW, SE). Unknown ids return nil.
func (g *Grid) UnconsumedDirections(id EdgeID) []Direction {
	e, err := g.edge(id)
	if err != nil {
		return nil
	}
	var out []Direction
	for d := Direction(0); d < numDirections; d++ {
		if !e.consumed[d] {
			out = append(out, d)
		}
	}
	return out
}

// UncoveredDirections returns the edge's directions that no traversal has
// walked, in enumeration order (NW, NE, SW, SE). Boundary pre-seeded
// directions count as covered. Unknown ids return nil.
//
// Covered is stricter than consumed: MarkConsumed blocks the opposite
// direction but covers only the direction actually walked, so a pair blocked
// by its neighbors' opposite marks remains a valid enumeration start until
// some curve steps it. Scanning on coverage is what keeps every directed
// loop reachable.
func (g *Grid) UncoveredDirections(id EdgeID) []Direction {
	e, err := g.edge(id)
	if err != nil {
		return nil
	}
	var out []Direction
	for d := Direction(0); d < numDirections; d++ {
		if !e.covered[d] {
			out = append(out, d)
		}
	}
	return out
}

// ResetConsumed clears all consumed and covered bookkeeping and re-applies
// the boundary pre-seeding. Call it whenever mirrors change, since existing
// curves are no longer valid.
func (g *Grid) ResetConsumed() {
	for i := range g.edges {
		g.edges[i].consumed = [numDirections]bool{}
		g.edges[i].covered = [numDirections]bool{}
	}
	g.seedBoundary()
}

// seedBoundary marks each boundary edge's two outward directions consumed and
// covered. These are exactly the directions whose neighbor lies off the grid,
// which is implied by the edge's forced mirror placement, so they are derived
// from position rather than stored.
func (g *Grid) seedBoundary() {
	for i := range g.edges {
		e := &g.edges[i]
		if !e.boundary {
			continue
		}
		var seeds [2]Direction
		if e.orientation == Horizontal {
			if e.row == 0 {
				seeds = [2]Direction{NW, NE}
			} else {
				seeds = [2]Direction{SW, SE}
			}
		} else {
			if e.col == 0 {
				seeds = [2]Direction{NW, SW}
			} else {
				seeds = [2]Direction{NE, SE}
			}
		}
		for _, d := range seeds {
			e.consumed[d] = true
			e.covered[d] = true
		}
	}
}

func (g *Grid) edge(id EdgeID) (*edge, error) {
	if id < 0 || int(id) >= len(g.edges) {
		return nil, fmt.Errorf("%w: edge id %d", ErrInvalidArgument, id)
	}
	return &g.edges[id], nil
}
