package mirrorcurve

// Layout maps grid coordinates to screen-space points. The rendering layer
// chooses the cell size and origin; everything in here is deterministic so a
// curve always maps to the same polyline.
type Layout struct {
	// CellSize is the side length of one grid cell in pixels.
	CellSize float64
	// OriginX, OriginY position the grid's top-left lattice point.
	OriginX, OriginY float64
	// MirrorInset, when non-zero, offsets a mirrored edge's point by this
	// distance along the travel direction, visually suggesting the bounce.
	MirrorInset float64
}

// NewLayout returns a layout with the given cell size and zero origin.
func NewLayout(cellSize float64) Layout {
	return Layout{CellSize: cellSize}
}

// EdgePoint returns the point a curve passes through on the given edge: the
// edge's midpoint, nudged along dir by MirrorInset when the edge is a mirror.
// EdgePoint is an EdgePointFunc.
func (l Layout) EdgePoint(e EdgeInfo, dir Direction) Vec2 {
	var p Vec2
	if e.Orientation == Horizontal {
		p = Vec2{
			X: l.OriginX + (float64(e.Col)+0.5)*l.CellSize,
			Y: l.OriginY + float64(e.Row)*l.CellSize,
		}
	} else {
		p = Vec2{
			X: l.OriginX + float64(e.Col)*l.CellSize,
			Y: l.OriginY + (float64(e.Row)+0.5)*l.CellSize,
		}
	}
	if e.Mirror && l.MirrorInset != 0 {
		p = p.Add(dir.Vector().Scale(l.MirrorInset))
	}
	return p
}

// EdgeEnds returns the two lattice endpoints of the edge, for drawing the
// static grid.
func (l Layout) EdgeEnds(e EdgeInfo) (Vec2, Vec2) {
	x := l.OriginX + float64(e.Col)*l.CellSize
	y := l.OriginY + float64(e.Row)*l.CellSize
	if e.Orientation == Horizontal {
		return Vec2{X: x, Y: y}, Vec2{X: x + l.CellSize, Y: y}
	}
	return Vec2{X: x, Y: y}, Vec2{X: x, Y: y + l.CellSize}
}

// DotPoints returns the centers of all cells, one decorative dot per cell.
func (l Layout) DotPoints(rows, cols int) []Vec2 {
	out := make([]Vec2, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out = append(out, Vec2{
				X: l.OriginX + (float64(c)+0.5)*l.CellSize,
				Y: l.OriginY + (float64(r)+0.5)*l.CellSize,
			})
		}
	}
	return out
}

// GridSize returns the pixel width and height of a rows×cols grid under this
// layout.
func (l Layout) GridSize(rows, cols int) (w, h float64) {
	return float64(cols) * l.CellSize, float64(rows) * l.CellSize
}
