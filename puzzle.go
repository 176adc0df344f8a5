package mirrorcurve

// Puzzle is the command surface the environment drives: dimension changes,
// mirror edits, randomization, reset, and curve production, plus the tick
// entry point for playback. It owns a Grid and a Player and keeps them
// consistent: every grid mutation invalidates outstanding curves, so each
// mutating command synchronously resets the consumed bookkeeping and clears
// playback before returning. No consumer ever observes playback referencing
// a stale grid.
//
// Puzzle is agnostic to how commands are triggered; the examples wire them to
// mouse and keyboard, but any caller works.
type Puzzle struct {
	grid   *Grid
	player *Player
}

// NewPuzzle creates a puzzle with the given dimensions and playback config.
func NewPuzzle(rows, cols int, cfg PlayerConfig) (*Puzzle, error) {
	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	return &Puzzle{grid: g, player: NewPlayer(g, cfg)}, nil
}

// Grid returns the current grid.
func (p *Puzzle) Grid() *Grid { return p.grid }

// Player returns the playback player. Attach emission callbacks here.
func (p *Puzzle) Player() *Player { return p.player }

// Snapshot returns the current grid's edge snapshot for static drawing.
func (p *Puzzle) Snapshot() []EdgeInfo { return p.grid.Snapshot() }

// SetDimensions replaces the grid wholesale. All curves traced on the old
// grid become stale; playback is rebound to the new grid and cleared.
func (p *Puzzle) SetDimensions(rows, cols int) error {
	g, err := NewGrid(rows, cols)
	if err != nil {
		return err
	}
	p.grid = g
	p.player.Rebind(g)
	return nil
}

// ToggleMirror sets an edge's mirror flag and invalidates outstanding curves.
func (p *Puzzle) ToggleMirror(id EdgeID, mirror bool) error {
	if err := p.grid.ToggleMirror(id, mirror); err != nil {
		return err
	}
	p.invalidate()
	return nil
}

// Randomize flips each interior mirror with probability prob and invalidates
// outstanding curves.
func (p *Puzzle) Randomize(prob float64) error {
	if err := p.grid.Randomize(prob); err != nil {
		return err
	}
	p.invalidate()
	return nil
}

// Reset clears all interior mirrors, the consumed bookkeeping, and playback.
func (p *Puzzle) Reset() {
	p.grid.Reset()
	p.player.Clear()
}

// NextCurve enumerates the next unused curve and queues it for playback.
// Returns nil when the grid is exhausted.
func (p *Puzzle) NextCurve() *Curve {
	c := FindNextCurve(p.grid)
	if c == nil {
		return nil
	}
	p.player.Enqueue(c)
	return c
}

// PlayAll enumerates every curve from a fresh consumed state and queues them
// all, in discovery order. Playback of anything already in flight is cleared
// first, since the reset invalidates it.
func (p *Puzzle) PlayAll() []*Curve {
	p.player.Clear()
	curves := FindAllCurves(p.grid)
	for _, c := range curves {
		p.player.Enqueue(c)
	}
	return curves
}

// Advance ticks playback by dt seconds. Call it from the frame loop.
func (p *Puzzle) Advance(dt float64) {
	p.player.Advance(dt)
}

// invalidate discards all traversal state after a mirror mutation: existing
// curves no longer describe the grid, so the consumed bookkeeping resets and
// playback clears synchronously.
func (p *Puzzle) invalidate() {
	p.grid.ResetConsumed()
	p.player.Clear()
}
