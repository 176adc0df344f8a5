package mirrorcurve

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// PlayState is the playback state of a Player.
type PlayState uint8

const (
	StatePending   PlayState = iota // nothing in flight; next Advance starts a queued curve
	StatePlaying                    // a curve is revealing
	StateCompleted                  // the queue drained; Enqueue rearms to Pending
)

func (s PlayState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StatePlaying:
		return "playing"
	default:
		return "completed"
	}
}

// PlayerConfig configures curve playback.
type PlayerConfig struct {
	// Speed is the reveal speed in distance units per second. Values at or
	// below 0 fall back to DefaultSpeed.
	Speed float64
	// PointFunc maps curve steps to points. Required; typically
	// Layout.EdgePoint.
	PointFunc EdgePointFunc
	// Smoothing is the spline pass applied to each curve's polyline.
	Smoothing SmoothingOptions
}

// DefaultSpeed is the playback speed used when PlayerConfig.Speed is unset.
const DefaultSpeed = 240.0

// Player reveals curves progressively at constant linear speed. Curves queue
// in strict FIFO order: one plays at a time, enqueueing during playback
// defers, and two curves' progress never interleave.
//
// The player never blocks and owns no timer; it advances only when the caller
// ticks it with Advance, typically once per display frame.
type Player struct {
	grid   *Grid
	config PlayerConfig

	queue   []*Curve
	current *Curve
	points  []Vec2
	tween   *gween.Tween
	state   PlayState

	partial []Vec2 // reused emission buffer

	// OnPartial receives the partial polyline (all fully passed points
	// plus the current interpolated point) every tick while a curve plays.
	// The slice is reused between ticks; copy it to retain it.
	OnPartial func(points []Vec2)
	// OnCurveComplete fires exactly once per finished curve with its
	// finalized polyline, which the caller may retain as permanent state.
	OnCurveComplete func(c *Curve, points []Vec2)
	// OnQueueDrained fires once when the last queued curve completes.
	OnQueueDrained func()
}

// NewPlayer creates a player bound to the given grid.
func NewPlayer(g *Grid, cfg PlayerConfig) *Player {
	return &Player{grid: g, config: cfg, state: StatePending}
}

// State returns the current playback state.
func (p *Player) State() PlayState { return p.state }

// QueueLen returns the number of curves waiting behind the one in flight.
func (p *Player) QueueLen() int { return len(p.queue) }

// Playing returns the curve currently revealing, or nil.
func (p *Player) Playing() *Curve { return p.current }

// Enqueue appends a curve to the playback queue. A curve traced on a grid
// other than the player's is rejected with ErrStaleCurve and the queue is
// cleared, since mixed-grid playback would be meaningless.
func (p *Player) Enqueue(c *Curve) error {
	if c.Grid() != p.grid {
		p.Clear()
		return fmt.Errorf("%w: enqueue", ErrStaleCurve)
	}
	p.queue = append(p.queue, c)
	if p.state == StateCompleted {
		p.state = StatePending
	}
	return nil
}

// Clear atomically drops the queue and the in-flight curve and resets the
// state to Pending. No callbacks fire, so no partial visual artifact of a
// superseded curve survives.
func (p *Player) Clear() {
	p.queue = nil
	p.current = nil
	p.points = nil
	p.tween = nil
	p.partial = p.partial[:0]
	p.state = StatePending
}

// Rebind clears the player and binds it to a new grid. Called on dimension
// change, when every held curve is stale by definition.
func (p *Player) Rebind(g *Grid) {
	p.Clear()
	p.grid = g
}

// Advance ticks playback forward by dt seconds. If nothing is playing and the
// queue is non-empty, the next curve starts from Pending. While playing, the
// partial polyline is emitted; on reaching full progress the finalized
// polyline is emitted once and the next queued curve (if any) begins.
func (p *Player) Advance(dt float64) {
	if p.state != StatePlaying {
		if !p.startNext() {
			return
		}
	}

	val, finished := p.tween.Update(float32(dt))
	progress := float64(val)

	pt, idx := PointAtProgress(p.points, progress, p.current.Closed())
	p.partial = append(p.partial[:0], p.points[:idx+1]...)
	p.partial = append(p.partial, pt)
	if p.OnPartial != nil {
		p.OnPartial(p.partial)
	}

	if finished {
		p.finishCurrent()
	}
}

// startNext pops the queue head and begins playing it. Reports whether a
// curve is now in flight.
func (p *Player) startNext() bool {
	for len(p.queue) > 0 {
		c := p.queue[0]
		p.queue = p.queue[1:]

		if c.Grid() != p.grid {
			// A stale curve slipped in behind a grid swap; everything
			// queued with it is equally invalid.
			p.Clear()
			return false
		}

		points := CurvePoints(c, p.config.PointFunc, p.config.Smoothing)
		total := ArcLength(points, c.Closed())
		speed := p.config.Speed
		if speed <= 0 {
			speed = DefaultSpeed
		}

		p.current = c
		p.points = points
		p.state = StatePlaying

		if total <= 0 {
			// Degenerate polyline: nothing to reveal, complete at once.
			p.finishCurrent()
			continue
		}

		p.tween = gween.New(0, 1, float32(total/speed), ease.Linear)
		return true
	}
	return false
}

// finishCurrent emits the finalized polyline and retires the in-flight curve.
func (p *Player) finishCurrent() {
	c, points := p.current, p.points
	p.current = nil
	p.points = nil
	p.tween = nil
	p.state = StatePending

	if p.OnCurveComplete != nil {
		p.OnCurveComplete(c, points)
	}
	if len(p.queue) == 0 {
		p.state = StateCompleted
		if p.OnQueueDrained != nil {
			p.OnQueueDrained()
		}
	}
}
