package mirrorcurve

import (
	"math"
	"testing"
)

func approx(t *testing.T, got, want, tol float64, msg string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s: got %v, want %v", msg, got, want)
	}
}

func TestArcLength(t *testing.T) {
	square := []Vec2{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	approx(t, ArcLength(square, false), 12, 1e-12, "open square")
	approx(t, ArcLength(square, true), 16, 1e-12, "closed square")
	approx(t, ArcLength(nil, false), 0, 0, "empty")
	approx(t, ArcLength([]Vec2{{1, 1}}, true), 0, 0, "single point")
}

func TestPointAtProgressEndpoints(t *testing.T) {
	line := []Vec2{{0, 0}, {10, 0}, {10, 5}}

	p, idx := PointAtProgress(line, 0, false)
	if p != line[0] || idx != 0 {
		t.Errorf("progress 0: got (%v, %d), want (%v, 0)", p, idx, line[0])
	}
	p, _ = PointAtProgress(line, 1, false)
	approx(t, p.X, 10, 1e-9, "progress 1 X")
	approx(t, p.Y, 5, 1e-9, "progress 1 Y")

	p, _ = PointAtProgress(line, -0.5, false)
	if p != line[0] {
		t.Errorf("negative progress: got %v, want first point", p)
	}
	p, _ = PointAtProgress(line, 2, false)
	approx(t, p.Y, 5, 1e-9, "progress clamped above 1")
}

func TestPointAtProgressMidpoints(t *testing.T) {
	line := []Vec2{{0, 0}, {10, 0}, {10, 10}}

	// Half of the 20-unit path is the far end of the first segment.
	p, idx := PointAtProgress(line, 0.5, false)
	approx(t, p.X, 10, 1e-9, "halfway X")
	approx(t, p.Y, 0, 1e-9, "halfway Y")
	if idx != 0 {
		t.Errorf("halfway segment index = %d, want 0", idx)
	}

	p, idx = PointAtProgress(line, 0.75, false)
	approx(t, p.X, 10, 1e-9, "3/4 X")
	approx(t, p.Y, 5, 1e-9, "3/4 Y")
	if idx != 1 {
		t.Errorf("3/4 segment index = %d, want 1", idx)
	}
}

func TestPointAtProgressClosedWrapsToStart(t *testing.T) {
	square := []Vec2{{0, 0}, {4, 0}, {4, 4}, {0, 4}}

	p, _ := PointAtProgress(square, 1, true)
	approx(t, p.X, 0, 1e-9, "wrap X")
	approx(t, p.Y, 0, 1e-9, "wrap Y")

	// 7/8 of the 16-unit perimeter is halfway down the closing segment.
	p, idx := PointAtProgress(square, 0.875, true)
	approx(t, p.X, 0, 1e-9, "7/8 X")
	approx(t, p.Y, 2, 1e-9, "7/8 Y")
	if idx != 3 {
		t.Errorf("7/8 segment index = %d, want 3", idx)
	}
}

func TestPointAtProgressDegenerate(t *testing.T) {
	if p, idx := PointAtProgress(nil, 0.5, false); p != (Vec2{}) || idx != 0 {
		t.Errorf("empty: got (%v, %d)", p, idx)
	}
	single := []Vec2{{3, 4}}
	if p, _ := PointAtProgress(single, 0.7, false); p != single[0] {
		t.Errorf("single point: got %v", p)
	}
	// All-coincident points have zero length; sampling returns the first.
	flat := []Vec2{{1, 1}, {1, 1}, {1, 1}}
	if p, _ := PointAtProgress(flat, 0.5, true); p != flat[0] {
		t.Errorf("zero-length polyline: got %v", p)
	}
}

func TestCurvePointsMapsSteps(t *testing.T) {
	g := mustGrid(t, 3, 3)
	c, err := Trace(g, g.HorizontalEdge(0, 0), SW)
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}

	layout := NewLayout(10)
	points := CurvePoints(c, layout.EdgePoint, SmoothingOptions{})
	if len(points) != c.Len() {
		t.Fatalf("got %d points for %d steps", len(points), c.Len())
	}
	// Closed curve: polyline closes on itself.
	if points[0] != points[len(points)-1] {
		t.Errorf("closed curve polyline open: first %v, last %v", points[0], points[len(points)-1])
	}
	// Start step is H(0,0): midpoint (5, 0).
	if points[0] != (Vec2{X: 5, Y: 0}) {
		t.Errorf("start point = %v, want (5, 0)", points[0])
	}
}

func TestCurvePointsSmoothed(t *testing.T) {
	g := mustGrid(t, 3, 3)
	c, err := Trace(g, g.HorizontalEdge(0, 0), SW)
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}

	layout := NewLayout(10)
	opts := SmoothingOptions{Enabled: true, Tension: 0, Subdivisions: 4}
	points := CurvePoints(c, layout.EdgePoint, opts)

	// 12 cyclic segments at 4 subdivisions, plus exact closure.
	if want := 12*4 + 1; len(points) != want {
		t.Fatalf("got %d smoothed points, want %d", len(points), want)
	}
	if points[0] != points[len(points)-1] {
		t.Errorf("smoothed loop not closed exactly")
	}
}
