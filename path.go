package mirrorcurve

// EdgePointFunc maps a curve step to a 2D point. The rendering layer supplies
// this; Layout.EdgePoint is the usual implementation (edge midpoint, nudged
// toward the travel direction on mirrors).
type EdgePointFunc func(e EdgeInfo, dir Direction) Vec2

// SmoothingOptions controls the optional spline pass applied by CurvePoints.
// The zero value disables smoothing.
type SmoothingOptions struct {
	// Enabled turns the spline pass on.
	Enabled bool
	// Tension is the spline tension in [0, 1]. 0 is Catmull-Rom.
	Tension float64
	// Subdivisions is the number of samples per segment. Values below 1
	// fall back to DefaultSubdivisions.
	Subdivisions int
}

// DefaultSubdivisions is the per-segment sample count used when
// SmoothingOptions.Subdivisions is unset.
const DefaultSubdivisions = 8

// CurvePoints converts a curve into a spatial polyline by mapping each step
// through at, optionally smoothing the result. For a closed curve the final
// step repeats the start, so the polyline's first and last points coincide
// and survive smoothing coincident.
func CurvePoints(c *Curve, at EdgePointFunc, opts SmoothingOptions) []Vec2 {
	steps := c.Steps()
	points := make([]Vec2, 0, len(steps))
	for _, s := range steps {
		info, err := c.grid.EdgeInfo(s.Edge)
		if err != nil {
			continue
		}
		points = append(points, at(info, s.Dir))
	}
	if opts.Enabled {
		sub := opts.Subdivisions
		if sub < 1 {
			sub = DefaultSubdivisions
		}
		points = Smooth(points, opts.Tension, sub)
	}
	return points
}

// ArcLength sums the Euclidean lengths of the polyline's segments. When
// closed, the wraparound segment from the last point back to the first is
// included.
func ArcLength(points []Vec2, closed bool) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += points[i-1].Dist(points[i])
	}
	if closed && len(points) > 1 {
		total += points[len(points)-1].Dist(points[0])
	}
	return total
}

// PointAtProgress samples the polyline at a distance of progress times its
// total arc length, linearly interpolating within the segment the target
// distance falls in. It returns the sampled point and the index of the last
// polyline vertex fully passed, so callers can build a partial polyline of
// points[:index+1] plus the sampled point.
//
// For closed polylines the wraparound segment is part of the walk, so
// progress 1 lands back on the first point. Progress at or below 0, or fewer
// than 2 points, returns the first point.
func PointAtProgress(points []Vec2, progress float64, closed bool) (Vec2, int) {
	if len(points) == 0 {
		return Vec2{}, 0
	}
	if len(points) < 2 || progress <= 0 {
		return points[0], 0
	}

	total := ArcLength(points, closed)
	if total <= 0 {
		return points[0], 0
	}
	if progress > 1 {
		progress = 1
	}
	target := progress * total

	segments := len(points) - 1
	if closed {
		segments = len(points)
	}

	var walked float64
	for i := 0; i < segments; i++ {
		a := points[i]
		b := points[(i+1)%len(points)]
		seg := a.Dist(b)
		if seg > 0 && walked+seg >= target {
			t := (target - walked) / seg
			return a.Lerp(b, t), i
		}
		walked += seg
	}
	// Accumulated rounding can leave the target a hair past the walk.
	if closed {
		return points[0], segments - 1
	}
	return points[len(points)-1], segments - 1
}
