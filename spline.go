package mirrorcurve

// closeEpsilon is the distance under which the first and last input points
// are treated as the same point, marking the sequence cyclic.
const closeEpsilon = 1e-9

// Smooth interpolates a point sequence with a tension-controlled cubic
// Hermite spline, emitting subdivisions samples per input segment (uniform in
// parameter t, not in arc length). Tension 0 reproduces the classic
// Catmull-Rom curve; tension 1 degenerates to straight segments between the
// input points.
//
// A sequence whose first and last points coincide is treated as cyclic:
// tangents wrap around, and the output ends with an exact copy of the first
// output point so the loop closes bit-exactly. Open sequences use clamped
// neighbors at the ends. Inputs with fewer than 2 points, or subdivisions
// below 1, are returned unchanged.
func Smooth(points []Vec2, tension float64, subdivisions int) []Vec2 {
	if len(points) < 2 || subdivisions < 1 {
		return points
	}

	closed := points[0].Dist(points[len(points)-1]) < closeEpsilon
	pts := points
	if closed {
		// Drop the duplicated closing point; it is re-appended exactly
		// after interpolation.
		pts = points[:len(points)-1]
		if len(pts) < 2 {
			return points
		}
	}
	n := len(pts)

	// Tangent at i: (next - prev) * (1 - tension) / 2, with wraparound
	// neighbors when cyclic and edge-clamped neighbors when open.
	scale := (1 - tension) / 2
	tangents := make([]Vec2, n)
	for i := 0; i < n; i++ {
		var prev, next Vec2
		if closed {
			prev = pts[(i-1+n)%n]
			next = pts[(i+1)%n]
		} else {
			prev = pts[max(i-1, 0)]
			next = pts[min(i+1, n-1)]
		}
		tangents[i] = next.Sub(prev).Scale(scale)
	}

	segments := n - 1
	if closed {
		segments = n
	}

	out := make([]Vec2, 0, segments*subdivisions+1)
	for i := 0; i < segments; i++ {
		j := (i + 1) % n
		p0, p1 := pts[i], pts[j]
		m0, m1 := tangents[i], tangents[j]
		for s := 0; s < subdivisions; s++ {
			t := float64(s) / float64(subdivisions)
			out = append(out, hermite(p0, p1, m0, m1, t))
		}
	}
	if closed {
		out = append(out, out[0])
	} else {
		out = append(out, pts[n-1])
	}
	return out
}

// hermite evaluates the cubic Hermite basis for endpoints p0, p1 and tangents
// m0, m1 at parameter t in [0, 1].
func hermite(p0, p1, m0, m1 Vec2, t float64) Vec2 {
	t2 := t * t
	t3 := t2 * t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	return Vec2{
		X: h00*p0.X + h10*m0.X + h01*p1.X + h11*m1.X,
		Y: h00*p0.Y + h10*m0.Y + h01*p1.Y + h11*m1.Y,
	}
}
