package mirrorcurve

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// This file turns the engine's emitted geometry (polylines, the grid edge
// snapshot, decorative dots) into ebiten vertices. The rendering layer draws
// the results with DrawTriangles against WhitePixel; tint comes from the
// vertex colors.

var whitePixel *ebiten.Image

// WhitePixel returns the shared 1x1 white image used to draw untextured
// meshes. Created lazily on first use.
func WhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// Ribbon builds a triangle ribbon of the given width along a polyline, with
// miter joins clamped to 2x extension to avoid spikes at sharp corners.
// For N points it produces 2N vertices and 6(N-1) indices. Fewer than 2
// points produce nothing.
func Ribbon(points []Vec2, width float64, r, g, b, a float32) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 2 {
		return nil, nil
	}

	verts := make([]ebiten.Vertex, n*2)
	inds := make([]uint16, (n-1)*6)
	halfW := width / 2

	for i := 0; i < n; i++ {
		var nx, ny float64
		if i == 0 {
			nx, ny = perpendicular(points[0], points[1])
		} else if i == n-1 {
			nx, ny = perpendicular(points[n-2], points[n-1])
		} else {
			// Average of adjacent segment normals (miter).
			nx0, ny0 := perpendicular(points[i-1], points[i])
			nx1, ny1 := perpendicular(points[i], points[i+1])
			nx, ny = nx0+nx1, ny0+ny1
			ln := math.Sqrt(nx*nx + ny*ny)
			if ln > 1e-10 {
				nx /= ln
				ny /= ln
			}
			dot := nx0*nx + ny0*ny
			if dot > 0.1 {
				scale := 1.0 / dot
				if scale > 2.0 {
					scale = 2.0
				}
				nx *= scale
				ny *= scale
			}
		}

		vi := i * 2
		verts[vi] = whiteVertex(points[i].X+nx*halfW, points[i].Y+ny*halfW, r, g, b, a)
		verts[vi+1] = whiteVertex(points[i].X-nx*halfW, points[i].Y-ny*halfW, r, g, b, a)
	}

	for i := 0; i < n-1; i++ {
		ii := i * 6
		v := uint16(i * 2)
		inds[ii+0] = v
		inds[ii+1] = v + 1
		inds[ii+2] = v + 2
		inds[ii+3] = v + 1
		inds[ii+4] = v + 3
		inds[ii+5] = v + 2
	}

	return verts, inds
}

// GridLines builds one quad per edge of the snapshot under the layout. Plain
// grid lines use lineWidth; mirrors use mirrorWidth so they read as solid
// bars. Per edge: 4 vertices, 6 indices.
func GridLines(edges []EdgeInfo, l Layout, lineWidth, mirrorWidth float64, r, g, b, a float32) ([]ebiten.Vertex, []uint16) {
	verts := make([]ebiten.Vertex, 0, len(edges)*4)
	inds := make([]uint16, 0, len(edges)*6)

	for _, e := range edges {
		p0, p1 := l.EdgeEnds(e)
		w := lineWidth
		if e.Mirror {
			w = mirrorWidth
		}
		nx, ny := perpendicular(p0, p1)
		half := w / 2

		base := uint16(len(verts))
		verts = append(verts,
			whiteVertex(p0.X+nx*half, p0.Y+ny*half, r, g, b, a),
			whiteVertex(p0.X-nx*half, p0.Y-ny*half, r, g, b, a),
			whiteVertex(p1.X+nx*half, p1.Y+ny*half, r, g, b, a),
			whiteVertex(p1.X-nx*half, p1.Y-ny*half, r, g, b, a),
		)
		inds = append(inds,
			base, base+1, base+2,
			base+1, base+3, base+2,
		)
	}

	return verts, inds
}

// Dots builds a fan-triangulated disc for each center. Per dot: segments+1
// vertices and 3*segments indices. Segments below 3 are raised to 3.
func Dots(centers []Vec2, radius float64, segments int, r, g, b, a float32) ([]ebiten.Vertex, []uint16) {
	if segments < 3 {
		segments = 3
	}

	verts := make([]ebiten.Vertex, 0, len(centers)*(segments+1))
	inds := make([]uint16, 0, len(centers)*segments*3)

	for _, c := range centers {
		base := uint16(len(verts))
		verts = append(verts, whiteVertex(c.X, c.Y, r, g, b, a))
		for s := 0; s < segments; s++ {
			ang := 2 * math.Pi * float64(s) / float64(segments)
			verts = append(verts, whiteVertex(
				c.X+radius*math.Cos(ang),
				c.Y+radius*math.Sin(ang),
				r, g, b, a,
			))
		}
		for s := 0; s < segments; s++ {
			next := uint16(s+1)%uint16(segments) + 1
			inds = append(inds, base, base+uint16(s)+1, base+next)
		}
	}

	return verts, inds
}

// whiteVertex returns a vertex sampling the center of the white pixel, tinted
// by the given color.
func whiteVertex(x, y float64, r, g, b, a float32) ebiten.Vertex {
	return ebiten.Vertex{
		DstX: float32(x), DstY: float32(y),
		SrcX: 0.5, SrcY: 0.5,
		ColorR: r, ColorG: g, ColorB: b, ColorA: a,
	}
}

// perpendicular returns the unit left-perpendicular of the segment from a to b.
func perpendicular(a, b Vec2) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}
