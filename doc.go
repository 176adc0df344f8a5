// Package mirrorcurve renders and solves mirror-reflection curve puzzles on a
// rectangular grid.
//
// Every edge of the grid can be a mirror. A traveler entering an edge along
// one of four diagonal directions is reflected according to the edge's
// orientation, producing closed loops or grid-exiting paths. The package
// enumerates those curves exhaustively and plays them back as smooth,
// constant-speed animated polylines.
//
// # Quick start
//
//	grid, _ := mirrorcurve.NewGrid(3, 3)
//	grid.Randomize(0.3)
//	for _, c := range mirrorcurve.FindAllCurves(grid) {
//		fmt.Println(c.Len(), c.Closed())
//	}
//
// For animated playback, build a [Puzzle] and tick it from your frame loop:
//
//	layout := mirrorcurve.NewLayout(64)
//	puzzle, _ := mirrorcurve.NewPuzzle(3, 3, mirrorcurve.PlayerConfig{
//		PointFunc: layout.EdgePoint,
//		Smoothing: mirrorcurve.SmoothingOptions{Enabled: true},
//	})
//	puzzle.Player().OnPartial = func(points []mirrorcurve.Vec2) { /* draw */ }
//	puzzle.PlayAll()
//	// each frame:
//	puzzle.Advance(1.0 / 60.0)
//
// # Model
//
// Edges are the nodes of the traversal graph. Each edge knows its diagonal
// neighbors ([Grid.Neighbor]), its mirror flag ([Grid.Reflect]), and which
// directions earlier curves have walked ([Grid.UncoveredDirections]), which
// is what guarantees [FindAllCurves] covers every directed pass exactly once.
// Boundary edges are permanent mirrors, so with no interior mirrors every
// curve closes.
//
// The playback layer ([CurvePoints], [ArcLength], [PointAtProgress],
// [Player]) converts a curve's discrete steps into an arc-length-parametrized
// polyline and reveals it progressively at constant linear speed, smoothing
// it through a tension-controlled spline ([Smooth]) when asked.
//
// Mesh builders ([Ribbon], [GridLines], [Dots]) turn the emitted geometry
// into [Ebitengine] vertices; see examples/ for runnable demos.
//
// [Ebitengine]: https://ebitengine.org
package mirrorcurve
