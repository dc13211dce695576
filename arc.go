package p5

import "github.com/p5go/p5/internal/raster"

// Arc draws an open arc of the ellipse inscribed in the box at (x, y) of
// size w × h, sweeping forward from start to stop with 25 samples.
func (c *Canvas) Arc(x, y, w, h int, start, stop float64) {
	c.ArcDetail(x, y, w, h, start, stop, Open, raster.DefaultArcDetail)
}

// ArcMode draws an arc closed according to mode with 25 samples.
func (c *Canvas) ArcMode(x, y, w, h int, start, stop float64, mode ArcMode) {
	c.ArcDetail(x, y, w, h, start, stop, mode, raster.DefaultArcDetail)
}

// ArcDetail draws an arc approximated by detail straight segments.
//
// Angles are read in the current angle mode. When stop is below start the
// arc wraps forward through a full turn instead of sweeping backward.
// detail <= 0 selects 25 and values above 360 are capped.
//
// Fill: Pie fans triangles from the center, Chord fans triangles over
// consecutive sample triples, and Open fills the pixels of the ellipse
// whose direction from the center lies in the sweep. Stroke: the sampled
// boundary, plus a closing chord for Chord or two radii for Pie.
func (c *Canvas) ArcDetail(x, y, w, h int, start, stop float64, mode ArcMode, detail int) {
	if w <= 0 || h <= 0 {
		return
	}
	a, b := w/2, h/2
	cx, cy := x+a, y+b

	start = c.state.radians(start)
	stop = raster.SweepEnd(start, c.state.radians(stop))
	pts := raster.ArcSamples(cx, cy, a, b, start, stop, raster.ArcDetail(detail))
	n := len(pts)

	if c.state.FillEnabled {
		switch mode {
		case Pie:
			for i := 0; i < n-1; i++ {
				c.fillTriangle(cx, cy, pts[i].X, pts[i].Y, pts[i+1].X, pts[i+1].Y)
			}
		case Chord:
			for i := 0; i < n-2; i++ {
				c.fillTriangle(pts[i].X, pts[i].Y, pts[i+1].X, pts[i+1].Y, pts[i+2].X, pts[i+2].Y)
			}
		default:
			raster.FillSector(c.fillPlotter(), cx, cy, a, b, start, stop)
		}
	}

	if c.state.StrokeEnabled {
		for i := 0; i < n-1; i++ {
			c.Line(pts[i].X, pts[i].Y, pts[i+1].X, pts[i+1].Y)
		}
		switch mode {
		case Chord:
			c.Line(pts[0].X, pts[0].Y, pts[n-1].X, pts[n-1].Y)
		case Pie:
			c.Line(cx, cy, pts[0].X, pts[0].Y)
			c.Line(cx, cy, pts[n-1].X, pts[n-1].Y)
		}
	}
}
