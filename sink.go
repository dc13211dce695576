package p5

import (
	"math"

	"github.com/p5go/p5/internal/raster"
)

// putPixel is the only path into the pixel buffer for drawing calls. It
// maps (x, y) through the current transform, rounds to the nearest device
// pixel and drops anything outside the canvas.
func (c *Canvas) putPixel(x, y int, col Color) {
	fx, fy := c.matrix.TransformPoint(float64(x), float64(y))
	dx := int(math.Floor(fx + 0.5))
	dy := int(math.Floor(fy + 0.5))
	c.pixmap.SetPixel(dx, dy, col)
}

// plotter binds the pixel sink to one color for the raster package.
type plotter struct {
	c   *Canvas
	col Color
}

func (p plotter) Plot(x, y int) { p.c.putPixel(x, y, p.col) }

var _ raster.Plotter = plotter{}

func (c *Canvas) fillPlotter() plotter   { return plotter{c: c, col: c.state.FillColor} }
func (c *Canvas) strokePlotter() plotter { return plotter{c: c, col: c.state.StrokeColor} }
