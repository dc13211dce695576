package p5

import "github.com/p5go/p5/internal/raster"

// Point draws a point in the stroke color as a square of side
// 2*(weight/2)+1. Nothing is drawn when stroke is disabled.
func (c *Canvas) Point(x, y int) {
	if !c.state.StrokeEnabled {
		return
	}
	raster.Point(c.strokePlotter(), x, y, c.state.StrokeWeight)
}

// Line draws a line in the stroke color. Weights above 1 thicken it along
// a single axis, y for mostly horizontal lines and x otherwise.
func (c *Canvas) Line(x1, y1, x2, y2 int) {
	if !c.state.StrokeEnabled {
		return
	}
	raster.Line(c.strokePlotter(), x1, y1, x2, y2, c.state.StrokeWeight)
}

// Rect fills [x, x+w) × [y, y+h) and then outlines it with four lines
// through its corner pixels.
func (c *Canvas) Rect(x, y, w, h int) {
	if c.state.FillEnabled {
		raster.FillRect(c.fillPlotter(), x, y, w, h)
	}
	if c.state.StrokeEnabled {
		r, b := x+w-1, y+h-1
		c.Line(x, y, r, y)
		c.Line(r, y, r, b)
		c.Line(r, b, x, b)
		c.Line(x, b, x, y)
	}
}

// Square draws Rect(x, y, size, size).
func (c *Canvas) Square(x, y, size int) {
	c.Rect(x, y, size, size)
}

// Ellipse draws the ellipse inscribed in the box at (x, y) of size w × h.
// Empty boxes draw nothing.
func (c *Canvas) Ellipse(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	a, b := w/2, h/2
	cx, cy := x+a, y+b

	// Tiny circles are a single pixel.
	if w == h && w <= 2 {
		switch {
		case c.state.FillEnabled:
			c.putPixel(cx, cy, c.state.FillColor)
		case c.state.StrokeEnabled:
			c.putPixel(cx, cy, c.state.StrokeColor)
		}
		return
	}

	if c.state.FillEnabled {
		raster.FillEllipse(c.fillPlotter(), cx, cy, a, b)
	}
	if c.state.StrokeEnabled {
		raster.StrokeEllipse(c.strokePlotter(), cx, cy, a, b)
	}
}

// Circle draws Ellipse(x, y, d, d): (x, y) is the top-left corner of the
// bounding box and d its side.
func (c *Canvas) Circle(x, y, d int) {
	c.Ellipse(x, y, d, d)
}

// Triangle outlines the triangle when stroke is enabled and fills it when
// fill is enabled. The fill is painted after the outline.
func (c *Canvas) Triangle(x1, y1, x2, y2, x3, y3 int) {
	if c.state.StrokeEnabled {
		c.Line(x1, y1, x2, y2)
		c.Line(x2, y2, x3, y3)
		c.Line(x3, y3, x1, y1)
	}
	if c.state.FillEnabled {
		c.fillTriangle(x1, y1, x2, y2, x3, y3)
	}
}

func (c *Canvas) fillTriangle(x1, y1, x2, y2, x3, y3 int) {
	raster.FillTriangle(c.fillPlotter(), x1, y1, x2, y2, x3, y3)
}
