// Copyright 2026 The p5 Authors
// SPDX-License-Identifier: MIT

package raster

// Line plots the segment (x1,y1)-(x2,y2) with integer Bresenham stepping.
//
// A weight above 1 thickens each step by ±weight/2 pixels along a single
// axis: along y for lines that are more horizontal than vertical, along x
// otherwise. Thick diagonals therefore look slightly narrower than thick
// horizontals. A zero-length line plots its single endpoint.
func Line(p Plotter, x1, y1, x2, y2, weight int) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 >= x2 {
		sx = -1
	}
	if y1 >= y2 {
		sy = -1
	}
	err := dx - dy
	half := max(weight, 1) / 2
	horizontal := dx > dy

	for {
		for off := -half; off <= half; off++ {
			if horizontal {
				p.Plot(x1, y1+off)
			} else {
				p.Plot(x1+off, y1)
			}
		}
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Point plots a square of side 2*(weight/2)+1 centered on (x, y).
func Point(p Plotter, x, y, weight int) {
	half := max(weight, 1) / 2
	for dx := -half; dx <= half; dx++ {
		for dy := -half; dy <= half; dy++ {
			p.Plot(x+dx, y+dy)
		}
	}
}

// FillRect plots every pixel of [x, x+w) × [y, y+h), row by row.
// Non-positive extents plot nothing.
func FillRect(p Plotter, x, y, w, h int) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			p.Plot(i, j)
		}
	}
}

// Span plots the inclusive horizontal run [x0, x1] on row y.
func Span(p Plotter, x0, x1, y int) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		p.Plot(x, y)
	}
}
