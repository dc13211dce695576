// Copyright 2026 The p5 Authors
// SPDX-License-Identifier: MIT

package raster

import "math"

// halfWidth returns the truncated half-width of an ellipse with semi-axes
// a, b on row sy (relative to the center). A flat ellipse (b == 0) has
// only the center row, which spans the full width.
func halfWidth(a, b, sy int) int {
	if b == 0 {
		return a
	}
	ry := float64(sy) / float64(b)
	return int(float64(a) * math.Sqrt(math.Max(0, 1-ry*ry)))
}

// FillEllipse plots the interior of the ellipse centered at (cx, cy) with
// semi-axes a and b, one horizontal span per row from cy-b to cy+b.
func FillEllipse(p Plotter, cx, cy, a, b int) {
	for sy := -b; sy <= b; sy++ {
		w := halfWidth(a, b, sy)
		Span(p, cx-w, cx+w, cy+sy)
	}
}

// StrokeEllipse plots the outline of the ellipse centered at (cx, cy) with
// the midpoint algorithm. Region one walks from the top of the ellipse
// while the slope magnitude is below 1, region two from the right end
// while it is above 1; each step plots the four symmetric points.
//
// An ellipse with a zero semi-axis collapses to a line through the center.
func StrokeEllipse(p Plotter, cx, cy, a, b int) {
	if a == 0 || b == 0 {
		Line(p, cx-a, cy-b, cx+a, cy+b, 1)
		return
	}
	plot4 := func(x, y int) {
		p.Plot(cx+x, cy+y)
		p.Plot(cx-x, cy+y)
		p.Plot(cx+x, cy-y)
		p.Plot(cx-x, cy-y)
	}
	a2, b2 := a*a, b*b

	// Region one: from (0, b), stepping x.
	x, y := 0, b
	dx, dy := 0, 2*a2*y
	d := b2 - a2*b + a2/4
	for dx < dy {
		plot4(x, y)
		x++
		dx += 2 * b2
		if d < 0 {
			d += dx + b2
		} else {
			y--
			dy -= 2 * a2
			d += dx - dy + b2
		}
	}

	// Region two: from (a, 0), stepping y.
	x, y = a, 0
	dx, dy = 2*b2*x, 0
	d = a2 - b2*a + b2/4
	for dx > dy {
		plot4(x, y)
		y++
		dy += 2 * a2
		if d < 0 {
			d += dy + a2
		} else {
			x--
			dx -= 2 * b2
			d += dy - dx + a2
		}
	}
}
