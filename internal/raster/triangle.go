// Copyright 2026 The p5 Authors
// SPDX-License-Identifier: MIT

package raster

// FillTriangle plots the interior of a triangle with horizontal spans.
//
// The vertices are sorted by y and the triangle is split at the middle
// vertex into a flat-bottom half, filled downward from the top vertex, and
// a flat-top half, filled upward from the bottom vertex. Span ends are
// interpolated along the edges and truncated toward zero.
func FillTriangle(p Plotter, x1, y1, x2, y2, x3, y3 int) {
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if y2 > y3 {
		x2, y2, x3, y3 = x3, y3, x2, y2
	}
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	switch {
	case y1 == y3:
		// All three vertices share a row.
		Span(p, min(x1, x2, x3), max(x1, x2, x3), y1)
	case y2 == y3:
		fillFlatBottom(p, x1, y1, x2, x3, y2, y2)
	case y1 == y2:
		fillFlatTop(p, x3, y3, x1, x2, y1, y1)
	default:
		x4 := x1 + (y2-y1)*(x3-x1)/(y3-y1)
		fillFlatBottom(p, x1, y1, x2, x4, y2, y2)
		fillFlatTop(p, x3, y3, x2, x4, y2, y2+1)
	}
}

// fillFlatBottom fills rows ay..last of the triangle with apex (ax, ay)
// and base (bx0, by)-(bx1, by), where by > ay.
func fillFlatBottom(p Plotter, ax, ay, bx0, bx1, by, last int) {
	s0 := float64(bx0-ax) / float64(by-ay)
	s1 := float64(bx1-ax) / float64(by-ay)
	for y := ay; y <= last; y++ {
		t := float64(y - ay)
		Span(p, int(float64(ax)+s0*t), int(float64(ax)+s1*t), y)
	}
}

// fillFlatTop fills rows ay down to first of the triangle with
// apex (ax, ay) and top edge (tx0, ty)-(tx1, ty), where ty < ay.
func fillFlatTop(p Plotter, ax, ay, tx0, tx1, ty, first int) {
	s0 := float64(ax-tx0) / float64(ay-ty)
	s1 := float64(ax-tx1) / float64(ay-ty)
	for y := ay; y >= first; y-- {
		t := float64(ay - y)
		Span(p, int(float64(ax)-s0*t), int(float64(ax)-s1*t), y)
	}
}
