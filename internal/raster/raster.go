// Copyright 2026 The p5 Authors
// SPDX-License-Identifier: MIT

// Package raster decomposes primitives into integer pixel coordinates.
//
// The algorithms here know nothing about colors, transforms or buffers:
// every pixel a primitive covers is handed to a Plotter, in the order the
// algorithm visits it. Pixels may be reported more than once.
package raster

// Plotter receives the pixels covered by a primitive.
type Plotter interface {
	Plot(x, y int)
}

// PlotFunc adapts a function to the Plotter interface.
type PlotFunc func(x, y int)

// Plot calls f(x, y).
func (f PlotFunc) Plot(x, y int) { f(x, y) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
