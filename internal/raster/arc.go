// Copyright 2026 The p5 Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"image"
	"math"
)

const (
	// DefaultArcDetail is the sample count used when none is given.
	DefaultArcDetail = 25
	// MaxArcDetail caps the sample count of a single arc.
	MaxArcDetail = 360
)

// ArcDetail clamps a requested sample count: non-positive values become
// DefaultArcDetail and values above MaxArcDetail are capped.
func ArcDetail(detail int) int {
	if detail <= 0 {
		return DefaultArcDetail
	}
	return min(detail, MaxArcDetail)
}

// SweepEnd returns the stop angle of a sweep that always runs forward from
// start: a stop below start is moved one full turn ahead.
func SweepEnd(start, stop float64) float64 {
	if stop < start {
		stop += 2 * math.Pi
	}
	return stop
}

// ArcSamples returns detail+1 points evenly spaced in angle along the
// ellipse centered at (cx, cy) with semi-axes a, b, from start to stop
// (radians). Offsets from the center are truncated toward zero.
func ArcSamples(cx, cy, a, b int, start, stop float64, detail int) []image.Point {
	step := (stop - start) / float64(detail)
	pts := make([]image.Point, 0, detail+1)
	for i := 0; i <= detail; i++ {
		angle := start + float64(i)*step
		pts = append(pts, image.Point{
			X: cx + int(float64(a)*math.Cos(angle)),
			Y: cy + int(float64(b)*math.Sin(angle)),
		})
	}
	return pts
}

// InSweep reports whether the direction angle theta, in radians, lies in
// the sweep [start, stop]. theta is compared in the first turn at or after
// start, so sweeps that wrap past 2π or begin below 0 match all of their
// directions.
func InSweep(theta, start, stop float64) bool {
	const turn = 2 * math.Pi
	theta -= turn * math.Floor((theta-start)/turn)
	return theta <= stop
}

// FillSector plots the pixels of the ellipse centered at (cx, cy) whose
// polar angle lies in the sweep [start, stop]. Angles are measured with
// atan2 in the canvas frame (y down), mapped to [0, 2π). The center pixel
// has no direction; it is taken to be at angle 0.
func FillSector(p Plotter, cx, cy, a, b int, start, stop float64) {
	for sy := -b; sy <= b; sy++ {
		w := halfWidth(a, b, sy)
		for sx := -w; sx <= w; sx++ {
			theta := math.Atan2(float64(sy), float64(sx))
			if theta < 0 {
				theta += 2 * math.Pi
			}
			if InSweep(theta, start, stop) {
				p.Plot(cx+sx, cy+sy)
			}
		}
	}
}
