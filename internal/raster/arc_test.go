// Copyright 2026 The p5 Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"image"
	"math"
	"testing"
)

func TestArcDetail(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-5, DefaultArcDetail},
		{0, DefaultArcDetail},
		{1, 1},
		{100, 100},
		{MaxArcDetail, MaxArcDetail},
		{10000, MaxArcDetail},
	}
	for _, tt := range tests {
		if got := ArcDetail(tt.in); got != tt.want {
			t.Errorf("ArcDetail(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSweepEnd(t *testing.T) {
	tests := []struct {
		name              string
		start, stop, want float64
	}{
		{"forward", 0, math.Pi, math.Pi},
		{"equal", 1, 1, 1},
		{"wraps", 3 * math.Pi / 2, math.Pi / 2, 5 * math.Pi / 2},
		{"negative start", -1, 0.5, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SweepEnd(tt.start, tt.stop); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("SweepEnd(%v, %v) = %v, want %v", tt.start, tt.stop, got, tt.want)
			}
		})
	}
}

func TestArcSamples(t *testing.T) {
	pts := ArcSamples(50, 50, 50, 50, 0, math.Pi, 4)
	want := []image.Point{{100, 50}, {85, 85}, {50, 100}, {15, 85}, {0, 50}}
	if len(pts) != len(want) {
		t.Fatalf("got %d samples, want %d", len(pts), len(want))
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestArcSamplesEllipse(t *testing.T) {
	pts := ArcSamples(10, 20, 30, 5, 0, 2*math.Pi, 8)
	if len(pts) != 9 {
		t.Fatalf("got %d samples, want 9", len(pts))
	}
	if pts[0] != image.Pt(40, 20) || pts[2] != image.Pt(10, 25) || pts[4] != image.Pt(-20, 20) {
		t.Errorf("quarter samples = %v %v %v", pts[0], pts[2], pts[4])
	}
}

func TestInSweep(t *testing.T) {
	tests := []struct {
		name               string
		theta, start, stop float64
		want               bool
	}{
		{"inside", 1, 0, 2, true},
		{"at start", 0, 0, 2, true},
		{"at stop", 2, 0, 2, true},
		{"past stop", 2.5, 0, 2, false},
		{"before start", 0.5, 1, 2, false},
		{"wrapped sweep, low side", 0.2, 3 * math.Pi / 2, 5 * math.Pi / 2, true},
		{"wrapped sweep, high side", 5, 3 * math.Pi / 2, 5 * math.Pi / 2, true},
		{"wrapped sweep, outside", math.Pi, 3 * math.Pi / 2, 5 * math.Pi / 2, false},
		{"negative start", 6, -1, 0.5, true},
		{"negative start, outside", 3, -1, 0.5, false},
		{"full turn", 4, 0, 2 * math.Pi, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InSweep(tt.theta, tt.start, tt.stop); got != tt.want {
				t.Errorf("InSweep(%v, %v, %v) = %v, want %v", tt.theta, tt.start, tt.stop, got, tt.want)
			}
		})
	}
}

func TestFillSectorFullTurnMatchesEllipse(t *testing.T) {
	sector, disk := recorder{}, recorder{}
	FillSector(sector, 30, 30, 12, 9, 0, 2*math.Pi)
	FillEllipse(disk, 30, 30, 12, 9)
	if len(sector) != len(disk) {
		t.Fatalf("sector plotted %d pixels, ellipse %d", len(sector), len(disk))
	}
	for p := range disk {
		if !sector.has(p.X, p.Y) {
			t.Errorf("full sector is missing %v", p)
		}
	}
}

func TestFillSectorQuadrant(t *testing.T) {
	r := recorder{}
	FillSector(r, 0, 0, 10, 10, 0, math.Pi/2)
	for p := range r {
		if p.X < 0 || p.Y < 0 {
			t.Errorf("quarter sector plotted %v outside the +x/+y quadrant", p)
		}
	}
	for _, p := range [][2]int{{0, 0}, {5, 5}, {10, 0}, {0, 10}} {
		if !r.has(p[0], p[1]) {
			t.Errorf("quarter sector is missing %v", p)
		}
	}
}
