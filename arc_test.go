package p5

import (
	"bytes"
	"math"
	"testing"
)

func TestArcPieMatchesReferenceLines(t *testing.T) {
	c := newTestCanvas(t, 110, 110)
	c.AngleMode(Degrees)
	c.NoFill()
	c.Stroke(255, 255, 255)
	c.ArcDetail(0, 0, 100, 100, 0, 180, Pie, 4)

	ref := newTestCanvas(t, 110, 110)
	ref.Stroke(255, 255, 255)
	ref.Line(100, 50, 85, 85)
	ref.Line(85, 85, 50, 100)
	ref.Line(50, 100, 15, 85)
	ref.Line(15, 85, 0, 50)
	ref.Line(50, 50, 100, 50)
	ref.Line(50, 50, 0, 50)

	if !bytes.Equal(snapshot(c), snapshot(ref)) {
		t.Errorf("pie arc differs from its reference polyline")
	}
}

func TestArcAngleModes(t *testing.T) {
	deg := newTestCanvas(t, 60, 60)
	deg.AngleMode(Degrees)
	deg.Fill(255, 0, 0)
	deg.Stroke(255, 255, 255)
	deg.ArcMode(5, 5, 50, 50, 30, 240, Pie)

	rad := newTestCanvas(t, 60, 60)
	rad.Fill(255, 0, 0)
	rad.Stroke(255, 255, 255)
	rad.ArcMode(5, 5, 50, 50, ToRadians(30), ToRadians(240), Pie)

	if !bytes.Equal(snapshot(deg), snapshot(rad)) {
		t.Errorf("degree and radian arcs differ")
	}
}

func TestArcOpenFillsSector(t *testing.T) {
	c := newTestCanvas(t, 50, 50)
	c.Fill(255, 0, 0)
	c.NoStroke()
	c.Arc(0, 0, 40, 40, 0, math.Pi) // center (20, 20), lower half in canvas space

	tests := []struct {
		x, y int
		want Color
	}{
		{20, 30, Red},
		{5, 20, Red},
		{35, 20, Red},
		{20, 20, Red},
		{10, 25, Red},
		{20, 10, Black},
		{30, 12, Black},
		{20, 45, Black},
	}
	for _, tt := range tests {
		if got := c.Pixmap().Pixel(tt.x, tt.y); got != tt.want {
			t.Errorf("Pixel(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestArcWrapsForward(t *testing.T) {
	tests := []struct {
		name        string
		start, stop float64
	}{
		{"stop below start", 3 * math.Pi / 2, math.Pi / 2},
		{"negative start", -math.Pi / 2, math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCanvas(t, 50, 50)
			c.Fill(0, 0, 255)
			c.NoStroke()
			c.Arc(0, 0, 40, 40, tt.start, tt.stop) // right half

			for _, p := range [][2]int{{30, 20}, {25, 10}, {25, 30}, {38, 21}} {
				if got := c.Pixmap().Pixel(p[0], p[1]); got != Blue {
					t.Errorf("right-half pixel %v = %v, want blue", p, got)
				}
			}
			for _, p := range [][2]int{{10, 20}, {15, 10}, {15, 30}, {2, 19}} {
				if got := c.Pixmap().Pixel(p[0], p[1]); got != Black {
					t.Errorf("left-half pixel %v = %v, want untouched", p, got)
				}
			}
		})
	}
}

func TestArcChordClosesEnds(t *testing.T) {
	open := newTestCanvas(t, 110, 110)
	open.AngleMode(Degrees)
	open.NoFill()
	open.Stroke(255, 255, 255)
	open.ArcDetail(0, 0, 100, 100, 0, 180, Open, 4)
	if got := open.Pixmap().Pixel(50, 50); got != Black {
		t.Errorf("open arc painted the chord midpoint: %v", got)
	}

	chord := newTestCanvas(t, 110, 110)
	chord.AngleMode(Degrees)
	chord.NoFill()
	chord.Stroke(255, 255, 255)
	chord.ArcDetail(0, 0, 100, 100, 0, 180, Chord, 4)
	for x := 0; x <= 100; x++ {
		if got := chord.Pixmap().Pixel(x, 50); got != White {
			t.Fatalf("chord pixel (%d, 50) = %v, want white", x, got)
		}
	}
}

func TestArcChordFill(t *testing.T) {
	c := newTestCanvas(t, 110, 110)
	c.AngleMode(Degrees)
	c.Fill(0, 255, 0)
	c.NoStroke()
	c.ArcDetail(0, 0, 100, 100, 0, 180, Chord, 4)
	// Triangles over consecutive sample triples.
	for _, p := range [][2]int{{78, 78}, {50, 90}, {22, 78}} {
		if got := c.Pixmap().Pixel(p[0], p[1]); got != Green {
			t.Errorf("chord triangle pixel %v = %v, want green", p, got)
		}
	}
	if got := c.Pixmap().Pixel(50, 20); got != Black {
		t.Errorf("pixel outside the sweep = %v, want untouched", got)
	}
}

func TestArcEmptyBox(t *testing.T) {
	c := newTestCanvas(t, 20, 20)
	c.Stroke(255, 255, 255)
	c.Arc(5, 5, 0, 10, 0, math.Pi)
	c.ArcMode(5, 5, 10, -1, 0, math.Pi, Pie)
	if got := painted(c, Black); len(got) != 0 {
		t.Errorf("empty arc boxes painted %v", got)
	}
}

func TestArcDefaultDetail(t *testing.T) {
	a := newTestCanvas(t, 60, 60)
	b := newTestCanvas(t, 60, 60)
	for _, c := range []*Canvas{a, b} {
		c.NoFill()
		c.Stroke(255, 255, 255)
	}
	a.Arc(5, 5, 50, 40, 0.3, 2.5)
	b.ArcDetail(5, 5, 50, 40, 0.3, 2.5, Open, 0)
	if !bytes.Equal(snapshot(a), snapshot(b)) {
		t.Errorf("Arc and ArcDetail with detail 0 differ")
	}
}
