// Copyright 2026 The p5 Authors
// SPDX-License-Identifier: MIT

package sketches

import (
	"golang.org/x/image/colornames"

	"github.com/p5go/p5"
)

// Pattern exercises every primitive once per frame.
type Pattern struct{}

func (*Pattern) Setup(c *p5.Canvas) {
	_ = c.Size(800, 480)
	c.FrameRate(60)
}

func (*Pattern) Draw(c *p5.Canvas) {
	w, h := c.Width(), c.Height()
	c.Background(40, 40, 40)

	// Grid of points.
	c.Stroke(200, 200, 200)
	for x := 0; x < w; x += 20 {
		for y := 0; y < h; y += 20 {
			c.Point(x, y)
		}
	}

	c.Stroke(255, 0, 0)
	for i := range 10 {
		c.Line(0, i*30, w, h-i*30)
	}

	c.Fill(0, 255, 0)
	c.Stroke(255, 255, 255)
	for i := range 5 {
		c.Rect(50+i*30, 50+i*30, 100, 100)
	}

	c.Fill(0, 0, 255)
	c.Stroke(255, 255, 0)
	for i := range 5 {
		c.Ellipse(400+i*20, 100+i*20, 80, 80)
	}

	c.Fill(255, 0, 255)
	c.Stroke(0, 255, 255)
	for i := range 3 {
		c.Triangle(400+i*30, 300+i*30, 450+i*30, 400+i*30, 350+i*30, 400+i*30)
	}

	c.NoFill()
	c.StrokeColor(colornames.Orange)
	c.Rect(600, 100, 150, 150)

	c.FillColor(colornames.Purple)
	c.NoStroke()
	c.Ellipse(650, 350, 100, 100)

	// Cursor marker.
	c.Fill(255, 255, 255)
	c.Stroke(0, 0, 0)
	c.Rect(c.MouseX()-5, c.MouseY()-5, 10, 10)
	c.Stroke(255, 255, 255)
	c.Line(w/2, h/2, c.MouseX(), c.MouseY())
}

// Arcs shows the three arc modes and a low-detail pie, in degrees.
type Arcs struct{}

func (*Arcs) Setup(c *p5.Canvas) {
	_ = c.Size(640, 480)
	c.FrameRate(30)
	c.AngleMode(p5.Degrees)
}

func (*Arcs) Draw(c *p5.Canvas) {
	c.Background(40, 40, 40)
	c.Stroke(255, 255, 255)

	c.FillColor(colornames.Red)
	c.Arc(100, 100, 150, 150, 0, 135)

	c.FillColor(colornames.Lime)
	c.ArcMode(320, 100, 150, 150, 0, 135, p5.Chord)

	c.FillColor(colornames.Blue)
	c.ArcMode(100, 300, 150, 150, 0, 135, p5.Pie)

	c.FillColor(colornames.Yellow)
	c.ArcDetail(320, 300, 150, 150, 0, 135, p5.Pie, 10)

	// Mode markers above each arc.
	c.Fill(255, 255, 255)
	c.Line(100, 50, 150, 50)
	c.Line(320, 50, 370, 50)
	c.Line(320, 50, 370, 60)
	c.Line(370, 50, 370, 60)
	c.Triangle(100, 250, 150, 250, 125, 270)
	c.Circle(320, 250, 10)
}

// TranslateTest draws squares before, inside and after a push/pop pair.
type TranslateTest struct{}

func (*TranslateTest) Setup(c *p5.Canvas) {
	_ = c.Size(640, 480)
	c.FrameRate(30)
}

func (*TranslateTest) Draw(c *p5.Canvas) {
	c.Background(200, 200, 200)

	c.Fill(255, 0, 0)
	c.Square(0, 0, 20)

	_ = c.Push()
	c.Translate(float64(c.Width()/2), float64(c.Height()/2))
	c.Fill(0, 255, 0)
	c.Square(0, 0, 20)
	_ = c.Pop()

	c.Fill(0, 0, 255)
	c.Square(0, 0, 10)
}
