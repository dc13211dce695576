// Copyright 2026 The p5 Authors
// SPDX-License-Identifier: MIT

package sketches

import (
	"math"

	"github.com/p5go/p5"
)

// Walker is a random walk of a single point.
type Walker struct {
	x, y int
}

func (w *Walker) Setup(c *p5.Canvas) {
	_ = c.Size(640, 480)
	c.FrameRate(30)
	w.x, w.y = c.Width()/2, c.Height()/2
}

func (w *Walker) Draw(c *p5.Canvas) {
	c.Background(0, 0, 0)
	c.Stroke(255, 255, 255)
	c.Point(w.x, w.y)

	switch int(c.Random(0, 4)) {
	case 0:
		w.y--
	case 1:
		w.x++
	case 2:
		w.y++
	case 3:
		w.x--
	}
	w.x = int(p5.Constrain(float64(w.x), 0, float64(c.Width()-1)))
	w.y = int(p5.Constrain(float64(w.y), 0, float64(c.Height()-1)))
}

const starCount = 800

type star struct {
	x, y, z, pz float64
}

// Starfield flies through stars projected from the canvas center.
type Starfield struct {
	stars []star
	speed float64
}

func (s *Starfield) Setup(c *p5.Canvas) {
	_ = c.Size(800, 800)
	c.FrameRate(60)
	s.speed = 20
	s.stars = make([]star, starCount)
	for i := range s.stars {
		st := &s.stars[i]
		s.respawn(c, st)
		st.z = c.Random(1, float64(c.Width()))
		st.pz = st.z
	}
}

func (s *Starfield) respawn(c *p5.Canvas, st *star) {
	w, h := float64(c.Width()), float64(c.Height())
	st.x = c.Random(-w/2, w/2)
	st.y = c.Random(-h/2, h/2)
	st.z = w
	st.pz = st.z
}

func (s *Starfield) Draw(c *p5.Canvas) {
	w, h := float64(c.Width()), float64(c.Height())
	c.Background(30, 30, 30)

	_ = c.Push()
	defer func() { _ = c.Pop() }()
	c.Translate(w/2, h/2)

	for i := range s.stars {
		st := &s.stars[i]
		st.z -= s.speed
		if st.z < 1 {
			s.respawn(c, st)
		}

		sx := p5.Map(st.x/st.z, 0, 1, 0, w)
		sy := p5.Map(st.y/st.z, 0, 1, 0, h)
		r := p5.Map(st.z, 0, w, 16, 0)
		c.Fill(255, 255, 255)
		c.NoStroke()
		c.Ellipse(int(sx-r/2), int(sy-r/2), int(r), int(r))

		px := p5.Map(st.x/st.pz, 0, 1, 0, w)
		py := p5.Map(st.y/st.pz, 0, 1, 0, h)
		c.Stroke(255, 255, 255)
		c.Line(int(px), int(py), int(sx), int(sy))
		st.pz = st.z
	}
}

const dropCount = 1000

type drop struct {
	x, y, depth, speed, length float64
}

// Rain is a parallax rain of purple lines; nearer drops fall faster and
// are drawn thicker.
type Rain struct {
	drops []drop
}

func (r *Rain) Setup(c *p5.Canvas) {
	_ = c.Size(640, 360)
	r.drops = make([]drop, dropCount)
	for i := range r.drops {
		d := &r.drops[i]
		d.x = c.Random(0, float64(c.Width()))
		d.y = c.Random(-float64(c.Height())*3, 0)
		d.depth = c.Random(0, 20)
		d.speed = c.Random(2, 5)
	}
}

func (r *Rain) Draw(c *p5.Canvas) {
	w, h := float64(c.Width()), float64(c.Height())
	c.Background(230, 230, 250)
	c.Stroke(138, 43, 226)
	for i := range r.drops {
		d := &r.drops[i]
		d.speed += p5.Map(d.depth, 0, 20, 0, 0.2)
		d.y += d.speed
		d.length = p5.Map(d.speed, 0, 5, 10, 20)
		if d.y > h {
			d.y = c.Random(-h*3, 0)
			d.x = c.Random(0, w)
			d.speed = c.Random(2, 5)
		}

		c.StrokeWeight(int(p5.Map(d.depth, 0, 20, 1, 3)))
		c.Line(int(d.x), int(d.y), int(d.x), int(d.y+d.length))
	}
}

// Terrain scrolls five ridge lines of hashed pseudo-noise.
type Terrain struct{}

func (*Terrain) Setup(c *p5.Canvas) {
	_ = c.Size(640, 480)
	c.FrameRate(30)
}

// ridgeNoise is a cheap lattice hash in [0, 1]; it is stepwise, not smooth.
func ridgeNoise(x float64) float64 {
	xi := int(x) & 255
	h := (xi * 16807) % 259
	return math.Sin(float64(h)*math.Pi/180)*0.5 + 0.5
}

func (*Terrain) Draw(c *p5.Canvas) {
	w, h := c.Width(), c.Height()
	c.Background(0, 0, 0)
	c.Stroke(255, 255, 255)
	c.NoFill()

	xoff := float64(c.FrameCount()) * 0.01
	for row := range 5 {
		yoff := float64(row) * 0.2
		prevX := 0
		prevY := h/2 + int(ridgeNoise(xoff+yoff)*200) - 100
		for x := 0; x < w; x += 5 {
			n := ridgeNoise(xoff + float64(x)*0.005 + yoff)
			y := h/2 + int(n*200) - 100 + row*30
			c.Line(prevX, prevY, x, y)
			prevX, prevY = x, y
		}
	}
}
