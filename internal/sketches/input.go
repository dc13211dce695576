// Copyright 2026 The p5 Authors
// SPDX-License-Identifier: MIT

package sketches

import "github.com/p5go/p5"

// InputTest follows the mouse and moves shapes with WASD and the arrows.
type InputTest struct {
	lastClickX, lastClickY int
	squareX, squareY       int
	circleX, circleY       int
}

func (s *InputTest) Setup(c *p5.Canvas) {
	_ = c.Size(640, 480)
	c.FrameRate(60)
	s.lastClickX, s.lastClickY = -1, -1
	s.squareX, s.squareY = 320, 240
	s.circleX, s.circleY = 320, 240
}

func (s *InputTest) Draw(c *p5.Canvas) {
	mx, my := c.MouseX(), c.MouseY()
	c.Background(40, 40, 40)

	c.Fill(0, 255, 0)
	c.Stroke(255, 255, 255)
	c.Circle(mx, my, 20)

	if c.MousePressed() {
		c.Fill(255, 0, 0)
		c.Circle(mx, my, 30)
		s.lastClickX, s.lastClickY = mx, my
	}
	if s.lastClickX >= 0 && s.lastClickY >= 0 {
		c.Stroke(255, 255, 0)
		c.Line(s.lastClickX, s.lastClickY, mx, my)
	}

	if c.KeyIsDown('r') {
		c.Fill(255, 0, 0)
		c.Rect(50, 50, 100, 100)
	}
	if c.KeyIsDown('g') {
		c.Fill(0, 255, 0)
		c.Rect(200, 50, 100, 100)
	}
	if c.KeyIsDown('b') {
		c.Fill(0, 0, 255)
		c.Rect(350, 50, 100, 100)
	}

	if c.KeyIsDown('w') {
		s.squareY -= 5
	}
	if c.KeyIsDown('s') {
		s.squareY += 5
	}
	if c.KeyIsDown('a') {
		s.squareX -= 5
	}
	if c.KeyIsDown('d') {
		s.squareX += 5
	}
	c.Fill(255, 255, 255)
	c.Square(s.squareX, s.squareY, 50)

	if c.KeyIsDown(p5.ArrowUp) {
		s.circleY -= 5
	}
	if c.KeyIsDown(p5.ArrowDown) {
		s.circleY += 5
	}
	if c.KeyIsDown(p5.ArrowLeft) {
		s.circleX -= 5
	}
	if c.KeyIsDown(p5.ArrowRight) {
		s.circleX += 5
	}
	c.Fill(255, 255, 0)
	c.Circle(s.circleX, s.circleY, 30)
}
