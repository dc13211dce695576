package p5

import (
	"image"
	"image/color"
	"log/slog"
	"math/rand/v2"
)

// Default canvas dimensions, used until Size is called.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

// DefaultFrameRate is the frame rate hosts aim for unless the sketch asks
// for another one.
const DefaultFrameRate = 60

// Canvas is the drawing context a sketch renders into.
// It owns the pixel buffer, the draw state and the transform stack, and
// holds the input snapshot its host keeps current.
//
// A Canvas is not safe for concurrent use: every call, including the
// host's read of the finished buffer, must happen on one goroutine.
type Canvas struct {
	pixmap *Pixmap
	state  DrawState

	matrix Matrix
	stack  matrixStack

	input *Input
	rng   *rand.Rand
	log   *slog.Logger

	frameCount int
	frameRate  int
}

// NewCanvas creates a canvas of DefaultWidth × DefaultHeight cleared to
// black, with the default draw state and an identity transform.
//
//	c := p5.NewCanvas()
//	c.Background(40, 40, 40)
//	c.Fill(255, 0, 0)
//	c.Circle(100, 100, 50)
func NewCanvas(opts ...CanvasOption) *Canvas {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	input := options.input
	if input == nil {
		input = NewInput()
	}

	var src rand.Source
	if options.seeded {
		src = rand.NewPCG(options.seed, options.seed^0x9e3779b97f4a7c15)
	} else {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	return &Canvas{
		pixmap:    NewPixmap(options.width, options.height),
		state:     DefaultDrawState(),
		matrix:    Identity(),
		input:     input,
		rng:       rand.New(src),
		log:       options.logger,
		frameRate: DefaultFrameRate,
	}
}

// logger returns the canvas logger, falling back to the package logger so
// that SetLogger also reaches canvases created earlier.
func (c *Canvas) logger() *slog.Logger {
	if c.log != nil {
		return c.log
	}
	return Logger()
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.pixmap.Width()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.pixmap.Height()
}

// Size reallocates the pixel buffer to width × height, cleared to black.
// Non-positive dimensions return ErrInvalidSize and keep the old buffer.
func (c *Canvas) Size(width, height int) error {
	if width <= 0 || height <= 0 {
		c.logger().Warn("p5: ignoring canvas size", "width", width, "height", height)
		return ErrInvalidSize
	}
	c.pixmap = NewPixmap(width, height)
	c.logger().Debug("p5: canvas allocated", "width", width, "height", height)
	return nil
}

// Background clears the whole canvas to an opaque color. The transform
// does not apply.
func (c *Canvas) Background(r, g, b uint8) {
	c.pixmap.Clear(RGB(r, g, b))
}

// Pixmap returns the pixel buffer. It stays valid until the next Size.
func (c *Canvas) Pixmap() *Pixmap {
	return c.pixmap
}

// Image returns a copy of the current buffer, for hosts that hand frames
// to another goroutine.
func (c *Canvas) Image() *image.RGBA {
	return c.pixmap.ToImage()
}

// Fill enables filling and sets the fill color.
func (c *Canvas) Fill(r, g, b uint8) {
	c.FillColor(RGB(r, g, b))
}

// FillColor enables filling with any color value. Alpha is dropped.
func (c *Canvas) FillColor(col color.Color) {
	c.state.FillColor = FromColor(col)
	c.state.FillEnabled = true
}

// NoFill disables filling; shapes skip their interior entirely.
func (c *Canvas) NoFill() {
	c.state.FillEnabled = false
}

// Stroke enables stroking and sets the stroke color.
func (c *Canvas) Stroke(r, g, b uint8) {
	c.StrokeColor(RGB(r, g, b))
}

// StrokeColor enables stroking with any color value. Alpha is dropped.
func (c *Canvas) StrokeColor(col color.Color) {
	c.state.StrokeColor = FromColor(col)
	c.state.StrokeEnabled = true
}

// NoStroke disables outlines, lines and points.
func (c *Canvas) NoStroke() {
	c.state.StrokeEnabled = false
}

// StrokeWeight sets the line and point thickness. Values <= 0 are ignored.
func (c *Canvas) StrokeWeight(weight int) {
	if weight > 0 {
		c.state.StrokeWeight = weight
	}
}

// AngleMode sets the unit Arc and Rotate read angles in. Unknown modes
// are ignored.
func (c *Canvas) AngleMode(mode AngleMode) {
	if mode.valid() {
		c.state.AngleMode = mode
	}
}

// DrawState returns a copy of the current draw state.
func (c *Canvas) DrawState() DrawState {
	return c.state
}

// Push saves the current transform. At MaxStackDepth it logs and returns
// ErrStackOverflow and saves nothing.
func (c *Canvas) Push() error {
	if err := c.stack.push(c.matrix); err != nil {
		c.logger().Warn("p5: push ignored", "error", err, "depth", c.stack.len())
		return err
	}
	return nil
}

// Pop restores the most recently pushed transform. On an empty stack it
// logs and returns ErrStackUnderflow and the transform is unchanged.
func (c *Canvas) Pop() error {
	m, err := c.stack.pop()
	if err != nil {
		c.logger().Warn("p5: pop ignored", "error", err)
		return err
	}
	c.matrix = m
	return nil
}

// StackDepth returns the number of saved transforms.
func (c *Canvas) StackDepth() int {
	return c.stack.len()
}

// Translate moves the origin by (dx, dy), measured in the coordinate frame
// set up by earlier transforms.
func (c *Canvas) Translate(dx, dy float64) {
	c.matrix = c.matrix.Multiply(Translate(dx, dy))
}

// Scale scales subsequent drawing about the current origin. Primitives are
// still rasterized at logical resolution, so enlarged shapes show gaps.
func (c *Canvas) Scale(sx, sy float64) {
	c.matrix = c.matrix.Multiply(Scale(sx, sy))
}

// Rotate rotates subsequent drawing about the current origin. The angle
// is read in the current angle mode.
func (c *Canvas) Rotate(angle float64) {
	c.matrix = c.matrix.Multiply(Rotate(c.state.radians(angle)))
}

// ResetMatrix replaces the current transform with the identity. Saved
// transforms are kept.
func (c *Canvas) ResetMatrix() {
	c.matrix = Identity()
}

// Transform returns the current transform.
func (c *Canvas) Transform() Matrix {
	return c.matrix
}

// Input returns the input snapshot read by KeyIsDown and the mouse
// accessors. Hosts write to it; sketches should only read.
func (c *Canvas) Input() *Input {
	return c.input
}

// KeyIsDown reports whether key k is held. See Input.KeyIsDown.
func (c *Canvas) KeyIsDown(k int) bool {
	return c.input.KeyIsDown(k)
}

// MouseX returns the cursor x coordinate.
func (c *Canvas) MouseX() int { return c.input.MouseX() }

// MouseY returns the cursor y coordinate.
func (c *Canvas) MouseY() int { return c.input.MouseY() }

// MousePressed reports whether the primary mouse button is held.
func (c *Canvas) MousePressed() bool { return c.input.MousePressed() }

// FrameCount returns the number of frames drawn so far. It reads 0 during
// the first Draw.
func (c *Canvas) FrameCount() int {
	return c.frameCount
}

// FrameRate records the frame rate the sketch wants. Values <= 0 select
// DefaultFrameRate. Pacing itself is up to the host.
func (c *Canvas) FrameRate(fps int) {
	if fps <= 0 {
		fps = DefaultFrameRate
	}
	c.frameRate = fps
}

// TargetFrameRate returns the frame rate last requested with FrameRate.
func (c *Canvas) TargetFrameRate() int {
	return c.frameRate
}
