package p5

// Sketch is implemented by user programs. Hosts call Setup once before the
// first frame and Draw once per frame; neither is called concurrently.
type Sketch interface {
	Setup(c *Canvas)
	Draw(c *Canvas)
}

// SketchFuncs adapts a pair of functions to the Sketch interface. Either
// may be nil.
type SketchFuncs struct {
	SetupFunc func(c *Canvas)
	DrawFunc  func(c *Canvas)
}

// Setup calls SetupFunc if set.
func (s SketchFuncs) Setup(c *Canvas) {
	if s.SetupFunc != nil {
		s.SetupFunc(c)
	}
}

// Draw calls DrawFunc if set.
func (s SketchFuncs) Draw(c *Canvas) {
	if s.DrawFunc != nil {
		s.DrawFunc(c)
	}
}

// Frame runs one frame of s on c and advances the frame counter. The
// buffer is ready for presentation when Frame returns.
func Frame(c *Canvas, s Sketch) {
	s.Draw(c)
	c.frameCount++
}
