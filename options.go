package p5

import "log/slog"

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	// Deterministic canvas for tests
//	c := p5.NewCanvas(p5.WithSize(100, 100), p5.WithSeed(1))
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	width, height int
	seed          uint64
	seeded        bool
	logger        *slog.Logger
	input         *Input
}

// defaultOptions returns the default canvas options.
func defaultOptions() canvasOptions {
	return canvasOptions{
		width:  DefaultWidth,
		height: DefaultHeight,
	}
}

// WithSize sets the initial canvas dimensions. Non-positive values keep
// the default size.
func WithSize(width, height int) CanvasOption {
	return func(o *canvasOptions) {
		if width > 0 && height > 0 {
			o.width, o.height = width, height
		}
	}
}

// WithSeed seeds the canvas random generator so Random is reproducible.
// Without it the generator is seeded randomly.
func WithSeed(seed uint64) CanvasOption {
	return func(o *canvasOptions) {
		o.seed = seed
		o.seeded = true
	}
}

// WithLogger gives the canvas its own logger instead of the package one.
func WithLogger(l *slog.Logger) CanvasOption {
	return func(o *canvasOptions) {
		o.logger = l
	}
}

// WithInput shares an input snapshot with the canvas. Hosts use it when
// they own the snapshot; by default the canvas creates its own.
func WithInput(in *Input) CanvasOption {
	return func(o *canvasOptions) {
		o.input = in
	}
}
