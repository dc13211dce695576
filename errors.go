package p5

import "errors"

// Canvas errors. None of them is fatal: the failing call leaves the
// canvas exactly as it was.
var (
	// ErrStackOverflow is returned by Push when the transform stack
	// already holds MaxStackDepth entries.
	ErrStackOverflow = errors.New("p5: matrix stack overflow")

	// ErrStackUnderflow is returned by Pop on an empty transform stack.
	ErrStackUnderflow = errors.New("p5: matrix stack underflow")

	// ErrInvalidSize is returned by Size for non-positive dimensions.
	ErrInvalidSize = errors.New("p5: canvas size must be positive")
)
