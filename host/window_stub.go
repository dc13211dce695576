//go:build !cgo

package host

import (
	"errors"

	"github.com/p5go/p5"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title string
	Scale int
}

// RunWindow is unavailable without cgo; use RunHeadless instead.
func RunWindow(_ *p5.Canvas, _ p5.Sketch, _ WindowConfig) error {
	return errors.New("host: window mode requires cgo (build with CGO_ENABLED=1)")
}
