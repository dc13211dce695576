// Package host drives p5 sketches: it ticks frames, feeds input into the
// canvas snapshot and hands finished buffers to a presenter.
package host

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/p5go/p5"
)

// Presenter receives each finished frame. The image is a copy, so the
// presenter may keep it or pass it to another goroutine.
type Presenter interface {
	Present(frame int, img *image.RGBA) error
}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func(frame int, img *image.RGBA) error

// Present calls f(frame, img).
func (f PresenterFunc) Present(frame int, img *image.RGBA) error { return f(frame, img) }

// LogPresenter logs one debug line per frame and discards the pixels.
func LogPresenter() Presenter {
	return PresenterFunc(func(frame int, img *image.RGBA) error {
		b := img.Bounds()
		p5.Logger().Debug("host: frame presented", "frame", frame, "width", b.Dx(), "height", b.Dy())
		return nil
	})
}

// ScaleImage upscales src by an integer factor with nearest-neighbor
// sampling, reusing dst when it already has the right size.
func ScaleImage(dst *image.RGBA, src image.Image, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	sb := src.Bounds()
	r := image.Rect(0, 0, sb.Dx()*factor, sb.Dy()*factor)
	if dst == nil || dst.Bounds() != r {
		dst = image.NewRGBA(r)
	}
	xdraw.NearestNeighbor.Scale(dst, r, src, sb, xdraw.Src, nil)
	return dst
}
