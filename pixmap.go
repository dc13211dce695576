package p5

import (
	"image"
	"image/color"
)

// Pixmap is the canvas pixel buffer: row-major, top to bottom, four bytes
// per pixel in R, G, B, A order. Alpha is always 0xFF.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a pixmap cleared to opaque black.
// Allocation failure is not recoverable; the runtime aborts the process.
func NewPixmap(width, height int) *Pixmap {
	p := &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
	p.Clear(Black)
	return p
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw RGBA pixel data. The slice aliases the pixmap.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// In reports whether (x, y) addresses a pixel of the pixmap.
func (p *Pixmap) In(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// SetPixel overwrites a single pixel. Out-of-range writes are ignored.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if !p.In(x, y) {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = 0xff
}

// Pixel returns the color at (x, y), or black outside the pixmap.
func (p *Pixmap) Pixel(x, y int) Color {
	if !p.In(x, y) {
		return Black
	}
	i := (y*p.width + x) * 4
	return Color{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2]}
}

// Packed returns the pixel at (x, y) as a 0xAARRGGBB word.
func (p *Pixmap) Packed(x, y int) uint32 {
	return p.Pixel(x, y).Packed()
}

// Clear fills the entire pixmap with an opaque color.
func (p *Pixmap) Clear(c Color) {
	if len(p.data) == 0 {
		return
	}
	p.data[0], p.data[1], p.data[2], p.data[3] = c.R, c.G, c.B, 0xff
	// Double the filled prefix until the buffer is covered.
	for n := 4; n < len(p.data); n *= 2 {
		copy(p.data[n:], p.data[:n])
	}
}

// ToImage copies the pixmap into a new image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.Pixel(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
