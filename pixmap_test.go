package p5

import (
	"image"
	"image/color"
	"testing"
)

// Verify at compile time that Pixmap implements image.Image.
var _ image.Image = (*Pixmap)(nil)

func TestNewPixmapIsOpaqueBlack(t *testing.T) {
	p := NewPixmap(3, 2)
	if len(p.Data()) != 3*2*4 {
		t.Fatalf("len(Data()) = %d, want %d", len(p.Data()), 3*2*4)
	}
	for i := 0; i < len(p.Data()); i += 4 {
		px := p.Data()[i : i+4]
		if px[0] != 0 || px[1] != 0 || px[2] != 0 || px[3] != 0xff {
			t.Fatalf("pixel %d = %v, want opaque black", i/4, px)
		}
	}
}

func TestPixmapSetPixel(t *testing.T) {
	p := NewPixmap(4, 3)
	p.SetPixel(2, 1, RGB(9, 8, 7))

	i := (1*4 + 2) * 4
	if got := p.Data()[i : i+4]; got[0] != 9 || got[1] != 8 || got[2] != 7 || got[3] != 0xff {
		t.Errorf("data at (2,1) = %v, want [9 8 7 255]", got)
	}
	if got := p.Pixel(2, 1); got != RGB(9, 8, 7) {
		t.Errorf("Pixel(2, 1) = %v", got)
	}
	if got := p.Packed(2, 1); got != 0xff090807 {
		t.Errorf("Packed(2, 1) = %#08x, want 0xff090807", got)
	}
}

func TestPixmapSetPixel_OutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x == width", 4, 0},
		{"y == height", 0, 3},
		{"far away", 1 << 20, 1 << 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPixmap(4, 3)
			p.SetPixel(tt.x, tt.y, White)
			for i := 0; i < len(p.Data()); i += 4 {
				if p.Data()[i] != 0 {
					t.Fatalf("out-of-range write reached byte %d", i)
				}
			}
			if got := p.Pixel(tt.x, tt.y); got != Black {
				t.Errorf("Pixel(%d, %d) = %v, want black", tt.x, tt.y, got)
			}
		})
	}
}

func TestPixmapClear(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {3, 5}, {17, 9}, {64, 64}} {
		p := NewPixmap(size[0], size[1])
		p.Clear(RGB(1, 2, 3))
		for y := 0; y < size[1]; y++ {
			for x := 0; x < size[0]; x++ {
				if got := p.Pixel(x, y); got != RGB(1, 2, 3) {
					t.Fatalf("%dx%d: Pixel(%d, %d) = %v after Clear", size[0], size[1], x, y, got)
				}
			}
		}
	}
}

func TestPixmapImage(t *testing.T) {
	p := NewPixmap(5, 4)
	p.SetPixel(4, 3, Cyan)

	if got := p.Bounds(); got != image.Rect(0, 0, 5, 4) {
		t.Errorf("Bounds() = %v", got)
	}
	if p.ColorModel() != color.RGBAModel {
		t.Errorf("ColorModel() is not RGBAModel")
	}
	if got := color.RGBAModel.Convert(p.At(4, 3)).(color.RGBA); got != (color.RGBA{0, 255, 255, 255}) {
		t.Errorf("At(4, 3) = %v, want cyan", got)
	}

	img := p.ToImage()
	if got := img.RGBAAt(4, 3); got != (color.RGBA{0, 255, 255, 255}) {
		t.Errorf("ToImage().RGBAAt(4, 3) = %v, want cyan", got)
	}
	img.SetRGBA(0, 0, color.RGBA{1, 1, 1, 255})
	if p.Pixel(0, 0) != Black {
		t.Errorf("ToImage() aliases the pixmap")
	}
}

func BenchmarkPixmapClear(b *testing.B) {
	p := NewPixmap(DefaultWidth, DefaultHeight)
	b.ReportAllocs()
	for b.Loop() {
		p.Clear(RGB(40, 40, 40))
	}
}
