// Package p5 is an immediate-mode 2D software renderer with a p5-style
// drawing API.
//
// # Overview
//
// A sketch issues drawing calls against a Canvas, and each call rasterizes
// straight into the canvas pixel buffer. There is no retained scene and no
// anti-aliasing: the last write to a pixel wins.
//
// # Quick Start
//
//	c := p5.NewCanvas(p5.WithSize(320, 240))
//	c.Background(40, 40, 40)
//	c.Fill(0, 255, 0)
//	c.Stroke(255, 255, 255)
//	c.Rect(10, 10, 50, 30)
//
//	c.Push()
//	c.Translate(160, 120)
//	c.ArcMode(-40, -40, 80, 80, 0, math.Pi, p5.Pie)
//	c.Pop()
//
//	img := c.Image() // *image.RGBA copy for presentation
//
// # Architecture
//
//   - Canvas: pixel buffer, draw state, transform stack, input snapshot
//   - Pixmap: row-major opaque RGBA buffer read by hosts
//   - internal/raster: per-primitive algorithms (Bresenham lines,
//     midpoint ellipses, scanline triangles, sampled arcs)
//   - host: frame loops that drive a Sketch and present its buffer
//
// Every primitive plots through a single pixel sink that applies the
// current transform, rounds to the nearest device pixel and discards
// pixels outside the canvas.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Arc angles start at +X and increase clockwise on screen
package p5
