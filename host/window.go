//go:build cgo

package host

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/p5go/p5"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title string
	// Scale enlarges each canvas pixel to Scale × Scale window pixels.
	Scale int
}

// RunWindow opens a window showing c and runs s in it until the window
// closes. Setup runs before the window opens, so the sketch's Size and
// FrameRate decide the window size and tick rate.
func RunWindow(c *p5.Canvas, s p5.Sketch, cfg WindowConfig) error {
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}
	if cfg.Title == "" {
		cfg.Title = "p5"
	}
	s.Setup(c)

	g := &windowGame{
		c:      c,
		s:      s,
		scale:  cfg.Scale,
		width:  c.Width(),
		height: c.Height(),
		fps:    c.TargetFrameRate(),
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(c.Width()*cfg.Scale, c.Height()*cfg.Scale)
	ebiten.SetTPS(c.TargetFrameRate())
	p5.Logger().Info("host: window run", "width", c.Width(), "height", c.Height(),
		"scale", cfg.Scale, "fps", c.TargetFrameRate())

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("host: run window: %w", err)
	}
	return nil
}

// windowGame adapts a sketch to ebiten.Game. Update and Draw both run on
// ebiten's game goroutine, which keeps the canvas confined to it.
type windowGame struct {
	c     *p5.Canvas
	s     p5.Sketch
	scale int

	width, height int
	fps           int

	scaled *image.RGBA
	fbImg  *ebiten.Image
}

func (g *windowGame) Update() error {
	pollInput(g.c.Input(), g.scale)
	p5.Frame(g.c, g.s)

	// The sketch may resize or retime itself mid-run.
	if g.c.Width() != g.width || g.c.Height() != g.height {
		g.width, g.height = g.c.Width(), g.c.Height()
		ebiten.SetWindowSize(g.width*g.scale, g.height*g.scale)
	}
	if fps := g.c.TargetFrameRate(); fps != g.fps {
		g.fps = fps
		ebiten.SetTPS(fps)
	}
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	pm := g.c.Pixmap()
	w, h := pm.Width()*g.scale, pm.Height()*g.scale
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != w || g.fbImg.Bounds().Dy() != h {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(w, h)
	}

	if g.scale == 1 {
		g.fbImg.WritePixels(pm.Data())
	} else {
		g.scaled = ScaleImage(g.scaled, pm, g.scale)
		g.fbImg.WritePixels(g.scaled.Pix)
	}
	screen.DrawImage(g.fbImg, nil)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.c.Width() * g.scale, g.c.Height() * g.scale
}
