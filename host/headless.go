package host

import (
	"context"
	"fmt"
	"time"

	"github.com/p5go/p5"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	// Hz overrides the sketch frame rate when positive.
	Hz int
	// Frames stops the run after that many frames (0 = run until ctx ends).
	Frames uint64
	// Unpaced runs frames back to back instead of on a ticker.
	Unpaced bool
}

// RunHeadless runs s on c without opening a window. Setup runs once, then
// one frame per tick is drawn and handed to pr. It returns nil after
// cfg.Frames frames, ctx.Err() on cancellation, or the first presenter
// error.
func RunHeadless(ctx context.Context, c *p5.Canvas, s p5.Sketch, pr Presenter, cfg HeadlessConfig) error {
	if pr == nil {
		pr = LogPresenter()
	}
	s.Setup(c)

	hz := cfg.Hz
	if hz <= 0 {
		hz = c.TargetFrameRate()
	}
	d := time.Second / time.Duration(hz)
	if d <= 0 {
		return fmt.Errorf("host: invalid frame rate: %d", hz)
	}
	p5.Logger().Info("host: headless run", "hz", hz, "frames", cfg.Frames)

	var tick <-chan time.Time
	if !cfg.Unpaced {
		t := time.NewTicker(d)
		defer t.Stop()
		tick = t.C
	}

	var frames uint64
	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		p5.Frame(c, s)
		if err := pr.Present(c.FrameCount(), c.Image()); err != nil {
			return fmt.Errorf("host: present frame %d: %w", c.FrameCount(), err)
		}
		frames++
		if cfg.Frames > 0 && frames >= cfg.Frames {
			return nil
		}
	}
}
