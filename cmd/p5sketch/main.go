// Command p5sketch runs one of the bundled p5 demo sketches, in a window
// or headless.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/p5go/p5"
	"github.com/p5go/p5/host"
	"github.com/p5go/p5/internal/config"
	"github.com/p5go/p5/internal/sketches"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file")
		name       = flag.String("sketch", "", "sketch to run: "+strings.Join(sketches.Names(), ", "))
		headless   = flag.Bool("headless", false, "run without a window")
		frames     = flag.Uint64("frames", 0, "stop after N frames in headless mode (0 = run forever)")
		hz         = flag.Int("hz", 0, "headless tick rate (0 = the sketch's frame rate)")
		scale      = flag.Int("scale", 0, "window pixel scale")
		seed       = flag.Uint64("seed", 0, "random seed (0 = random)")
		logLevel   = flag.String("log-level", "", "debug, info, warn or error")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Flags given explicitly win over file and environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sketch":
			cfg.Sketch = *name
		case "headless":
			cfg.Headless = *headless
		case "frames":
			cfg.Frames = *frames
		case "hz":
			cfg.Hz = *hz
		case "scale":
			cfg.Scale = max(*scale, 1)
		case "seed":
			cfg.Seed = *seed
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	level, err := cfg.SlogLevel()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	p5.SetLogger(logger)

	if err := run(cfg); err != nil {
		slog.Error("p5sketch", "sketch", cfg.Sketch, "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	s, ok := sketches.Lookup(cfg.Sketch)
	if !ok {
		return fmt.Errorf("unknown sketch %q (have %s)", cfg.Sketch, strings.Join(sketches.Names(), ", "))
	}

	var opts []p5.CanvasOption
	if cfg.Seed != 0 {
		opts = append(opts, p5.WithSeed(cfg.Seed))
	}
	c := p5.NewCanvas(opts...)

	if !cfg.Headless {
		return host.RunWindow(c, s, host.WindowConfig{Title: cfg.Title + " - " + cfg.Sketch, Scale: cfg.Scale})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err := host.RunHeadless(ctx, c, s, host.LogPresenter(), host.HeadlessConfig{
		Hz:     cfg.Hz,
		Frames: cfg.Frames,
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return err
	}
	slog.Info("p5sketch: done", "sketch", cfg.Sketch, "frames", c.FrameCount())
	return nil
}
