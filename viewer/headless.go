package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/netisu/orrery"
	"github.com/schollz/progressbar/v3"
)

// HeadlessConfig controls the no-window PNG renderer.
type HeadlessConfig struct {
	Enabled bool
	Frames  int
	Out     string
	Every   int
	Warp    int
}

// RunHeadless steps the scene with a fixed frame delay and saves every
// Every-th frame as frame_00000.png and so on.
func RunHeadless(ctx context.Context, scene *orrery.Scene, cfg HeadlessConfig) error {
	if cfg.Frames <= 0 {
		return fmt.Errorf("invalid frame count: %d", cfg.Frames)
	}
	if cfg.Every <= 0 {
		cfg.Every = 1
	}
	if err := os.MkdirAll(cfg.Out, 0o755); err != nil {
		return err
	}

	bar := progressbar.Default(int64(cfg.Frames), "rendering")
	defer bar.Finish()

	dt := scene.Config.FrameDelay
	for i := 0; i < cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var in orrery.Input
		if i == 0 {
			in.Warp = cfg.Warp
		}
		scene.Frame(in, dt)

		if i%cfg.Every == 0 {
			path := filepath.Join(cfg.Out, fmt.Sprintf("frame_%05d.png", i))
			if err := scene.SavePNG(path); err != nil {
				return err
			}
		}
		bar.Add(1)
	}
	return nil
}
