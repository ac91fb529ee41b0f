// Command viewer animates the solar system in a window, or renders a
// numbered PNG sequence with -headless.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/netisu/orrery"
)

func main() {
	var (
		configPath string
		cfg        HeadlessConfig
	)
	flag.StringVar(&configPath, "config", "", "YAML config file (defaults to the built-in system).")
	flag.BoolVar(&cfg.Enabled, "headless", false, "Render frames to PNG files instead of opening a window.")
	flag.IntVar(&cfg.Frames, "frames", 120, "Frames to render in headless mode.")
	flag.StringVar(&cfg.Out, "out", "frames", "Output directory for headless frames.")
	flag.IntVar(&cfg.Every, "every", 1, "Write every Nth frame in headless mode.")
	flag.IntVar(&cfg.Warp, "warp", 0, "Warp to this 1-based planet on the first headless frame.")
	flag.Parse()

	conf := orrery.DefaultConfig()
	if configPath != "" {
		var err error
		if conf, err = orrery.LoadConfig(configPath); err != nil {
			log.Fatal(err)
		}
	}
	scene, err := orrery.NewScene(conf)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("viewer: %dx%d (x%d), %d bodies", conf.Width, conf.Height, conf.Scale, len(scene.Bodies)+1)

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := RunHeadless(ctx, scene, cfg); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatal(err)
		}
		return
	}

	if err := RunWindow(scene); err != nil {
		log.Fatal(err)
	}
}
