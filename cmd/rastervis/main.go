package main

import (
	"context"
	"flag"
	"log"

	"chosenoffset.com/rastervis/internal/config"
	"chosenoffset.com/rastervis/internal/core/raster"
	ebitenrender "chosenoffset.com/rastervis/internal/render/ebiten"
	"chosenoffset.com/rastervis/internal/scene"
	"chosenoffset.com/rastervis/internal/visualizer"
)

func main() {
	configPath := flag.String("config", "rastervis.json", "scene config (defaults are used if the file is missing)")
	writeConfig := flag.String("write-config", "", "write the effective config to this path and exit")
	paused := flag.Bool("paused", false, "start with the animation paused")
	only := flag.String("only", "", "comma-separated algorithms to show, e.g. dda,midpoint-circle")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *paused {
		cfg.Animation.StartPaused = true
	}
	if *only != "" {
		if cfg.Panels, err = raster.ParseAlgorithmList(*only); err != nil {
			log.Fatalf("Invalid -only: %v", err)
		}
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid -only: %v", err)
		}
	}
	if *writeConfig != "" {
		if err := cfg.Save(*writeConfig); err != nil {
			log.Fatal(err)
		}
		log.Printf("Wrote config to %s", *writeConfig)
		return
	}

	// Precompute every sequence once; frames only reveal prefixes.
	cache, err := scene.Build(context.Background(), cfg.Scene)
	if err != nil {
		log.Fatalf("Failed to rasterize scene: %v", err)
	}

	// Initialize the renderer backend (ebiten)
	renderer, err := ebitenrender.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	vis, err := visualizer.New(cfg, cache, renderer, inputMgr, engine.TPS())
	if err != nil {
		log.Fatalf("Failed to create visualizer: %v", err)
	}

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(cfg.Window.Resizable)

	log.Println("Starting visualization...")
	if err := engine.RunGame(vis); err != nil {
		log.Fatal(err)
	}
}
