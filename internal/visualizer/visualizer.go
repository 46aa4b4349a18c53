// Package visualizer animates the precomputed raster sequences: each tick
// reveals a longer prefix of every sequence, side by side in labelled
// panels, with pause, reset and exit controls.
package visualizer

import (
	"errors"
	"log"

	"chosenoffset.com/rastervis/internal/config"
	"chosenoffset.com/rastervis/internal/core/animation"
	"chosenoffset.com/rastervis/internal/core/raster"
	"chosenoffset.com/rastervis/internal/render"
	"chosenoffset.com/rastervis/internal/scene"
)

// Visualizer holds all state needed to update and draw a frame.
// It implements render.Game.
type Visualizer struct {
	ScreenWidth  int
	ScreenHeight int
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Cache        *scene.RasterCache
	State        animation.State
	Ticker       *animation.Ticker
	Panels       []Panel
}

// New creates a visualizer for cache. input may be nil when the
// visualizer is only drawn and never updated, as in snapshots.
func New(cfg *config.Config, cache *scene.RasterCache, r render.Renderer, input render.InputManager, tps int) (*Visualizer, error) {
	if cache == nil {
		return nil, errors.New("visualizer: nil raster cache")
	}
	state, err := animation.New(cfg.Animation.MaxSteps)
	if err != nil {
		return nil, err
	}
	state.Paused = cfg.Animation.StartPaused
	panels, err := SelectPanels(cfg.Panels)
	if err != nil {
		return nil, err
	}

	return &Visualizer{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		Renderer:     r,
		InputMgr:     input,
		Cache:        cache,
		State:        state,
		Ticker:       animation.NewTicker(cfg.Animation.StepInterval(), tps),
		Panels:       panels,
	}, nil
}

// Update handles the controls and advances the animation.
func (v *Visualizer) Update() error {
	if v.InputMgr != nil {
		if v.InputMgr.IsKeyJustPressed(render.KeyEscape) {
			log.Println("Exit requested")
			return render.ErrTerminated
		}
		if v.InputMgr.IsKeyJustPressed(render.KeySpace) {
			v.State = animation.TogglePause(v.State)
			if v.State.Paused {
				log.Printf("Paused at step %d/%d", v.State.Step, v.State.MaxSteps)
			} else {
				log.Printf("Resumed at step %d/%d", v.State.Step, v.State.MaxSteps)
			}
		}
		if v.InputMgr.IsKeyJustPressed(render.KeyR) {
			v.State = animation.Reset(v.State)
			v.Ticker.Reset()
		}
	}

	if v.State.Paused {
		return nil
	}
	v.State = animation.Advance(v.State, v.Ticker.Update())
	return nil
}

// Layout returns the visualizer's logical screen size.
func (v *Visualizer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.ScreenWidth, v.ScreenHeight
}

// SetStep jumps to step, clamped to the cycle.
func (v *Visualizer) SetStep(step int) {
	v.State.Step = max(0, min(step, v.State.MaxSteps))
}

// Revealed returns the visible prefix of the sequence for algo.
func (v *Visualizer) Revealed(algo raster.Algorithm) raster.Sequence {
	seq := v.Cache.Get(algo)
	return seq.Prefix(animation.Reveal(v.State, seq.Len()))
}
