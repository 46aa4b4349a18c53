// Package config holds the scene description: which primitives are
// rasterized, how fast they are revealed, and the window they are shown in.
// Values are loaded from a JSON file on top of the built-in defaults so a
// file only needs to name what it changes.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"chosenoffset.com/rastervis/internal/core/raster"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds everything the visualizer needs to start.
type Config struct {
	Window    WindowConfig    `json:"window"`
	Animation AnimationConfig `json:"animation"`
	Scene     Scene           `json:"scene"`

	// Panels limits the display to these algorithms. Empty shows all four.
	Panels []raster.Algorithm `json:"panels,omitempty"`
}

// WindowConfig defines the logical screen.
type WindowConfig struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Title     string `json:"title"`
	Resizable bool   `json:"resizable"`
}

// AnimationConfig defines the reveal cadence.
type AnimationConfig struct {
	MaxSteps       int  `json:"max_steps"`        // Steps in one full reveal cycle
	StepIntervalMS int  `json:"step_interval_ms"` // Milliseconds between steps
	StartPaused    bool `json:"start_paused"`
}

// StepInterval returns the step interval as a duration.
func (a AnimationConfig) StepInterval() time.Duration {
	return time.Duration(a.StepIntervalMS) * time.Millisecond
}

// Scene lists the primitive handed to each rasterizer. Coordinates are in
// window units with the origin at the bottom-left corner.
type Scene struct {
	DDA             Segment `json:"dda"`
	BresenhamLine   Segment `json:"bresenham_line"`
	BresenhamCircle Circle  `json:"bresenham_circle"`
	MidpointCircle  Circle  `json:"midpoint_circle"`
}

// Segment is a line between two integer endpoints.
type Segment struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Circle is a center and radius.
type Circle struct {
	XC int `json:"xc"`
	YC int `json:"yc"`
	R  int `json:"r"`
}

// DefaultConfig returns the classic side-by-side comparison layout.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     1600,
			Height:    900,
			Title:     "Algorithm Visualization",
			Resizable: true,
		},
		Animation: AnimationConfig{
			MaxSteps:       150,
			StepIntervalMS: 50,
		},
		Scene: Scene{
			DDA:             Segment{X1: 100, Y1: 630, X2: 350, Y2: 720},
			BresenhamLine:   Segment{X1: 500, Y1: 630, X2: 750, Y2: 720},
			BresenhamCircle: Circle{XC: 225, YC: 385, R: 80},
			MidpointCircle:  Circle{XC: 625, YC: 385, R: 80},
		},
	}
}

// LoadConfig loads a config from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the values the rest of the program relies on.
// Negative radii are left to the rasterizers, which reject them.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Animation.MaxSteps <= 0 {
		return fmt.Errorf("%w: max_steps %d", ErrInvalidConfig, c.Animation.MaxSteps)
	}
	if c.Animation.StepIntervalMS <= 0 {
		return fmt.Errorf("%w: step_interval_ms %d", ErrInvalidConfig, c.Animation.StepIntervalMS)
	}
	seen := make(map[raster.Algorithm]bool, len(c.Panels))
	for _, a := range c.Panels {
		if seen[a] {
			return fmt.Errorf("%w: panel %s listed twice", ErrInvalidConfig, a.Name())
		}
		seen[a] = true
	}
	return nil
}

// Save writes c as indented JSON.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
