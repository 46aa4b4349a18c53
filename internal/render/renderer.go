package render

import (
	"errors"
	"image/color"
)

// ErrTerminated is returned from Game.Update to end the game loop
// normally. Engines treat it as a clean shutdown, not a failure.
var ErrTerminated = errors.New("render: terminated")

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. This allows swapping rendering backends without changing
// visualizer logic.
//
// All coordinates are in screen space: origin at the top-left, y down.
type Renderer interface {
	// Vector operations (for drawing shapes)
	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	StrokeRect(dst Image, x, y, width, height float32, strokeWidth float32, clr color.Color)
	StrokeLine(dst Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)

	// Text operations. (x, y) is the top-left of the text box and size is
	// the font size in pixels.
	DrawText(dst Image, text string, x, y float64, clr color.Color, size float64)
	MeasureText(text string, size float64) (width, height float64)
}

// Image represents a renderable image surface that can be drawn to.
// Backends unwrap it to their own image type.
type Image interface {
	Fill(clr color.Color)
}

// InputManager handles input from the user.
type InputManager interface {
	IsKeyJustPressed(key Key) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the visualizer controls
const (
	KeySpace  Key = iota // Pause/resume
	KeyR                 // Reset
	KeyEscape            // Exit
)

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	// Returning ErrTerminated ends the loop cleanly.
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// TPS returns the number of Update calls per second.
	TPS() int

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
