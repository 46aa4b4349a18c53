// Package animation tracks how far the rasterized sequences have been
// revealed. All functions are pure and independent of any event loop:
// the caller decides when ticks happen and feeds them to Advance.
package animation

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidMaxSteps is returned by New when the cycle length is not positive.
var ErrInvalidMaxSteps = errors.New("animation: max steps must be positive")

// State is the reveal position within a repeating animation cycle.
// A cycle runs Step from 0 to MaxSteps inclusive, then wraps to 0.
type State struct {
	Step     int
	MaxSteps int
	Paused   bool
}

// New returns a running state at step 0.
func New(maxSteps int) (State, error) {
	if maxSteps <= 0 {
		return State{}, fmt.Errorf("%w: got %d", ErrInvalidMaxSteps, maxSteps)
	}
	return State{MaxSteps: maxSteps}, nil
}

// Advance moves s forward by elapsedTicks steps, wrapping past MaxSteps.
// A paused state, or a non-positive tick count, is returned unchanged.
func Advance(s State, elapsedTicks int) State {
	if s.Paused || elapsedTicks <= 0 || s.MaxSteps <= 0 {
		return s
	}
	s.Step = (s.Step + elapsedTicks) % (s.MaxSteps + 1)
	return s
}

// TogglePause flips the pause flag.
func TogglePause(s State) State {
	s.Paused = !s.Paused
	return s
}

// Reset rewinds to step 0. The pause flag is kept.
func Reset(s State) State {
	s.Step = 0
	return s
}

// Progress returns the cycle completion in [0, 1].
func Progress(s State) float64 {
	if s.MaxSteps <= 0 {
		return 0
	}
	return math.Min(1, math.Max(0, float64(s.Step)/float64(s.MaxSteps)))
}

// Reveal returns how many points of a sequence of the given length are
// visible at s: floor(Step * length / MaxSteps), clamped to [0, length].
func Reveal(s State, length int) int {
	if s.MaxSteps <= 0 || length <= 0 || s.Step <= 0 {
		return 0
	}
	n := s.Step * length / s.MaxSteps
	return min(n, length)
}

// Ticker converts engine updates into animation ticks. The engine calls
// Update TPS times per second; one animation tick is due every Interval.
type Ticker struct {
	Interval time.Duration
	TPS      int

	pending int
}

// NewTicker returns a Ticker for the given step interval and update rate.
func NewTicker(interval time.Duration, tps int) *Ticker {
	return &Ticker{Interval: interval, TPS: tps}
}

// UpdatesPerTick is the number of engine updates that make up one tick,
// rounded up and never less than one.
func (t *Ticker) UpdatesPerTick() int {
	if t.TPS <= 0 || t.Interval <= 0 {
		return 1
	}
	n := int(math.Ceil(t.Interval.Seconds() * float64(t.TPS)))
	return max(n, 1)
}

// Update records one engine update and returns the number of animation
// ticks that became due, which is zero or one.
func (t *Ticker) Update() int {
	t.pending++
	if t.pending < t.UpdatesPerTick() {
		return 0
	}
	t.pending = 0
	return 1
}

// Reset drops any partially accumulated updates.
func (t *Ticker) Reset() {
	t.pending = 0
}
