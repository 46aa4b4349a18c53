package visualizer

import (
	"fmt"
	"image/color"

	"chosenoffset.com/rastervis/internal/core/animation"
	"chosenoffset.com/rastervis/internal/core/raster"
	"chosenoffset.com/rastervis/internal/render"
)

const (
	textSize    = 15 // Labels, counters and info lines
	headingSize = 18 // Section headings and titles

	pointSize  = 4.0 // Diameter of a revealed point
	cursorSize = 6.0 // Diameter of the most recently revealed point
	glowAlpha  = 0.3
)

var (
	backgroundColor = rgb(0.12, 0.14, 0.18)
	gridFillColor   = rgb(0.95, 0.95, 0.96)
	gridLineColor   = rgb(0.88, 0.88, 0.9)
	panelFillColor  = rgb(0.18, 0.20, 0.25)
	accentColor     = rgb(0.3, 0.8, 1.0)
	trackColor      = rgb(0.2, 0.25, 0.3)
	white           = rgb(1, 1, 1)
	pausedColor     = rgb(1.0, 0.3, 0.3)
)

// Draw renders one frame to the screen.
func (v *Visualizer) Draw(screen render.Image) {
	screen.Fill(backgroundColor)

	v.drawTextCentered(screen, "ALGORITHM VISUALIZATION - Computer Graphics Assignment", 870, accentColor, headingSize)
	v.drawProgressBar(screen)

	v.drawText(screen, "LINE DRAWING ALGORITHMS", 350, 800, rgb(0.8, 0.9, 1.0), headingSize)
	v.drawText(screen, "CIRCLE DRAWING ALGORITHMS", 330, 510, rgb(1.0, 0.7, 0.9), headingSize)

	for _, p := range v.Panels {
		v.drawPanel(screen, p)
	}
	for _, info := range DefaultInfoPanels() {
		v.drawInfoPanel(screen, info)
	}

	if v.State.Paused {
		v.drawTextCentered(screen, "PAUSED", 440, pausedColor, headingSize)
	}
}

// screenY converts a world y (origin bottom-left, y up) to screen space.
func (v *Visualizer) screenY(y float64) float64 {
	return float64(v.ScreenHeight) - y
}

// fillRect fills a world-space rectangle.
func (v *Visualizer) fillRect(screen render.Image, r Rect, clr color.Color) {
	v.Renderer.FillRect(screen, float32(r.X), float32(v.screenY(r.Y+r.H)), float32(r.W), float32(r.H), clr)
}

// drawText places text with its baseline at world (x, y).
func (v *Visualizer) drawText(screen render.Image, str string, x, y float64, clr color.Color, size float64) {
	v.Renderer.DrawText(screen, str, x, v.screenY(y)-size, clr, size)
}

// drawTextCentered centers text horizontally on the screen, baseline at world y.
func (v *Visualizer) drawTextCentered(screen render.Image, str string, y float64, clr color.Color, size float64) {
	w, _ := v.Renderer.MeasureText(str, size)
	v.drawText(screen, str, (float64(v.ScreenWidth)-w)/2, y, clr, size)
}

func (v *Visualizer) drawProgressBar(screen render.Image) {
	track := Rect{X: 50, Y: 835, W: 1500, H: 15}
	v.fillRect(screen, track, trackColor)

	filled := track
	filled.W = animation.Progress(v.State) * track.W
	if filled.W > 0 {
		v.fillRect(screen, filled, accentColor)
	}
}

func (v *Visualizer) drawPanel(screen render.Image, p Panel) {
	v.drawGridBox(screen, p)

	seq := v.Cache.Get(p.Algorithm)
	shown := v.Revealed(p.Algorithm)
	v.drawPoints(screen, shown, p)

	counter := fmt.Sprintf("Points: %d/%d", shown.Len(), seq.Len())
	v.drawText(screen, counter, p.Box.X+10, p.Box.Y+10, p.Border, textSize)
}

// drawGridBox draws the light background, a 20x20 grid, the colored
// border and the title tab.
func (v *Visualizer) drawGridBox(screen render.Image, p Panel) {
	box := p.Box
	v.fillRect(screen, box, gridFillColor)

	const divisions = 20
	top, bottom := float32(v.screenY(box.Y+box.H)), float32(v.screenY(box.Y))
	for i := 0; i <= divisions; i++ {
		x := float32(box.X + float64(i)*box.W/divisions)
		v.Renderer.StrokeLine(screen, x, top, x, bottom, 1, gridLineColor)

		y := float32(v.screenY(box.Y + float64(i)*box.H/divisions))
		v.Renderer.StrokeLine(screen, float32(box.X), y, float32(box.X+box.W), y, 1, gridLineColor)
	}

	v.Renderer.StrokeRect(screen, float32(box.X), top, float32(box.W), float32(box.H), 3, p.Border)

	tab := Rect{X: box.X + 5, Y: box.Y + box.H - 35, W: 245, H: 30}
	v.fillRect(screen, tab, p.Border)
	v.drawText(screen, p.Algorithm.String(), box.X+15, box.Y+box.H-27, white, headingSize)
}

// drawPoints draws each revealed point as a solid disc with a faint glow
// twice its size layered on top. The newest point is drawn larger.
func (v *Visualizer) drawPoints(screen render.Image, pts raster.Sequence, p Panel) {
	glow := withAlpha(p.Point, glowAlpha)
	for i, pt := range pts {
		size := pointSize
		if i == len(pts)-1 {
			size = cursorSize
		}
		x, y := float32(pt.X), float32(v.screenY(float64(pt.Y)))
		v.Renderer.FillCircle(screen, x, y, float32(size/2), p.Point)
		v.Renderer.FillCircle(screen, x, y, float32(size), glow)
	}
}

func (v *Visualizer) drawInfoPanel(screen render.Image, info InfoPanel) {
	v.fillRect(screen, info.Box, panelFillColor)
	v.Renderer.StrokeRect(screen, float32(info.Box.X), float32(v.screenY(info.Box.Y+info.Box.H)),
		float32(info.Box.W), float32(info.Box.H), 2, info.Border)

	v.drawText(screen, info.Heading, info.HeadX, info.HeadY, info.Border, headingSize)
	for _, line := range info.Lines {
		v.drawText(screen, line.Text, line.X, line.Y, line.Color, textSize)
	}
}
