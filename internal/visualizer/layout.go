package visualizer

import (
	"fmt"
	"image/color"

	"chosenoffset.com/rastervis/internal/core/raster"
)

// Rect is an axis-aligned box in world coordinates: (X, Y) is the
// bottom-left corner and y grows upwards.
type Rect struct {
	X, Y, W, H float64
}

// Panel is the grid box in which one algorithm's points are revealed.
type Panel struct {
	Algorithm raster.Algorithm
	Box       Rect
	Border    color.NRGBA // Box border and title tab
	Point     color.NRGBA // Rasterized points
}

// DefaultPanels lays the four algorithms out in two rows: lines on top,
// circles below. The default scene coordinates fall inside these boxes.
func DefaultPanels() []Panel {
	return []Panel{
		{
			Algorithm: raster.AlgorithmDDA,
			Box:       Rect{X: 50, Y: 550, W: 350, H: 230},
			Border:    rgb(0.2, 0.6, 1.0),
			Point:     rgb(0.2, 0.6, 1.0),
		},
		{
			Algorithm: raster.AlgorithmBresenhamLine,
			Box:       Rect{X: 450, Y: 550, W: 350, H: 230},
			Border:    rgb(0.1, 0.8, 0.2),
			Point:     rgb(0.1, 0.8, 0.2),
		},
		{
			Algorithm: raster.AlgorithmBresenhamCircle,
			Box:       Rect{X: 50, Y: 270, W: 350, H: 230},
			Border:    rgb(1.0, 0.2, 0.6),
			Point:     rgb(1.0, 0.2, 0.6),
		},
		{
			Algorithm: raster.AlgorithmMidpointCircle,
			Box:       Rect{X: 450, Y: 270, W: 350, H: 230},
			Border:    rgb(0.2, 0.6, 1.0),
			Point:     rgb(0.2, 0.6, 1.0),
		},
	}
}

// SelectPanels returns the default panels for the given algorithms, each
// in its usual position. An empty list selects all of them.
func SelectPanels(algos []raster.Algorithm) ([]Panel, error) {
	all := DefaultPanels()
	if len(algos) == 0 {
		return all, nil
	}
	byAlgo := make(map[raster.Algorithm]Panel, len(all))
	for _, p := range all {
		byAlgo[p.Algorithm] = p
	}
	panels := make([]Panel, 0, len(algos))
	for _, a := range algos {
		p, ok := byAlgo[a]
		if !ok {
			return nil, fmt.Errorf("visualizer: no panel for %v", a)
		}
		panels = append(panels, p)
	}
	return panels, nil
}

// InfoPanel is a bordered box of explanatory text.
type InfoPanel struct {
	Box     Rect
	Border  color.NRGBA
	Heading string
	HeadX   float64 // Heading baseline, world coordinates
	HeadY   float64
	Lines   []InfoLine
}

// InfoLine is one line of text placed at a world-space baseline.
type InfoLine struct {
	X, Y  float64
	Text  string
	Color color.NRGBA
}

// DefaultInfoPanels returns the side panels describing each family of
// algorithms and the summary strip at the bottom.
func DefaultInfoPanels() []InfoPanel {
	return []InfoPanel{
		{
			Box:     Rect{X: 850, Y: 550, W: 700, H: 230},
			Border:  rgb(0.3, 0.8, 1.0),
			Heading: "LINE ALGORITHMS",
			HeadX:   1030, HeadY: 750,
			Lines: []InfoLine{
				{880, 710, "DDA (Digital Differential Analyzer)", rgb(0.7, 0.85, 1.0)},
				{900, 685, "Floating-point calculations", rgb(0.5, 0.7, 0.9)},
				{900, 665, "Simple but slower", rgb(0.5, 0.7, 0.9)},
				{880, 630, "Bresenham Line Algorithm", rgb(0.5, 1.0, 0.6)},
				{900, 605, "Integer-only arithmetic", rgb(0.4, 0.8, 0.5)},
				{900, 585, "Faster & more efficient", rgb(0.4, 0.8, 0.5)},
				{900, 565, "Industry standard", rgb(0.4, 0.8, 0.5)},
			},
		},
		{
			Box:     Rect{X: 850, Y: 270, W: 700, H: 230},
			Border:  rgb(1.0, 0.4, 0.8),
			Heading: "CIRCLE ALGORITHMS",
			HeadX:   1010, HeadY: 470,
			Lines: []InfoLine{
				{880, 430, "Bresenham Circle Algorithm", rgb(1.0, 0.6, 0.9)},
				{900, 405, "Integer decision parameter", rgb(0.9, 0.5, 0.8)},
				{900, 385, "8-way symmetry optimization", rgb(0.9, 0.5, 0.8)},
				{880, 350, "Midpoint Circle Algorithm", rgb(0.6, 0.8, 1.0)},
				{900, 325, "Implicit circle equation", rgb(0.5, 0.7, 0.9)},
				{900, 305, "Similar efficiency", rgb(0.5, 0.7, 0.9)},
				{900, 285, "Simpler decision logic", rgb(0.5, 0.7, 0.9)},
			},
		},
		{
			Box:     Rect{X: 50, Y: 50, W: 1500, H: 190},
			Border:  rgb(1.0, 0.8, 0.2),
			Heading: "KEY OBSERVATIONS",
			HeadX:   650, HeadY: 210,
			Lines: []InfoLine{
				{80, 175, "Integer algorithms avoid rounding errors and are faster", rgb(0.9, 0.9, 0.7)},
				{80, 150, "Circle algorithms use 8-way symmetry (plot 8 points per iteration)", rgb(0.9, 0.9, 0.7)},
				{80, 125, "Bresenham algorithms are hardware-optimized", rgb(0.9, 0.9, 0.7)},
				{80, 100, "All produce pixel-perfect results", rgb(0.9, 0.9, 0.7)},
				{80, 70, "Controls: SPACE = Pause/Resume | R = Reset | ESC = Exit", rgb(0.5, 0.7, 0.9)},
			},
		},
	}
}

// rgb builds an opaque color from components in [0, 1].
func rgb(r, g, b float64) color.NRGBA {
	return color.NRGBA{R: unit(r), G: unit(g), B: unit(b), A: 0xff}
}

// withAlpha returns c with its alpha replaced by a in [0, 1].
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = unit(a)
	return c
}

func unit(v float64) uint8 {
	return uint8(max(0, min(1, v))*255 + 0.5)
}
