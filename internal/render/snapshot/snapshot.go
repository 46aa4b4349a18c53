// Package snapshot implements the render interfaces on top of an offscreen
// gg drawing context, so a frame can be produced without a window and
// saved as a PNG.
package snapshot

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"chosenoffset.com/rastervis/internal/render"
)

// Renderer implements render.Renderer with gg's software rasterizer.
type Renderer struct {
	fontSource *text.FontSource
	faces      map[float64]text.Face
}

// NewRenderer creates a renderer with the Go Regular font loaded for text.
func NewRenderer() (*Renderer, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return &Renderer{
		fontSource: src,
		faces:      make(map[float64]text.Face),
	}, nil
}

// NewFrame creates a transparent offscreen image.
func (r *Renderer) NewFrame(width, height int) *Image {
	return &Image{dc: gg.NewContext(width, height)}
}

// FillRect draws a filled axis-aligned rectangle.
func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	dc := unwrap(dst)
	setColor(dc, clr)
	dc.DrawRectangle(float64(x), float64(y), float64(width), float64(height))
	_ = dc.Fill()
}

// StrokeRect draws a rectangle outline.
func (r *Renderer) StrokeRect(dst render.Image, x, y, width, height float32, strokeWidth float32, clr color.Color) {
	dc := unwrap(dst)
	setColor(dc, clr)
	dc.SetLineWidth(float64(strokeWidth))
	dc.DrawRectangle(float64(x), float64(y), float64(width), float64(height))
	_ = dc.Stroke()
}

// StrokeLine draws a straight line.
func (r *Renderer) StrokeLine(dst render.Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color) {
	dc := unwrap(dst)
	setColor(dc, clr)
	dc.SetLineWidth(float64(strokeWidth))
	dc.DrawLine(float64(x0), float64(y0), float64(x1), float64(y1))
	_ = dc.Stroke()
}

// FillCircle draws a filled circle.
func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	dc := unwrap(dst)
	setColor(dc, clr)
	dc.DrawCircle(float64(x), float64(y), float64(radius))
	_ = dc.Fill()
}

// DrawText draws text with its top-left corner at (x, y).
func (r *Renderer) DrawText(dst render.Image, str string, x, y float64, clr color.Color, size float64) {
	dc := unwrap(dst)
	face := r.face(size)
	setColor(dc, clr)
	dc.SetFont(face)
	// gg positions text by its baseline.
	dc.DrawString(str, x, y+face.Metrics().Ascent)
}

// MeasureText measures the width and height of text at the given size.
func (r *Renderer) MeasureText(str string, size float64) (width, height float64) {
	face := r.face(size)
	m := face.Metrics()
	return face.Advance(str), m.Ascent + m.Descent
}

func (r *Renderer) face(size float64) text.Face {
	if f, ok := r.faces[size]; ok {
		return f
	}
	f := r.fontSource.Face(size)
	r.faces[size] = f
	return f
}

// Image is an offscreen render target backed by a gg.Context.
type Image struct {
	dc *gg.Context
}

// Size returns the width and height of the image.
func (i *Image) Size() (width, height int) {
	return i.dc.Width(), i.dc.Height()
}

// Fill fills the entire image with the given color.
func (i *Image) Fill(clr color.Color) {
	i.dc.ClearWithColor(toRGBA(clr))
}

// Dispose releases the drawing context.
func (i *Image) Dispose() {
	_ = i.dc.Close()
}

// Image returns the rendered pixels.
func (i *Image) Image() image.Image {
	return i.dc.Image()
}

// SavePNG writes the image to path.
func (i *Image) SavePNG(path string) error {
	if err := i.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

func unwrap(img render.Image) *gg.Context {
	return img.(*Image).dc
}

func setColor(dc *gg.Context, clr color.Color) {
	c := toRGBA(clr)
	dc.SetRGBA(c.R, c.G, c.B, c.A)
}

// toRGBA converts to gg's straight-alpha color.
func toRGBA(clr color.Color) gg.RGBA {
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	return gg.RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}
