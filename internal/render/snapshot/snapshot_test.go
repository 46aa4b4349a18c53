package snapshot

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func near(a, b uint32) bool {
	d := int(a>>8) - int(b>>8)
	return d >= -2 && d <= 2
}

func assertColor(t *testing.T, img *Image, x, y int, want color.Color) {
	t.Helper()
	r, g, b, a := img.Image().At(x, y).RGBA()
	wr, wg, wb, wa := want.RGBA()
	if !near(r, wr) || !near(g, wg) || !near(b, wb) || !near(a, wa) {
		t.Errorf("pixel (%d, %d): expected %v, got %v", x, y, want, img.Image().At(x, y))
	}
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}

func TestFillAndRect(t *testing.T) {
	r := newTestRenderer(t)
	frame := r.NewFrame(32, 32)
	defer frame.Dispose()

	if w, h := frame.Size(); w != 32 || h != 32 {
		t.Fatalf("Expected 32x32, got %dx%d", w, h)
	}

	red := color.NRGBA{R: 0xff, A: 0xff}
	blue := color.NRGBA{B: 0xff, A: 0xff}
	frame.Fill(red)
	r.FillRect(frame, 8, 8, 16, 16, blue)

	assertColor(t, frame, 2, 2, red)
	assertColor(t, frame, 16, 16, blue)
}

func TestFillCircle(t *testing.T) {
	r := newTestRenderer(t)
	frame := r.NewFrame(32, 32)
	defer frame.Dispose()

	green := color.NRGBA{G: 0xff, A: 0xff}
	r.FillCircle(frame, 16, 16, 6, green)

	assertColor(t, frame, 16, 16, green)
	assertColor(t, frame, 1, 1, color.NRGBA{})
}

func TestMeasureText(t *testing.T) {
	r := newTestRenderer(t)
	short, h := r.MeasureText("ab", 15)
	long, _ := r.MeasureText("abcdef", 15)
	if short <= 0 || h <= 0 {
		t.Fatalf("Expected positive text size, got %vx%v", short, h)
	}
	if long <= short {
		t.Errorf("Expected longer text to be wider: %v <= %v", long, short)
	}
}

func TestSavePNG(t *testing.T) {
	r := newTestRenderer(t)
	frame := r.NewFrame(16, 16)
	defer frame.Dispose()
	frame.Fill(color.White)
	r.DrawText(frame, "x", 2, 2, color.Black, 10)

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := frame.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Expected PNG on disk: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected non-empty PNG")
	}
}
