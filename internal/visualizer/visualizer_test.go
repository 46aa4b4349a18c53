package visualizer

import (
	"context"
	"errors"
	"image/color"
	"strings"
	"testing"

	"chosenoffset.com/rastervis/internal/config"
	"chosenoffset.com/rastervis/internal/core/raster"
	"chosenoffset.com/rastervis/internal/render"
	"chosenoffset.com/rastervis/internal/scene"
)

// fakeRenderer records draw calls instead of drawing.
type fakeRenderer struct {
	circles []float32 // radius of every FillCircle call
	texts   []string
	textX   map[string]float64 // left edge of each text, by content
	rects   int
}

func (r *fakeRenderer) NewImage(width, height int) render.Image {
	return &fakeImage{}
}
func (r *fakeRenderer) FillRect(render.Image, float32, float32, float32, float32, color.Color) {
	r.rects++
}
func (r *fakeRenderer) StrokeRect(render.Image, float32, float32, float32, float32, float32, color.Color) {
}
func (r *fakeRenderer) StrokeLine(render.Image, float32, float32, float32, float32, float32, color.Color) {
}
func (r *fakeRenderer) FillCircle(_ render.Image, _, _, radius float32, _ color.Color) {
	r.circles = append(r.circles, radius)
}
func (r *fakeRenderer) DrawText(_ render.Image, text string, x, _ float64, _ color.Color, _ float64) {
	r.texts = append(r.texts, text)
	if r.textX == nil {
		r.textX = make(map[string]float64)
	}
	r.textX[text] = x
}
func (r *fakeRenderer) MeasureText(text string, size float64) (float64, float64) {
	return float64(len(text)) * size / 2, size
}

type fakeImage struct{}

func (i *fakeImage) Fill(color.Color) {}

// fakeInput reports the keys in pressed as just pressed, once.
type fakeInput struct {
	pressed map[render.Key]bool
}

func (f *fakeInput) IsKeyJustPressed(key render.Key) bool {
	if f.pressed[key] {
		delete(f.pressed, key)
		return true
	}
	return false
}
func (f *fakeInput) press(key render.Key) { f.pressed[key] = true }

func newTestVisualizer(t *testing.T) (*Visualizer, *fakeRenderer, *fakeInput) {
	t.Helper()
	cfg := config.DefaultConfig()
	cache, err := scene.Build(context.Background(), cfg.Scene)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	r := &fakeRenderer{}
	in := &fakeInput{pressed: map[render.Key]bool{}}
	v, err := New(cfg, cache, r, in, 60)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return v, r, in
}

func TestNewRejectsNilCache(t *testing.T) {
	if _, err := New(config.DefaultConfig(), nil, &fakeRenderer{}, nil, 60); err == nil {
		t.Error("Expected error for nil cache")
	}
}

func TestUpdateAdvancesOnCadence(t *testing.T) {
	v, _, _ := newTestVisualizer(t)

	// 50ms per step at 60 TPS: one step every 3 updates.
	for i := 0; i < 30; i++ {
		if err := v.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	if v.State.Step != 10 {
		t.Errorf("Expected step 10 after 30 updates, got %d", v.State.Step)
	}
}

func TestUpdateControls(t *testing.T) {
	v, _, in := newTestVisualizer(t)
	v.SetStep(40)

	in.press(render.KeySpace)
	if err := v.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !v.State.Paused {
		t.Fatal("Expected SPACE to pause")
	}
	for i := 0; i < 10; i++ {
		_ = v.Update()
	}
	if v.State.Step != 40 {
		t.Errorf("Expected step to stay at 40 while paused, got %d", v.State.Step)
	}

	in.press(render.KeyR)
	_ = v.Update()
	if v.State.Step != 0 || !v.State.Paused {
		t.Errorf("Expected R to reset to 0 and stay paused, got %+v", v.State)
	}

	in.press(render.KeySpace)
	_ = v.Update()
	if v.State.Paused {
		t.Error("Expected second SPACE to resume")
	}

	in.press(render.KeyEscape)
	if err := v.Update(); !errors.Is(err, render.ErrTerminated) {
		t.Errorf("Expected ErrTerminated on ESC, got %v", err)
	}
}

func TestRevealed(t *testing.T) {
	v, _, _ := newTestVisualizer(t)

	if got := v.Revealed(raster.AlgorithmDDA).Len(); got != 0 {
		t.Errorf("Expected nothing revealed at step 0, got %d", got)
	}
	v.SetStep(75)
	if got := v.Revealed(raster.AlgorithmDDA).Len(); got != 125 {
		t.Errorf("Expected 125 DDA points at half way, got %d", got)
	}
	v.SetStep(1000)
	if v.State.Step != v.State.MaxSteps {
		t.Errorf("Expected SetStep to clamp to %d, got %d", v.State.MaxSteps, v.State.Step)
	}
	for _, algo := range raster.Algorithms {
		if got, want := v.Revealed(algo).Len(), v.Cache.Get(algo).Len(); got != want {
			t.Errorf("%v: expected all %d points revealed, got %d", algo, want, got)
		}
	}
}

func TestDrawRevealsPoints(t *testing.T) {
	v, r, _ := newTestVisualizer(t)
	screen := r.NewImage(v.ScreenWidth, v.ScreenHeight)

	v.Draw(screen)
	if len(r.circles) != 0 {
		t.Errorf("Expected no points at step 0, got %d circles", len(r.circles))
	}

	v.SetStep(v.State.MaxSteps)
	r.circles = nil
	v.Draw(screen)

	// Two discs (solid and glow) per revealed point.
	if want := 2 * v.Cache.TotalPoints(); len(r.circles) != want {
		t.Errorf("Expected %d circles, got %d", want, len(r.circles))
	}

	found := false
	for _, s := range r.texts {
		if strings.HasPrefix(s, "Points: 251/251") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a full DDA counter, got texts %v", r.texts)
	}
}

func TestDrawPausedOverlay(t *testing.T) {
	v, r, in := newTestVisualizer(t)
	in.press(render.KeySpace)
	_ = v.Update()

	v.Draw(r.NewImage(v.ScreenWidth, v.ScreenHeight))
	x, ok := r.textX["PAUSED"]
	if !ok {
		t.Fatal("Expected PAUSED overlay while paused")
	}
	w, _ := r.MeasureText("PAUSED", headingSize)
	if want := (float64(v.ScreenWidth) - w) / 2; x != want {
		t.Errorf("Expected PAUSED centered at x=%v, got %v", want, x)
	}
}

func TestSelectPanels(t *testing.T) {
	all, err := SelectPanels(nil)
	if err != nil {
		t.Fatalf("SelectPanels: %v", err)
	}
	if len(all) != len(raster.Algorithms) {
		t.Errorf("Expected %d panels, got %d", len(raster.Algorithms), len(all))
	}

	algos, err := raster.ParseAlgorithmList("midpoint-circle,dda")
	if err != nil {
		t.Fatalf("ParseAlgorithmList: %v", err)
	}
	panels, err := SelectPanels(algos)
	if err != nil {
		t.Fatalf("SelectPanels: %v", err)
	}
	if len(panels) != 2 || panels[0].Algorithm != raster.AlgorithmMidpointCircle || panels[1].Algorithm != raster.AlgorithmDDA {
		t.Fatalf("Expected midpoint circle then DDA, got %+v", panels)
	}
	// Selected panels keep their usual position.
	if panels[1].Box != all[0].Box {
		t.Errorf("Expected DDA box %+v, got %+v", all[0].Box, panels[1].Box)
	}

	if _, err := SelectPanels([]raster.Algorithm{raster.Algorithm(42)}); err == nil {
		t.Error("Expected error for an algorithm without a panel")
	}
}

func TestDrawOnlySelectedPanels(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Panels = []raster.Algorithm{raster.AlgorithmDDA}
	cache, err := scene.Build(context.Background(), cfg.Scene)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	r := &fakeRenderer{}
	v, err := New(cfg, cache, r, nil, 60)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	v.SetStep(v.State.MaxSteps)
	v.Draw(r.NewImage(v.ScreenWidth, v.ScreenHeight))

	if want := 2 * cache.DDA.Len(); len(r.circles) != want {
		t.Errorf("Expected %d circles for the DDA panel alone, got %d", want, len(r.circles))
	}
	if _, ok := r.textX[raster.AlgorithmBresenhamLine.String()]; ok {
		t.Error("Expected no Bresenham line panel")
	}
}

func TestPanelsCoverScene(t *testing.T) {
	// Every default point must land inside its panel's box.
	v, _, _ := newTestVisualizer(t)
	for _, p := range v.Panels {
		for _, pt := range v.Cache.Get(p.Algorithm) {
			x, y := float64(pt.X), float64(pt.Y)
			if x < p.Box.X || x > p.Box.X+p.Box.W || y < p.Box.Y || y > p.Box.Y+p.Box.H {
				t.Fatalf("%v: point %v lies outside its panel %+v", p.Algorithm, pt, p.Box)
			}
		}
	}
}
