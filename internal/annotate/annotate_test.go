package annotate

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"simaudit/internal/audit"
	"simaudit/internal/model"
)

func whiteScreenshot(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return buf.Bytes()
}

func TestFailingTouchTargets_DrawsBox(t *testing.T) {
	data := whiteScreenshot(t, 200, 200)
	findings := []audit.TouchTargetFinding{
		{ViewID: "btn1", Frame: model.Rect{X: 10, Y: 10, Width: 30, Height: 30}, MeetsMinimum: false},
	}

	out, err := FailingTouchTargets(data, findings, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	// Bottom edge of the box, well clear of the centered label.
	r, g, b, _ := img.At(10, 39).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("expected red box pixel at (10,39), got %d,%d,%d", r>>8, g>>8, b>>8)
	}
}

func TestFailingTouchTargets_PassingIgnored(t *testing.T) {
	data := whiteScreenshot(t, 100, 100)
	findings := []audit.TouchTargetFinding{
		{ViewID: "ok1", Frame: model.Rect{X: 5, Y: 5, Width: 44, Height: 44}, MeetsMinimum: true},
	}

	out, err := FailingTouchTargets(data, findings, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	img, _ := png.Decode(bytes.NewReader(out))
	r, g, b, _ := img.At(5, 5).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("passing target must not be drawn, got %d,%d,%d", r>>8, g>>8, b>>8)
	}
}

func TestFailingTouchTargets_ScaleApplied(t *testing.T) {
	data := whiteScreenshot(t, 200, 200)
	findings := []audit.TouchTargetFinding{
		{ViewID: "x", Frame: model.Rect{X: 10, Y: 10, Width: 20, Height: 20}, MeetsMinimum: false},
	}

	out, err := FailingTouchTargets(data, findings, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	img, _ := png.Decode(bytes.NewReader(out))
	r, _, _, _ := img.At(20, 20).RGBA()
	if r>>8 != 255 {
		t.Error("expected box at scaled position (20,20)")
	}
}

func TestFailingTouchTargets_InvalidPNG(t *testing.T) {
	if _, err := FailingTouchTargets([]byte("not a png"), nil, 1); err == nil {
		t.Error("expected decode error")
	}
}

func TestFailingTouchTargets_OffscreenFrameTolerated(t *testing.T) {
	data := whiteScreenshot(t, 50, 50)
	findings := []audit.TouchTargetFinding{
		{ViewID: "neg", Frame: model.Rect{X: -100, Y: -100, Width: 10, Height: 10}, MeetsMinimum: false},
		{ViewID: "far", Frame: model.Rect{X: 500, Y: 500, Width: 10, Height: 10}, MeetsMinimum: false},
	}
	if _, err := FailingTouchTargets(data, findings, 1); err != nil {
		t.Errorf("offscreen frames must not fail: %v", err)
	}
}
