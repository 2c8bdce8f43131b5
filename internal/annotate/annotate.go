// Package annotate draws audit findings onto simulator screenshots so an
// agent (or a human) can see exactly which controls failed.
package annotate

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"simaudit/internal/audit"
)

// FailingTouchTargets draws a box and viewId label over every failing touch
// target on a PNG screenshot. scale converts device points to screenshot
// pixels (simulator screenshots are rendered at the device's pixel scale,
// typically 2 or 3). Passing findings are left undrawn.
func FailingTouchTargets(pngData []byte, findings []audit.TouchTargetFinding, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = 1
	}

	img, err := png.Decode(bytes.NewReader(pngData))
	if err != nil {
		return nil, fmt.Errorf("decode screenshot: %w", err)
	}
	rgba := toRGBA(img)

	boxColor := color.RGBA{R: 255, G: 0, B: 0, A: 255}
	textColor := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	outlineColor := color.RGBA{R: 0, G: 0, B: 0, A: 200}

	for _, f := range findings {
		if f.MeetsMinimum {
			continue
		}
		x := int(f.Frame.X * scale)
		y := int(f.Frame.Y * scale)
		w := int(f.Frame.Width * scale)
		h := int(f.Frame.Height * scale)

		drawRectangle(rgba, x, y, x+w, y+h, boxColor)
		drawTextWithOutline(rgba, f.ViewID, x+w/2, y+h/2, textColor, outlineColor)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		return nil, fmt.Errorf("encode screenshot: %w", err)
	}
	return buf.Bytes(), nil
}

func toRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	return rgba
}

func isWithinBounds(bounds image.Rectangle, x, y int) bool {
	return x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y
}

// drawRectangle draws a rectangle outline, clamped to the image bounds.
func drawRectangle(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	bounds := img.Bounds()

	if x1 < bounds.Min.X {
		x1 = bounds.Min.X
	}
	if y1 < bounds.Min.Y {
		y1 = bounds.Min.Y
	}
	if x2 > bounds.Max.X {
		x2 = bounds.Max.X
	}
	if y2 > bounds.Max.Y {
		y2 = bounds.Max.Y
	}

	if x2 <= x1 || y2 <= y1 {
		return
	}

	for x := x1; x < x2; x++ {
		img.Set(x, y1, c)
		img.Set(x, y2-1, c)
	}
	for y := y1; y < y2; y++ {
		img.Set(x1, y, c)
		img.Set(x2-1, y, c)
	}
}

// drawTextWithOutline draws text centered at (x, y) with a 1px outline for
// visibility against arbitrary backgrounds.
func drawTextWithOutline(img *image.RGBA, text string, x, y int, textColor, outlineColor color.Color) {
	// basicfont.Face7x13: ~7px per character, 13px tall.
	textWidth := len(text) * 7
	offsetX := x - textWidth/2
	offsetY := y - 13/2

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			drawString(img, text, offsetX+dx, offsetY+dy, outlineColor)
		}
	}
	drawString(img, text, offsetX, offsetY, textColor)
}

func drawString(img *image.RGBA, text string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(x * 64),
			Y: fixed.Int26_6(y * 64),
		},
	}
	if isWithinBounds(img.Bounds(), x, y) {
		d.DrawString(text)
	}
}
