package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawChevron draws a ◀ or ▶ chevron centered at (cx, cy) with half-height r.
func drawChevron(dst *ebiten.Image, cx, cy, r float32, left bool, clr color.Color) {
	dx := r * 0.6
	if left {
		dx = -dx
	}
	vector.StrokeLine(dst, cx-dx, cy-r, cx+dx, cy, 2, clr, true)
	vector.StrokeLine(dst, cx+dx, cy, cx-dx, cy+r, 2, clr, true)
}

// drawSearchIcon draws a magnifying glass icon at (cx, cy) with given radius.
func drawSearchIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	// Lens circle (offset up-left so handle extends down-right)
	lensR := r * 0.6
	lensCX := cx - r*0.15
	lensCY := cy - r*0.15
	vector.StrokeCircle(dst, lensCX, lensCY, lensR, 1.8, clr, true)
	hx := lensCX + lensR*0.7
	hy := lensCY + lensR*0.7
	vector.StrokeLine(dst, hx, hy, hx+r*0.45, hy+r*0.45, 2, clr, true)
}

// drawLightbulbIcon draws the "suggest an icon" bulb.
func drawLightbulbIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.StrokeCircle(dst, cx, cy-r*0.25, r*0.6, 2, clr, true)
	baseY := cy + r*0.45
	vector.StrokeLine(dst, cx-r*0.3, baseY, cx+r*0.3, baseY, 2, clr, true)
	vector.StrokeLine(dst, cx-r*0.25, baseY+r*0.25, cx+r*0.25, baseY+r*0.25, 2, clr, true)
	// Filament
	vector.StrokeLine(dst, cx, cy-r*0.25, cx, baseY, 1.5, clr, true)
}

// drawEnvelopeIcon draws the contact envelope.
func drawEnvelopeIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	w, h := r*1.6, r*1.1
	x, y := cx-w/2, cy-h/2
	vector.StrokeRect(dst, x, y, w, h, 2, clr, true)
	vector.StrokeLine(dst, x, y, cx, cy+h*0.1, 2, clr, true)
	vector.StrokeLine(dst, cx, cy+h*0.1, x+w, y, 2, clr, true)
}

// drawDownloadIcon draws an arrow into a tray.
func drawDownloadIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.StrokeLine(dst, cx, cy-r, cx, cy+r*0.3, 2, clr, true)
	vector.StrokeLine(dst, cx-r*0.45, cy-r*0.15, cx, cy+r*0.3, 2, clr, true)
	vector.StrokeLine(dst, cx+r*0.45, cy-r*0.15, cx, cy+r*0.3, 2, clr, true)
	vector.StrokeLine(dst, cx-r*0.8, cy+r*0.8, cx+r*0.8, cy+r*0.8, 2, clr, true)
}

// drawCloseIcon draws an ×.
func drawCloseIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.StrokeLine(dst, cx-r, cy-r, cx+r, cy+r, 2, clr, true)
	vector.StrokeLine(dst, cx+r, cy-r, cx-r, cy+r, 2, clr, true)
}

// drawButton draws a labelled button with an optional leading icon and
// returns its bounds.
func drawButton(dst *ebiten.Image, label string, x, y, w, h float64, primary, hovered bool, iconFn func(*ebiten.Image, float32, float32, float32, color.Color)) ButtonRect {
	fill, fg := color.Color(ColorSurface), color.Color(ColorText)
	switch {
	case primary && hovered:
		fill, fg = ColorPrimaryDark, ColorOnPrimary
	case primary:
		fill, fg = ColorPrimary, ColorOnPrimary
	case hovered:
		fill = ColorSurfaceHover
	}
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), fill, false)
	if !primary {
		vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 1, ColorBorder, false)
	}
	labelX := x + w/2
	if iconFn != nil {
		tw, _ := MeasureTextBold(label, FontSizeBody)
		start := x + (w-tw-24)/2
		iconFn(dst, float32(start+8), float32(y+h/2), 7, fg)
		labelX = start + 24 + tw/2
	}
	DrawTextBoldCentered(dst, label, labelX, y+h/2, FontSizeBody, fg)
	return ButtonRect{X: x, Y: y, W: w, H: h}
}
