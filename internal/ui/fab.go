package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawFab draws a round floating action button filling r.
func drawFab(dst *ebiten.Image, r ButtonRect, hovered bool, iconFn func(*ebiten.Image, float32, float32, float32, color.Color)) {
	cx, cy := float32(r.X+r.W/2), float32(r.Y+r.H/2)
	rad := float32(r.W / 2)
	fill := ColorPrimary
	if hovered {
		fill = ColorPrimaryDark
		vector.DrawFilledCircle(dst, cx, cy, rad+6, ColorGlow, true)
	}
	vector.DrawFilledCircle(dst, cx, cy, rad, fill, true)
	iconFn(dst, cx, cy, rad*0.45, ColorOnPrimary)
}
