package ui

import "image/color"

// Colors: zinc surfaces with a yellow accent
var (
	ColorBackground    = color.RGBA{R: 0x09, G: 0x09, B: 0x0B, A: 0xFF} // zinc-950
	ColorSurface       = color.RGBA{R: 0x18, G: 0x18, B: 0x1B, A: 0xFF} // zinc-900
	ColorSurfaceHover  = color.RGBA{R: 0x27, G: 0x27, B: 0x2A, A: 0xFF} // zinc-800
	ColorBorder        = color.RGBA{R: 0x3F, G: 0x3F, B: 0x46, A: 0xFF} // zinc-700
	ColorPrimary       = color.RGBA{R: 0xFA, G: 0xCC, B: 0x15, A: 0xFF} // yellow-400
	ColorPrimaryDark   = color.RGBA{R: 0xEA, G: 0xB3, B: 0x08, A: 0xFF} // yellow-500
	ColorText          = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0xD4, G: 0xD4, B: 0xD8, A: 0xFF} // zinc-300
	ColorTextMuted     = color.RGBA{R: 0x71, G: 0x71, B: 0x7A, A: 0xFF} // zinc-500
	ColorTextDim       = color.RGBA{R: 0xA1, G: 0xA1, B: 0xAA, A: 0xFF} // zinc-400
	ColorOnPrimary     = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	ColorBadgeOnActive = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x33}
	ColorFocusBorder   = ColorPrimary
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xCC}
	ColorError         = color.RGBA{R: 0xDC, G: 0x26, B: 0x26, A: 0xFF} // red-600
	ColorSuccess       = color.RGBA{R: 0x22, G: 0xC5, B: 0x5E, A: 0xFF}
	ColorGlow          = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x26}
)

// Layout constants
const (
	PagePadding   = 24
	HeaderHeight  = 200
	SectionGap    = 40
	CardGap       = 20
	CardPadding   = 12
	CardLabelH    = 44
	CardHoverGrow = 1.05

	PillHeight   = 38
	PillPadX     = 16
	PillGap      = 8
	BadgePadX    = 8
	StripButtonW = 32

	SearchHeight = 48

	FabSize   = 64
	FabMargin = 24

	FontSizeTitle   = 44
	FontSizeHeading = 24
	FontSizeBody    = 16
	FontSizeSmall   = 13
	FontSizeCaption = 11

	ScrollAnimSpeed = 0.12

	// ScrollWheelSpeed is pixels per mouse wheel scroll unit.
	ScrollWheelSpeed = 60
)

// Grid breakpoints, in logical pixels, and the columns they unlock.
var gridBreakpoints = []struct {
	MinWidth int
	Cols     int
}{
	{1024, 6},
	{768, 4},
	{640, 3},
	{0, 2},
}

// GridColumns returns the card column count for a page width.
func GridColumns(width int) int {
	for _, bp := range gridBreakpoints {
		if width >= bp.MinWidth {
			return bp.Cols
		}
	}
	return 2
}

// ScreenWidth and ScreenHeight are the logical window size, updated from
// the game's Layout.
var (
	ScreenWidth  = 1280
	ScreenHeight = 800
)

// SetScreenSize records the logical window size.
func SetScreenSize(w, h int) {
	if w > 0 && h > 0 {
		ScreenWidth, ScreenHeight = w, h
	}
}
