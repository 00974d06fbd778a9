package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var debugOverlayVisible bool

// ToggleDebugOverlay flips the debug overlay.
func ToggleDebugOverlay() {
	debugOverlayVisible = !debugOverlayVisible
}

// DrawDebugOverlay draws the category strip's scroll state if visible.
func DrawDebugOverlay(screen *ebiten.Image, strip *CategoryStrip) {
	if !debugOverlayVisible {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 18.0
		marginR = 20.0
		marginT = 20.0
	)

	lines := []string{
		fmt.Sprintf("TPS %.1f  FPS %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()),
	}
	if strip != nil {
		st := strip.Controller().Stats()
		lines = append(lines,
			fmt.Sprintf("offset      %8.2f / %.2f", strip.Offset(), strip.surface.maxOffset()),
			fmt.Sprintf("dragging    %v (%s)", st.Dragging, st.Pointer),
			fmt.Sprintf("has moved   %v", st.HasMoved),
			fmt.Sprintf("sample v    %8.3f px/ms", st.SampleVelocity),
			fmt.Sprintf("momentum    %s  v=%.3f  frames=%d", st.Momentum, st.MomentumVelocity, st.MomentumFrames),
			fmt.Sprintf("glide       %v  target=%.2f", st.Gliding, st.GlideTarget),
		)
	}

	panelW := 420.0
	panelH := float64(len(lines)+1)*lineH + padY*2
	px := float64(ScreenWidth) - panelW - marginR
	py := marginT

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), ColorOverlay, false)

	x := px + padX
	y := py + padY
	DrawText(screen, "Debug: strip scroll (F12 to close)", x, y, FontSizeSmall, ColorPrimary)
	y += lineH
	for _, line := range lines {
		DrawText(screen, line, x, y, FontSizeSmall, ColorText)
		y += lineH
	}
}
