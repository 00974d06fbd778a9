package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ErrorDisplay shows the last error of a screen with a "Copy" button.
// Call Draw each frame and HandleClick from Update.
type ErrorDisplay struct {
	Message string

	copyRect    ButtonRect
	copiedTimer int // frames remaining to show "Copied!" feedback
}

// Set records err for display; a nil error clears it.
func (ed *ErrorDisplay) Set(err error) {
	if err == nil {
		ed.Clear()
		return
	}
	ed.Message = err.Error()
}

func (ed *ErrorDisplay) Clear() {
	ed.Message = ""
	ed.copyRect = ButtonRect{}
	ed.copiedTimer = 0
}

// Draw renders the message, truncated to maxWidth, and the Copy button.
// Returns the height used.
func (ed *ErrorDisplay) Draw(dst *ebiten.Image, x, y, maxWidth, fontSize float64) float64 {
	if ed.Message == "" {
		ed.copyRect = ButtonRect{}
		return 0
	}

	const btnW = 50.0
	btnH := fontSize + 6
	msg := truncateText(ed.Message, maxWidth-btnW-12, fontSize, false)
	DrawText(dst, msg, x, y, fontSize, ColorError)

	tw, _ := MeasureText(msg, fontSize)
	btnX := x + tw + 12
	btnY := y - 2
	ed.copyRect = ButtonRect{X: btnX, Y: btnY, W: btnW, H: btnH}

	if ed.copiedTimer > 0 {
		ed.copiedTimer--
		DrawText(dst, "Copied!", btnX, y, FontSizeSmall, ColorSuccess)
	} else {
		vector.DrawFilledRect(dst, float32(btnX), float32(btnY), float32(btnW), float32(btnH), ColorSurface, false)
		vector.StrokeRect(dst, float32(btnX), float32(btnY), float32(btnW), float32(btnH), 1, ColorTextMuted, false)
		DrawTextCentered(dst, "Copy", btnX+btnW/2, btnY+btnH/2, FontSizeSmall, ColorTextSecondary)
	}
	return fontSize + 8
}

// HandleClick copies the message if the button was hit. Returns true if the
// click was consumed.
func (ed *ErrorDisplay) HandleClick(mx, my int) bool {
	if ed.Message == "" || !ed.copyRect.Contains(mx, my) {
		return false
	}
	writeClipboard(ed.Message)
	ed.copiedTimer = 120 // ~2 seconds at 60fps
	return true
}
