package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gabun/headicons/internal/scroll"
)

// PointerPhase is the stage of a pointer interaction seen this frame.
type PointerPhase int

const (
	PointerDown PointerPhase = iota
	PointerMove
	PointerUp
)

// PointerEvent is one mouse or touch observation, in screen coordinates.
type PointerEvent struct {
	Phase   PointerPhase
	Pointer scroll.Pointer
	X, Y    int
}

var (
	lastCursorX, lastCursorY int
	touchIDs                 []ebiten.TouchID
)

// PollPointers turns this frame's mouse and touch input into pointer
// events. Moves are only reported when the position changed.
func PollPointers(events []PointerEvent) []PointerEvent {
	mx, my := ebiten.CursorPosition()
	mouse := scroll.Pointer{Kind: scroll.PointerMouse, X: float64(mx)}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		events = append(events, PointerEvent{Phase: PointerDown, Pointer: mouse, X: mx, Y: my})
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		events = append(events, PointerEvent{Phase: PointerUp, Pointer: mouse, X: mx, Y: my})
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && (mx != lastCursorX || my != lastCursorY):
		events = append(events, PointerEvent{Phase: PointerMove, Pointer: mouse, X: mx, Y: my})
	}
	lastCursorX, lastCursorY = mx, my

	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		events = append(events, PointerEvent{Phase: PointerDown, Pointer: touchPointer(id, x), X: x, Y: y})
	}
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		if inpututil.TouchPressDuration(id) == 0 {
			continue
		}
		x, y := ebiten.TouchPosition(id)
		px, py := inpututil.TouchPositionInPreviousTick(id)
		if x != px || y != py {
			events = append(events, PointerEvent{Phase: PointerMove, Pointer: touchPointer(id, x), X: x, Y: y})
		}
	}
	touchIDs = inpututil.AppendJustReleasedTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		events = append(events, PointerEvent{Phase: PointerUp, Pointer: touchPointer(id, x), X: x, Y: y})
	}
	return events
}

func touchPointer(id ebiten.TouchID, x int) scroll.Pointer {
	return scroll.Pointer{Kind: scroll.PointerTouch, ID: int(id), X: float64(x)}
}
