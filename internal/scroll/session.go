package scroll

import (
	"math"
	"time"
)

// PointerKind is the input device class behind a pointer.
type PointerKind int

const (
	PointerMouse PointerKind = iota
	PointerTouch
	PointerPen
)

func (k PointerKind) String() string {
	switch k {
	case PointerTouch:
		return "touch"
	case PointerPen:
		return "pen"
	default:
		return "mouse"
	}
}

// Pointer is one pointer position on the scroll axis. ID distinguishes
// simultaneous touches; mice use ID 0.
type Pointer struct {
	Kind PointerKind
	ID   int
	X    float64
}

func (p Pointer) same(o Pointer) bool {
	return p.Kind == o.Kind && p.ID == o.ID
}

// session is one press-to-release interaction. It outlives its release so
// the click that follows can still ask whether it was a drag.
type session struct {
	active      bool
	pointer     Pointer
	startX      float64
	startOffset float64
	last        Sample
	velocity    float64
	hasMoved    bool
}

func newSession(p Pointer, offset float64, now time.Time) session {
	return session{
		active:      true,
		pointer:     p,
		startX:      p.X,
		startOffset: offset,
		last:        Sample{X: p.X, Time: now},
	}
}

// track records a move and returns the offset the surface should show.
func (s *session) track(x float64, now time.Time, threshold float64) float64 {
	dx := x - s.startX
	if math.Abs(dx) > threshold {
		s.hasMoved = true
	}

	curr := Sample{X: x, Time: now}
	if v, ok := Velocity(s.last, curr); ok {
		s.velocity = v
	}
	s.last = curr

	return s.startOffset - dx
}
