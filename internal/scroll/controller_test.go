package scroll

import (
	"math"
	"testing"
	"time"
)

type fakeHost struct {
	viewport float64
	items    []Item
	offset   float64

	clamp    bool
	maxOffst float64
}

func (h *fakeHost) ViewportWidth() float64 { return h.viewport }
func (h *fakeHost) ItemBounds() []Item     { return h.items }
func (h *fakeHost) ScrollOffset() float64  { return h.offset }

func (h *fakeHost) SetScrollOffset(x float64) {
	if h.clamp {
		x = math.Max(0, math.Min(x, h.maxOffst))
	}
	h.offset = x
}

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return t0.Add(time.Duration(ms) * time.Millisecond)
}

func mouse(x float64) Pointer {
	return Pointer{Kind: PointerMouse, X: x}
}

func newTestController(h *fakeHost) (*Controller, *Scheduler) {
	sched := NewScheduler()
	return New(h, sched, DefaultConfig()), sched
}

func runUntilIdle(t *testing.T, sched *Scheduler, max int) int {
	t.Helper()
	n := 0
	for sched.Pending() > 0 {
		if n >= max {
			t.Fatalf("scheduler still busy after %d frames", max)
		}
		sched.Tick(RefFrame)
		n++
	}
	return n
}

func TestDragTracksPointerOneToOne(t *testing.T) {
	h := &fakeHost{viewport: 300, offset: 250}
	c, _ := newTestController(h)

	c.Begin(mouse(400), at(0))
	xs := []float64{398, 390, 420, 350, 351, 200}
	for i, x := range xs {
		c.Update(mouse(x), at(16*(i+1)))
		want := 250 - (x - 400)
		if h.offset != want {
			t.Fatalf("after move to %v: offset %v, want %v", x, h.offset, want)
		}
	}
	if !c.Dragging() {
		t.Fatal("expected an open session")
	}
}

func TestHasMovedIsMonotonic(t *testing.T) {
	h := &fakeHost{viewport: 300}
	c, _ := newTestController(h)

	c.Begin(mouse(100), at(0))
	c.Update(mouse(106), at(10))
	if c.SuppressClick() {
		t.Fatal("|dx| == 6 must not count as a drag")
	}
	c.Update(mouse(107), at(20))
	if !c.SuppressClick() {
		t.Fatal("|dx| == 7 must count as a drag")
	}
	c.Update(mouse(100), at(30))
	if !c.SuppressClick() {
		t.Fatal("hasMoved reverted after returning to the start")
	}
}

func TestZeroDtKeepsVelocity(t *testing.T) {
	h := &fakeHost{viewport: 300}
	c, _ := newTestController(h)

	c.Begin(mouse(100), at(0))
	c.Update(mouse(80), at(10))
	before := c.Stats().SampleVelocity
	if before != 2 {
		t.Fatalf("velocity %v, want 2", before)
	}

	c.Update(mouse(60), at(10))
	c.Update(mouse(50), at(10))
	if got := c.Stats().SampleVelocity; got != before {
		t.Fatalf("velocity changed on zero dt: %v -> %v", before, got)
	}
	if h.offset != 50 {
		t.Fatalf("offset %v, want 50", h.offset)
	}
}

func TestMomentumDecayIsGeometric(t *testing.T) {
	h := &fakeHost{viewport: 300, offset: 500}
	c, sched := newTestController(h)

	c.Begin(mouse(100), at(0))
	c.Update(mouse(90), at(10)) // v = +1 px/ms
	c.End()

	if h.offset != 510 {
		t.Fatalf("offset after drag %v, want 510", h.offset)
	}
	if c.Stats().Momentum != MomentumRunning {
		t.Fatal("momentum should be running after release")
	}

	v := 1.0 * 20
	offset := 510.0
	for n := 1; ; n++ {
		if n > 1000 {
			t.Fatal("momentum never settled")
		}
		sched.Tick(RefFrame)
		offset += v
		v *= 0.92

		st := c.Stats()
		if st.MomentumVelocity != v {
			t.Fatalf("frame %d: velocity %v, want %v", n, st.MomentumVelocity, v)
		}
		if h.offset != offset {
			t.Fatalf("frame %d: offset %v, want %v", n, h.offset, offset)
		}
		if math.Abs(v) <= 0.5 {
			if st.Momentum != MomentumSettled {
				t.Fatalf("frame %d: state %v, want settled", n, st.Momentum)
			}
			if st.MomentumFrames != n || n != 45 {
				t.Fatalf("settled after %d frames (counter %d), want 45", n, st.MomentumFrames)
			}
			break
		}
		if st.Momentum != MomentumRunning {
			t.Fatalf("frame %d: settled early with |v| = %v", n, math.Abs(v))
		}
	}

	// Empty strip: nothing to snap to.
	if sched.Pending() != 0 {
		t.Fatalf("expected no pending frames, got %d", sched.Pending())
	}
}

func TestMomentumIsTimeNormalized(t *testing.T) {
	h := &fakeHost{viewport: 300}
	sched := NewScheduler()
	m := NewMomentum(h, sched, DefaultConfig())

	m.Start(1)
	sched.Tick(2 * RefFrame)

	if math.Abs(h.offset-40) > 1e-9 {
		t.Fatalf("offset %v, want 40 after two reference frames", h.offset)
	}
	if want := 20 * 0.92 * 0.92; math.Abs(m.Velocity()-want) > 1e-9 {
		t.Fatalf("velocity %v, want %v", m.Velocity(), want)
	}
}

func TestMomentumFrameCoupled(t *testing.T) {
	h := &fakeHost{viewport: 300}
	sched := NewScheduler()
	cfg := DefaultConfig()
	cfg.FrameCoupled = true
	m := NewMomentum(h, sched, cfg)

	m.Start(1)
	sched.Tick(50 * time.Millisecond)

	if h.offset != 20 {
		t.Fatalf("offset %v, want 20", h.offset)
	}
	if math.Abs(m.Velocity()-20*0.92) > 1e-12 {
		t.Fatalf("velocity %v, want %v", m.Velocity(), 20*0.92)
	}
}

func TestMomentumRejectsInfiniteVelocity(t *testing.T) {
	h := &fakeHost{viewport: 300}
	sched := NewScheduler()
	m := NewMomentum(h, sched, DefaultConfig())

	m.Start(math.Inf(1))
	runUntilIdle(t, sched, 10)
	if m.State() != MomentumSettled || h.offset != 0 {
		t.Fatalf("state %v offset %v", m.State(), h.offset)
	}
}

func TestClickSuppression(t *testing.T) {
	tests := []struct {
		name     string
		dx       float64
		suppress bool
	}{
		{name: "drag", dx: 10, suppress: true},
		{name: "tap with jitter", dx: 3, suppress: false},
		{name: "drag left", dx: -10, suppress: true},
		{name: "no movement", dx: 0, suppress: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &fakeHost{viewport: 300}
			c, _ := newTestController(h)

			c.Begin(mouse(100), at(0))
			c.Update(mouse(100+tt.dx), at(16))
			c.Update(mouse(100), at(32))
			c.End()
			if got := c.SuppressClick(); got != tt.suppress {
				t.Fatalf("SuppressClick = %v, want %v", got, tt.suppress)
			}
		})
	}
}

func TestBeginResetsClickGate(t *testing.T) {
	h := &fakeHost{viewport: 300}
	c, _ := newTestController(h)

	c.Begin(mouse(100), at(0))
	c.Update(mouse(150), at(16))
	c.End()
	if !c.SuppressClick() {
		t.Fatal("expected suppression after a drag")
	}

	c.Begin(mouse(150), at(100))
	if c.SuppressClick() {
		t.Fatal("a new session must start with hasMoved = false")
	}
}

func TestBeginPreemptsMomentum(t *testing.T) {
	h := &fakeHost{viewport: 300, offset: 1000}
	c, sched := newTestController(h)

	c.Begin(mouse(100), at(0))
	c.Update(mouse(50), at(10))
	c.End()
	sched.Tick(RefFrame)
	sched.Tick(RefFrame)

	c.Begin(mouse(300), at(100))
	frozen := h.offset
	for i := 0; i < 100; i++ {
		sched.Tick(RefFrame)
	}
	if h.offset != frozen {
		t.Fatalf("offset moved after preemption: %v -> %v", frozen, h.offset)
	}
	if st := c.Stats(); st.Momentum != MomentumIdle {
		t.Fatalf("momentum state %v, want idle", st.Momentum)
	}
}

func TestSettleSnapsToNearestItem(t *testing.T) {
	h := &fakeHost{
		viewport: 300,
		offset:   150,
		items:    []Item{{0, 80}, {100, 80}, {220, 80}},
	}
	c, sched := newTestController(h)

	// A press and release without movement still settles and snaps.
	c.Begin(mouse(10), at(0))
	c.End()
	runUntilIdle(t, sched, 500)

	if h.offset != 110 {
		t.Fatalf("offset %v, want 110", h.offset)
	}
	if c.Settling() {
		t.Fatal("controller still settling")
	}
}

func TestGlideStopsWhenClamped(t *testing.T) {
	h := &fakeHost{
		viewport: 300,
		offset:   0,
		items:    []Item{{0, 80}, {100, 80}},
		clamp:    true,
		maxOffst: 200,
	}
	c, sched := newTestController(h)

	c.SnapNow() // wants -10, the host refuses to go below zero
	runUntilIdle(t, sched, 10)
	if h.offset != 0 {
		t.Fatalf("offset %v, want 0", h.offset)
	}
}

func TestScrollBy(t *testing.T) {
	h := &fakeHost{viewport: 300}
	c, sched := newTestController(h)

	c.ScrollBy(220)
	runUntilIdle(t, sched, 500)
	if h.offset != 220 {
		t.Fatalf("offset %v, want 220", h.offset)
	}

	c.ScrollBy(-220)
	sched.Tick(RefFrame)
	if !(h.offset < 220 && h.offset > 0) {
		t.Fatalf("offset %v should be between the endpoints", h.offset)
	}
	runUntilIdle(t, sched, 500)
	if h.offset != 0 {
		t.Fatalf("offset %v, want 0", h.offset)
	}
}

func TestWheelRemap(t *testing.T) {
	h := &fakeHost{viewport: 300, offset: 100}
	c, sched := newTestController(h)

	c.Wheel(40)
	if h.offset != 140 {
		t.Fatalf("offset %v, want 140", h.offset)
	}
	if sched.Pending() != 0 {
		t.Fatal("wheel must not start an animation")
	}

	c.Begin(mouse(0), at(0))
	c.Wheel(40)
	if h.offset != 140 {
		t.Fatalf("wheel moved the strip mid-drag: %v", h.offset)
	}
	c.Update(mouse(-20), at(16))
	c.End()

	c.Wheel(-10)
	if st := c.Stats(); st.Momentum != MomentumIdle {
		t.Fatalf("wheel should cancel momentum, state %v", st.Momentum)
	}
	after := h.offset
	for i := 0; i < 50; i++ {
		sched.Tick(RefFrame)
	}
	if h.offset != after {
		t.Fatalf("offset moved after wheel took control: %v -> %v", after, h.offset)
	}
}

func TestForeignPointerIgnored(t *testing.T) {
	h := &fakeHost{viewport: 300}
	c, _ := newTestController(h)

	touch := Pointer{Kind: PointerTouch, ID: 1, X: 100}
	c.Begin(touch, at(0))

	other := Pointer{Kind: PointerTouch, ID: 2, X: 300}
	c.Update(other, at(16))
	if h.offset != 0 || c.SuppressClick() {
		t.Fatalf("foreign pointer moved the strip: %v", h.offset)
	}
	if c.Owns(other) || !c.Owns(touch) {
		t.Fatal("ownership mismatch")
	}

	touch.X = 40
	c.Update(touch, at(32))
	if h.offset != 60 {
		t.Fatalf("offset %v, want 60", h.offset)
	}
}

func TestCancelSkipsMomentum(t *testing.T) {
	h := &fakeHost{viewport: 300, items: []Item{{0, 100}}}
	c, sched := newTestController(h)

	c.Begin(mouse(100), at(0))
	c.Update(mouse(0), at(10))
	c.Cancel()
	if c.Dragging() || sched.Pending() != 0 {
		t.Fatal("cancel left work behind")
	}
	if !c.SuppressClick() {
		t.Fatal("cancel must keep the click gate answer")
	}
}

func TestNilHostIsNoop(t *testing.T) {
	sched := NewScheduler()
	c := New(nil, sched, DefaultConfig())

	c.Begin(mouse(0), at(0))
	c.Update(mouse(50), at(10))
	c.End()
	c.Wheel(10)
	c.ScrollBy(10)
	c.SnapNow()

	if c.Dragging() || c.SuppressClick() || c.Settling() || sched.Pending() != 0 {
		t.Fatal("nil host should leave the controller inert")
	}
}

func TestUpdateWithoutSessionIsNoop(t *testing.T) {
	h := &fakeHost{viewport: 300, offset: 42}
	c, sched := newTestController(h)

	c.Update(mouse(500), at(0))
	c.End()
	if h.offset != 42 || sched.Pending() != 0 {
		t.Fatalf("offset %v pending %d", h.offset, sched.Pending())
	}
}
