package scroll

import (
	"math"
	"time"
)

// Controller turns pointer input into strip scrolling: 1:1 tracking while
// dragging, inertial momentum after release, then a smooth snap that centers
// the nearest item. Only one of drag, momentum, glide and wheel writes the
// surface at any time; a new press takes control from whichever is running.
//
// All methods must be called from the game's update goroutine.
type Controller struct {
	cfg   Config
	host  Host
	sched *Scheduler

	session  session
	momentum *Momentum

	glideHandle Handle
	glideTarget float64
}

// New creates a controller for host. A nil host makes every operation a
// no-op.
func New(host Host, sched *Scheduler, cfg Config) *Controller {
	cfg = cfg.withDefaults()
	c := &Controller{
		cfg:   cfg,
		host:  host,
		sched: sched,
	}
	if host != nil {
		c.momentum = NewMomentum(host, sched, cfg)
		c.momentum.OnSettle = c.SnapNow
	}
	return c
}

func (c *Controller) ready() bool {
	return c.host != nil && c.sched != nil
}

// Begin opens a drag session for p, cancelling momentum or a smooth scroll
// in progress. Any earlier session is superseded.
func (c *Controller) Begin(p Pointer, now time.Time) {
	if !c.ready() {
		return
	}
	c.stopAnimations()
	c.session = newSession(p, c.host.ScrollOffset(), now)
}

// Update tracks a move of the session's pointer. Moves of other pointers and
// moves outside a session are ignored.
func (c *Controller) Update(p Pointer, now time.Time) {
	if !c.ready() || !c.session.active || !c.session.pointer.same(p) {
		return
	}
	c.host.SetScrollOffset(c.session.track(p.X, now, c.cfg.DragThreshold))
}

// End closes the session and hands its last velocity to the momentum
// animator.
func (c *Controller) End() {
	if !c.ready() || !c.session.active {
		return
	}
	c.session.active = false
	c.momentum.Start(c.session.velocity)
}

// Cancel closes the session without momentum and stops every animation.
// The click gate keeps its answer.
func (c *Controller) Cancel() {
	if !c.ready() {
		return
	}
	c.session.active = false
	c.stopAnimations()
}

// Owns reports whether p is the pointer driving the active session.
func (c *Controller) Owns(p Pointer) bool {
	return c.session.active && c.session.pointer.same(p)
}

// Dragging reports whether a session is open. It only drives the cursor
// affordance.
func (c *Controller) Dragging() bool {
	return c.session.active
}

// SuppressClick reports whether the current or most recent session moved
// past the drag threshold, in which case an item click must be swallowed.
func (c *Controller) SuppressClick() bool {
	return c.session.hasMoved
}

// Settling reports whether momentum or a smooth scroll is still moving the
// strip.
func (c *Controller) Settling() bool {
	if c.momentum != nil && c.momentum.State() == MomentumRunning {
		return true
	}
	return c.glideHandle != 0
}

// Wheel applies vertical wheel travel directly to the horizontal offset.
// It bypasses momentum and snapping and is ignored mid-drag.
func (c *Controller) Wheel(deltaY float64) {
	if !c.ready() || c.session.active || deltaY == 0 {
		return
	}
	c.stopAnimations()
	c.host.SetScrollOffset(c.host.ScrollOffset() + deltaY)
}

// ScrollBy smoothly moves the strip by delta.
func (c *Controller) ScrollBy(delta float64) {
	if !c.ready() || c.session.active {
		return
	}
	c.stopAnimations()
	c.glideTo(c.host.ScrollOffset() + delta)
}

// SnapNow smoothly centers the item nearest to the middle of the viewport.
// It does nothing for an empty strip.
func (c *Controller) SnapNow() {
	if !c.ready() {
		return
	}
	target, ok := Snap(c.host.ItemBounds(), c.host.ScrollOffset(), c.host.ViewportWidth())
	if !ok {
		return
	}
	c.glideTo(target)
}

func (c *Controller) stopAnimations() {
	if c.momentum != nil {
		c.momentum.Cancel()
	}
	if c.glideHandle != 0 {
		c.sched.Cancel(c.glideHandle)
		c.glideHandle = 0
	}
}

func (c *Controller) glideTo(target float64) {
	if c.glideHandle != 0 {
		c.sched.Cancel(c.glideHandle)
	}
	c.glideTarget = target
	c.glideHandle = c.sched.Request(c.glideStep)
}

// glideStep eases the offset toward the glide target. It stops when the
// target is reached or when the host clamps the offset and no progress is
// possible.
func (c *Controller) glideStep(dt time.Duration) {
	c.glideHandle = 0

	prev := c.host.ScrollOffset()
	t := c.cfg.GlideSpeed
	if f := c.cfg.frames(dt); f != 1 {
		t = 1 - math.Pow(1-t, f)
	}
	c.host.SetScrollOffset(prev + (c.glideTarget-prev)*t)

	cur := c.host.ScrollOffset()
	if math.Abs(c.glideTarget-cur) <= c.cfg.GlideEpsilon {
		c.host.SetScrollOffset(c.glideTarget)
		return
	}
	if math.Abs(cur-prev) < 1e-6 {
		return
	}
	c.glideHandle = c.sched.Request(c.glideStep)
}

// Stats is a snapshot of the controller for diagnostics.
type Stats struct {
	Dragging         bool
	HasMoved         bool
	Pointer          PointerKind
	SampleVelocity   float64
	Momentum         MomentumState
	MomentumVelocity float64
	MomentumFrames   int
	Gliding          bool
	GlideTarget      float64
}

// Stats returns the current controller state.
func (c *Controller) Stats() Stats {
	st := Stats{
		Dragging:       c.session.active,
		HasMoved:       c.session.hasMoved,
		Pointer:        c.session.pointer.Kind,
		SampleVelocity: c.session.velocity,
		Gliding:        c.glideHandle != 0,
		GlideTarget:    c.glideTarget,
	}
	if c.momentum != nil {
		st.Momentum = c.momentum.State()
		st.MomentumVelocity = c.momentum.Velocity()
		st.MomentumFrames = c.momentum.Frames()
	}
	return st
}
