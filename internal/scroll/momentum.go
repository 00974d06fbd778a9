package scroll

import (
	"math"
	"time"
)

// MomentumState is the lifecycle of one inertial run.
type MomentumState int

const (
	MomentumIdle MomentumState = iota
	MomentumRunning
	MomentumSettled
)

func (s MomentumState) String() string {
	switch s {
	case MomentumRunning:
		return "running"
	case MomentumSettled:
		return "settled"
	default:
		return "idle"
	}
}

// Momentum decays a release velocity toward zero, moving the surface once
// per frame until the velocity falls to the settle threshold.
type Momentum struct {
	cfg     Config
	sched   *Scheduler
	surface Surface

	state    MomentumState
	velocity float64
	handle   Handle
	frames   int

	// OnSettle runs once when a run settles on its own. It does not run
	// after Cancel.
	OnSettle func()
}

// NewMomentum creates an idle animator writing to surface.
func NewMomentum(surface Surface, sched *Scheduler, cfg Config) *Momentum {
	return &Momentum{
		cfg:     cfg.withDefaults(),
		sched:   sched,
		surface: surface,
	}
}

// Start begins a run from a per-millisecond velocity, replacing any run in
// progress. The first step happens on the next frame.
func (m *Momentum) Start(initialVelocity float64) {
	m.Cancel()
	if m.surface == nil || m.sched == nil {
		return
	}
	if math.IsNaN(initialVelocity) || math.IsInf(initialVelocity, 0) {
		initialVelocity = 0
	}
	m.velocity = initialVelocity * m.cfg.Gain
	m.frames = 0
	m.state = MomentumRunning
	m.handle = m.sched.Request(m.step)
}

// Cancel stops the run without settling. Remaining velocity is discarded.
func (m *Momentum) Cancel() {
	if m.handle != 0 {
		m.sched.Cancel(m.handle)
		m.handle = 0
	}
	m.state = MomentumIdle
	m.velocity = 0
}

// State returns the current lifecycle state.
func (m *Momentum) State() MomentumState { return m.state }

// Velocity returns the current per-frame velocity.
func (m *Momentum) Velocity() float64 { return m.velocity }

// Frames returns how many steps the current or last run has taken.
func (m *Momentum) Frames() int { return m.frames }

func (m *Momentum) step(dt time.Duration) {
	m.handle = 0
	if m.state != MomentumRunning {
		return
	}

	f := m.cfg.frames(dt)
	decay := m.cfg.Decay
	if f != 1 {
		decay = math.Pow(decay, f)
	}

	m.surface.SetScrollOffset(m.surface.ScrollOffset() + m.velocity*f)
	m.velocity *= decay
	m.frames++

	if math.Abs(m.velocity) > m.cfg.SettleVelocity {
		m.handle = m.sched.Request(m.step)
		return
	}
	m.state = MomentumSettled
	if m.OnSettle != nil {
		m.OnSettle()
	}
}
