package scroll

import "time"

// Handle identifies a pending frame callback. The zero Handle is never issued.
type Handle uint64

// FrameFunc is advanced once per frame with the time elapsed since the
// previous frame.
type FrameFunc func(dt time.Duration)

type pendingFrame struct {
	handle Handle
	fn     FrameFunc // nil once cancelled
}

// Scheduler runs callbacks on the next frame, like requestAnimationFrame.
// It is driven by the game loop calling Tick and is not safe for concurrent
// use; everything that touches it runs on the update goroutine.
type Scheduler struct {
	last    Handle
	pending []*pendingFrame
	running []*pendingFrame // batch of the Tick in progress
}

// NewScheduler creates an empty Scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Request schedules fn for the next Tick.
func (s *Scheduler) Request(fn FrameFunc) Handle {
	s.last++
	s.pending = append(s.pending, &pendingFrame{handle: s.last, fn: fn})
	return s.last
}

// Cancel drops a pending callback. Cancelling an unknown or already run
// handle is a no-op. A callback cancelled from inside another callback of the
// same Tick does not run.
func (s *Scheduler) Cancel(h Handle) {
	if h == 0 {
		return
	}
	for i, p := range s.pending {
		if p.handle == h {
			p.fn = nil
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
	for _, p := range s.running {
		if p.handle == h {
			p.fn = nil
			return
		}
	}
}

// Pending reports how many callbacks wait for the next Tick.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Tick runs every callback requested before this call. Callbacks requested
// while ticking run on the following Tick.
func (s *Scheduler) Tick(dt time.Duration) {
	if len(s.pending) == 0 {
		return
	}
	batch := s.pending
	s.pending = nil
	s.running = batch
	defer func() { s.running = nil }()
	for _, p := range batch {
		if p.fn == nil {
			continue
		}
		fn := p.fn
		p.fn = nil
		fn(dt)
	}
}
