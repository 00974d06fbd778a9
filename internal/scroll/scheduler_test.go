package scroll

import (
	"testing"
	"time"
)

func TestSchedulerRunsOnNextTick(t *testing.T) {
	s := NewScheduler()
	var got []time.Duration

	s.Request(func(dt time.Duration) {
		got = append(got, dt)
		s.Request(func(dt time.Duration) { got = append(got, dt) })
	})

	s.Tick(10 * time.Millisecond)
	if len(got) != 1 {
		t.Fatalf("first tick ran %d callbacks, want 1", len(got))
	}
	if s.Pending() != 1 {
		t.Fatalf("pending %d, want 1", s.Pending())
	}

	s.Tick(20 * time.Millisecond)
	if len(got) != 2 || got[1] != 20*time.Millisecond {
		t.Fatalf("got %v", got)
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	ran := false
	h := s.Request(func(time.Duration) { ran = true })

	s.Cancel(h)
	s.Cancel(h)
	s.Cancel(0)
	s.Tick(RefFrame)

	if ran {
		t.Fatal("cancelled callback ran")
	}
}

func TestSchedulerCancelWithinTick(t *testing.T) {
	s := NewScheduler()
	ran := false

	var second Handle
	s.Request(func(time.Duration) { s.Cancel(second) })
	second = s.Request(func(time.Duration) { ran = true })

	s.Tick(RefFrame)
	if ran {
		t.Fatal("callback cancelled earlier in the same tick still ran")
	}
}
