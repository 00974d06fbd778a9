package scroll

import "time"

// Sample is one pointer observation.
type Sample struct {
	X    float64
	Time time.Time
}

// Velocity returns the signed scroll velocity in units per millisecond between
// two consecutive samples. Moving the pointer towards +X yields a negative
// velocity, so content keeps travelling with the drag after release.
//
// ok is false when the samples share a timestamp (or arrive out of order);
// callers keep their previous estimate in that case.
func Velocity(prev, curr Sample) (v float64, ok bool) {
	dt := float64(curr.Time.Sub(prev.Time)) / float64(time.Millisecond)
	if dt <= 0 {
		return 0, false
	}
	return (prev.X - curr.X) / dt, true
}
