package scroll

import (
	"testing"
	"time"
)

func TestSnap(t *testing.T) {
	row := []Item{{0, 80}, {100, 80}, {220, 80}}

	tests := []struct {
		name     string
		items    []Item
		offset   float64
		viewport float64
		want     float64
		ok       bool
	}{
		{name: "nearest is last", items: row, offset: 150, viewport: 300, want: 110, ok: true},
		{name: "nearest is first", items: row, offset: 0, viewport: 100, want: -10, ok: true},
		{name: "single item far away", items: []Item{{1000, 50}}, offset: 0, viewport: 200, want: 925, ok: true},
		{name: "tie goes to the earlier item", items: []Item{{0, 100}, {200, 100}}, offset: 0, viewport: 300, want: -100, ok: true},
		{name: "mixed widths", items: []Item{{0, 40}, {50, 200}, {260, 40}}, offset: 20, viewport: 200, want: 50, ok: true},
		{name: "empty strip", items: nil, offset: 37, viewport: 300, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Snap(tt.items, tt.offset, tt.viewport)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Fatalf("target = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVelocity(t *testing.T) {
	base := time.Unix(0, 0)
	tests := []struct {
		name string
		prev Sample
		curr Sample
		want float64
		ok   bool
	}{
		{name: "drag right is negative", prev: Sample{100, base}, curr: Sample{120, base.Add(10 * time.Millisecond)}, want: -2, ok: true},
		{name: "drag left is positive", prev: Sample{100, base}, curr: Sample{70, base.Add(20 * time.Millisecond)}, want: 1.5, ok: true},
		{name: "stationary", prev: Sample{5, base}, curr: Sample{5, base.Add(time.Millisecond)}, want: 0, ok: true},
		{name: "zero dt", prev: Sample{0, base}, curr: Sample{50, base}, ok: false},
		{name: "clock went backwards", prev: Sample{0, base.Add(time.Second)}, curr: Sample{50, base}, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Velocity(tt.prev, tt.curr)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Fatalf("v = %v, want %v", got, tt.want)
			}
		})
	}
}
