package scroll

import "math"

// Snap returns the offset that centers the item nearest to the middle of the
// viewport. Ties go to the earlier item. ok is false for an empty strip.
func Snap(items []Item, scrollOffset, viewportWidth float64) (target float64, ok bool) {
	if len(items) == 0 {
		return 0, false
	}

	center := scrollOffset + viewportWidth/2
	best := 0
	bestDist := math.Inf(1)
	for i, it := range items {
		if d := math.Abs(center - it.Center()); d < bestDist {
			best, bestDist = i, d
		}
	}

	chosen := items[best]
	return chosen.Offset - viewportWidth/2 + chosen.Width/2, true
}
