package scroll

// Item is the position and extent of one strip item along the scroll axis.
// Slices of Items are in visual left-to-right order.
type Item struct {
	Offset float64
	Width  float64
}

// Center returns the item's midpoint on the scroll axis.
func (it Item) Center() float64 {
	return it.Offset + it.Width/2
}

// Geometry is queried on demand for the current layout of the strip.
type Geometry interface {
	ViewportWidth() float64
	ItemBounds() []Item
}

// Surface is the scrollable container owned by the host. The controller reads
// and writes its offset but never owns it.
type Surface interface {
	ScrollOffset() float64
	SetScrollOffset(x float64)
}

// Host is everything the controller needs from the UI layer.
type Host interface {
	Geometry
	Surface
}
