package ui

// ScrollState provides reusable vertical scroll tracking with smooth animation.
// Embed this struct in screens that need scrollable content.
type ScrollState struct {
	ScrollY       float64
	TargetScrollY float64
	MaxScrollY    float64
}

// ScrollBy moves the target by delta, clamped to [0, MaxScrollY].
func (s *ScrollState) ScrollBy(delta float64) {
	if delta == 0 {
		return
	}
	s.TargetScrollY = s.clamp(s.TargetScrollY + delta)
}

// SetMax updates the scroll limit, pulling the position back inside it.
func (s *ScrollState) SetMax(maxY float64) {
	s.MaxScrollY = max(maxY, 0)
	s.TargetScrollY = s.clamp(s.TargetScrollY)
	s.ScrollY = s.clamp(s.ScrollY)
}

func (s *ScrollState) clamp(y float64) float64 {
	return min(max(y, 0), s.MaxScrollY)
}

// Animate performs smooth scroll interpolation. Call this from Update().
func (s *ScrollState) Animate() {
	s.ScrollY = Lerp(s.ScrollY, s.TargetScrollY, ScrollAnimSpeed)
	if abs(s.ScrollY-s.TargetScrollY) < 0.5 {
		s.ScrollY = s.TargetScrollY
	}
}

// Reset sets scroll position back to top.
func (s *ScrollState) Reset() {
	s.ScrollY = 0
	s.TargetScrollY = 0
}

// EnsureVisible scrolls so that the span [top, top+height) lies inside the
// viewport of viewHeight pixels starting at viewTop (content coordinates).
func (s *ScrollState) EnsureVisible(top, height, viewTop, viewHeight float64) {
	if top+height > s.TargetScrollY+viewTop+viewHeight {
		s.TargetScrollY = top + height - viewTop - viewHeight
	}
	if top < s.TargetScrollY+viewTop {
		s.TargetScrollY = top - viewTop
	}
	s.TargetScrollY = s.clamp(s.TargetScrollY)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
