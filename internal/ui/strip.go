package ui

import (
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gabun/headicons/internal/catalog"
	"github.com/gabun/headicons/internal/scroll"
)

// stripSurface is the strip's scroll container: a row of pills seen
// through a viewport, with the offset clamped to the content.
type stripSurface struct {
	viewport float64
	items    []scroll.Item
	offset   float64
}

func (s *stripSurface) ViewportWidth() float64    { return s.viewport }
func (s *stripSurface) ItemBounds() []scroll.Item { return s.items }
func (s *stripSurface) ScrollOffset() float64     { return s.offset }

func (s *stripSurface) SetScrollOffset(x float64) {
	s.offset = min(max(x, 0), s.maxOffset())
}

func (s *stripSurface) contentWidth() float64 {
	if len(s.items) == 0 {
		return 0
	}
	last := s.items[len(s.items)-1]
	return last.Offset + last.Width
}

func (s *stripSurface) maxOffset() float64 {
	return max(s.contentWidth()-s.viewport, 0)
}

// setLayout replaces the geometry and pulls the offset back into range.
func (s *stripSurface) setLayout(viewport float64, items []scroll.Item) {
	s.viewport = max(viewport, 0)
	s.items = items
	s.SetScrollOffset(s.offset)
}

// itemAt returns the index of the item under x, measured from the
// viewport's left edge, or -1.
func (s *stripSurface) itemAt(x float64) int {
	if x < 0 || x > s.viewport {
		return -1
	}
	cx := x + s.offset
	for i, it := range s.items {
		if cx >= it.Offset && cx < it.Offset+it.Width {
			return i
		}
	}
	return -1
}

// layoutItems places items of the given widths left to right, gap apart.
func layoutItems(widths []float64, gap float64) []scroll.Item {
	items := make([]scroll.Item, len(widths))
	x := 0.0
	for i, w := range widths {
		items[i] = scroll.Item{Offset: x, Width: w}
		x += w + gap
	}
	return items
}

// CategoryStrip is the horizontally scrollable row of category pills. It is
// dragged with mouse or touch, flicked with momentum, snaps the nearest pill
// to the center, and toggles a category when a pill is clicked without
// dragging.
type CategoryStrip struct {
	Categories []string
	Counts     map[string]int
	Selection  *catalog.Selection
	OnToggle   func(category string)

	ctrl       *scroll.Controller
	surface    stripSurface
	wheelRemap bool
	buttonStep float64
	now        func() time.Time

	rect       ButtonRect // pill viewport on screen
	leftBtn    ButtonRect
	rightBtn   ButtonRect
	widths     []float64
	pressed    int
	hover      int
	layoutDone bool
}

// StripOptions carries the strip's tuning.
type StripOptions struct {
	Scroll     scroll.Config
	WheelRemap bool
	ButtonStep float64
}

// NewCategoryStrip creates a strip whose animations run on sched.
func NewCategoryStrip(sched *scroll.Scheduler, sel *catalog.Selection, opts StripOptions) *CategoryStrip {
	cs := &CategoryStrip{
		Selection:  sel,
		wheelRemap: opts.WheelRemap,
		buttonStep: opts.ButtonStep,
		now:        time.Now,
		pressed:    -1,
		hover:      -1,
	}
	if cs.buttonStep <= 0 {
		cs.buttonStep = 220
	}
	cs.ctrl = scroll.New(&cs.surface, sched, opts.Scroll)
	return cs
}

// SetCategories replaces the pills. Pill widths are measured on the next Layout.
func (cs *CategoryStrip) SetCategories(cats []string, counts map[string]int) {
	cs.ctrl.Cancel()
	cs.Categories = cats
	cs.Counts = counts
	cs.widths = nil
	cs.pressed = -1
	cs.layoutDone = false
}

// Controller exposes the scroll controller, for the debug overlay.
func (cs *CategoryStrip) Controller() *scroll.Controller {
	return cs.ctrl
}

// Offset returns the current scroll offset.
func (cs *CategoryStrip) Offset() float64 {
	return cs.surface.offset
}

// Layout positions the strip on screen. Call before handling input each frame.
func (cs *CategoryStrip) Layout(x, y, w float64) {
	cs.leftBtn = ButtonRect{X: x, Y: y, W: StripButtonW, H: PillHeight}
	cs.rightBtn = ButtonRect{X: x + w - StripButtonW, Y: y, W: StripButtonW, H: PillHeight}
	cs.rect = ButtonRect{X: x + StripButtonW + PillGap, Y: y, W: w - 2*(StripButtonW+PillGap), H: PillHeight}

	if len(cs.widths) != len(cs.Categories) {
		cs.widths = make([]float64, len(cs.Categories))
		for i, cat := range cs.Categories {
			cs.widths[i] = pillWidth(cat, cs.Counts[cat])
		}
	}
	cs.surface.setLayout(cs.rect.W, layoutItems(cs.widths, PillGap))
	cs.layoutDone = true
}

func pillWidth(label string, count int) float64 {
	tw, _ := MeasureTextBold(label, FontSizeSmall)
	bw, _ := MeasureTextBold(strconv.Itoa(count), FontSizeCaption)
	return PillPadX*2 + tw + 6 + bw + BadgePadX*2
}

// HandlePointers feeds this frame's pointer events into the strip and
// returns the ones it did not consume. The result reuses the events array.
func (cs *CategoryStrip) HandlePointers(events []PointerEvent) []PointerEvent {
	if !cs.layoutDone {
		return events
	}
	rest := events[:0]
	for _, ev := range events {
		if !cs.handlePointer(ev) {
			rest = append(rest, ev)
		}
	}
	return rest
}

func (cs *CategoryStrip) handlePointer(ev PointerEvent) bool {
	switch ev.Phase {
	case PointerDown:
		switch {
		case cs.leftBtn.Contains(ev.X, ev.Y):
			cs.ctrl.ScrollBy(-cs.buttonStep)
			return true
		case cs.rightBtn.Contains(ev.X, ev.Y):
			cs.ctrl.ScrollBy(cs.buttonStep)
			return true
		case cs.rect.Contains(ev.X, ev.Y):
			cs.ctrl.Begin(ev.Pointer, cs.now())
			cs.pressed = cs.surface.itemAt(float64(ev.X) - cs.rect.X)
			return true
		}
	case PointerMove:
		if !cs.ctrl.Owns(ev.Pointer) {
			return false
		}
		// A mouse leaving the strip releases it, like mouseleave.
		if ev.Pointer.Kind == scroll.PointerMouse && !cs.rect.Contains(ev.X, ev.Y) {
			cs.ctrl.End()
			cs.pressed = -1
			return true
		}
		cs.ctrl.Update(ev.Pointer, cs.now())
		return true
	case PointerUp:
		if !cs.ctrl.Owns(ev.Pointer) {
			return false
		}
		cs.ctrl.End()
		pressed := cs.pressed
		cs.pressed = -1
		if cs.ctrl.SuppressClick() || pressed < 0 {
			return true
		}
		if cs.rect.Contains(ev.X, ev.Y) && cs.surface.itemAt(float64(ev.X)-cs.rect.X) == pressed {
			cs.toggle(pressed)
		}
		return true
	}
	return false
}

func (cs *CategoryStrip) toggle(i int) {
	if i < 0 || i >= len(cs.Categories) {
		return
	}
	cat := cs.Categories[i]
	if cs.Selection != nil {
		cs.Selection.Toggle(cat)
	}
	if cs.OnToggle != nil {
		cs.OnToggle(cat)
	}
}

// HandleWheel maps vertical wheel input over the strip onto horizontal
// scrolling. Returns true if the wheel was consumed.
func (cs *CategoryStrip) HandleWheel(mx, my int, wy float64) bool {
	if !cs.wheelRemap || wy == 0 || !cs.rect.Contains(mx, my) {
		return false
	}
	cs.ctrl.Wheel(-wy * ScrollWheelSpeed)
	return true
}

// UpdateHover tracks the pill under the cursor. Returns true if the cursor
// is over the strip.
func (cs *CategoryStrip) UpdateHover(mx, my int) bool {
	cs.hover = -1
	if cs.rect.Contains(mx, my) {
		cs.hover = cs.surface.itemAt(float64(mx) - cs.rect.X)
		return true
	}
	return cs.leftBtn.Contains(mx, my) || cs.rightBtn.Contains(mx, my)
}

// CursorShape returns the cursor to show for the given position.
func (cs *CategoryStrip) CursorShape(mx, my int) (ebiten.CursorShapeType, bool) {
	if cs.ctrl.Dragging() {
		return ebiten.CursorShapeMove, true
	}
	if cs.leftBtn.Contains(mx, my) || cs.rightBtn.Contains(mx, my) {
		return ebiten.CursorShapePointer, true
	}
	if cs.rect.Contains(mx, my) {
		if cs.hover >= 0 {
			return ebiten.CursorShapePointer, true
		}
		return ebiten.CursorShapeMove, true
	}
	return ebiten.CursorShapeDefault, false
}

// Draw renders the buttons and the visible pills.
func (cs *CategoryStrip) Draw(dst *ebiten.Image) {
	if !cs.layoutDone {
		return
	}
	cs.drawButton(dst, cs.leftBtn, true, cs.surface.offset > 0)
	cs.drawButton(dst, cs.rightBtn, false, cs.surface.offset < cs.surface.maxOffset())

	clip := dst.Bounds().Intersect(rectOf(cs.rect))
	if clip.Empty() {
		return
	}
	view := dst.SubImage(clip).(*ebiten.Image)
	for i, it := range cs.surface.items {
		x := cs.rect.X + it.Offset - cs.surface.offset
		if x+it.Width < cs.rect.X || x > cs.rect.X+cs.rect.W {
			continue
		}
		cat := cs.Categories[i]
		cs.drawPill(view, cat, cs.Counts[cat], x, cs.rect.Y, it.Width, i == cs.hover)
	}
}

func (cs *CategoryStrip) drawPill(dst *ebiten.Image, cat string, count int, x, y, w float64, hovered bool) {
	active := cs.Selection != nil && cs.Selection.Has(cat)
	fill, label, badge, badgeText := ColorSurface, ColorTextSecondary, ColorSurfaceHover, ColorTextDim
	if active {
		fill, label, badge, badgeText = ColorPrimary, ColorOnPrimary, ColorBadgeOnActive, ColorOnPrimary
	} else if hovered && !cs.ctrl.Dragging() {
		fill, label = ColorSurfaceHover, ColorText
	}
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), PillHeight, fill, false)
	if !active {
		vector.StrokeRect(dst, float32(x), float32(y), float32(w), PillHeight, 1, ColorBorder, false)
	}

	_, th := MeasureTextBold(cat, FontSizeSmall)
	DrawTextBold(dst, cat, x+PillPadX, y+(PillHeight-th)/2, FontSizeSmall, label)

	n := strconv.Itoa(count)
	bw, bh := MeasureTextBold(n, FontSizeCaption)
	bx := x + w - PillPadX - bw - BadgePadX*2
	by := y + (PillHeight-bh)/2 - 3
	vector.DrawFilledRect(dst, float32(bx), float32(by), float32(bw+BadgePadX*2), float32(bh+6), badge, false)
	DrawTextBold(dst, n, bx+BadgePadX, by+3, FontSizeCaption, badgeText)
}

func (cs *CategoryStrip) drawButton(dst *ebiten.Image, r ButtonRect, left, enabled bool) {
	clr := ColorTextMuted
	if enabled {
		clr = ColorText
	}
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), ColorSurface, false)
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, ColorBorder, false)
	drawChevron(dst, float32(r.X+r.W/2), float32(r.Y+r.H/2), 6, left, clr)
}
