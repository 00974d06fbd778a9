package ui

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gabun/headicons/internal/catalog"
	"github.com/gabun/headicons/internal/scroll"
)

// GalleryOptions configures the gallery page.
type GalleryOptions struct {
	Title   string
	Tagline string
	Credits []string
	Strip   StripOptions
	Contact string // mailto link; empty hides the button
}

// GalleryScreen is the main page: header, search and category filters, and
// the icon grid, with floating suggestion and contact buttons.
type GalleryScreen struct {
	ScrollState

	FilterBar *FilterBar
	Grid      *IconGrid
	Error     ErrorDisplay

	OnIconSelected func(icon catalog.Icon)
	OnSuggest      func()

	opts      GalleryOptions
	icons     []catalog.Icon
	selection catalog.Selection
	events    []PointerEvent

	barY        float64
	gridTop     float64
	suggestRect ButtonRect
	contactRect ButtonRect
	pressedCard int
}

func NewGalleryScreen(icons []catalog.Icon, images ImageSource, sched *scroll.Scheduler, opts GalleryOptions) *GalleryScreen {
	gs := &GalleryScreen{
		opts:        opts,
		icons:       icons,
		pressedCard: -1,
	}
	strip := NewCategoryStrip(sched, &gs.selection, opts.Strip)
	gs.FilterBar = NewFilterBar(strip)
	gs.FilterBar.OnChanged = gs.refilter
	gs.FilterBar.SetIcons(icons)
	gs.Grid = NewIconGrid(images)
	gs.refilter()
	return gs
}

func (gs *GalleryScreen) Name() string { return "Gallery" }

func (gs *GalleryScreen) OnEnter() {}

func (gs *GalleryScreen) OnExit() {
	ebiten.SetCursorShape(ebiten.CursorShapeDefault)
}

// Strip returns the category strip, for the debug overlay.
func (gs *GalleryScreen) Strip() *CategoryStrip {
	return gs.FilterBar.Strip
}

func (gs *GalleryScreen) refilter() {
	visible := catalog.Filter(gs.icons, gs.FilterBar.Query(), gs.selection.Items())
	gs.Grid.SetIcons(visible)
	gs.Reset()
}

func (gs *GalleryScreen) layout() {
	w := float64(ScreenWidth) - 2*PagePadding
	gs.barY = max(HeaderHeight-gs.ScrollY, PagePadding/2)
	gs.FilterBar.Layout(PagePadding, gs.barY, w)

	gs.gridTop = HeaderHeight + gs.FilterBar.Height() + SectionGap
	gridH := gs.Grid.Layout(PagePadding, gs.gridTop, w)
	gs.SetMax(gs.gridTop + gridH + FabSize + FabMargin*2 - float64(ScreenHeight))

	fx := float64(ScreenWidth) - FabMargin - FabSize
	fy := float64(ScreenHeight) - FabMargin - FabSize
	gs.suggestRect = ButtonRect{X: fx, Y: fy, W: FabSize, H: FabSize}
	gs.contactRect = ButtonRect{}
	if gs.opts.Contact != "" {
		gs.contactRect = ButtonRect{X: fx, Y: fy - FabSize - 12, W: FabSize, H: FabSize}
	}
}

// gridVisibleTop is the screen y below which grid cards are drawn.
func (gs *GalleryScreen) gridVisibleTop() float64 {
	return gs.barY + gs.FilterBar.Height() + 8
}

func (gs *GalleryScreen) Update() (*ScreenTransition, error) {
	gs.layout()
	mx, my := ebiten.CursorPosition()

	gs.events = PollPointers(gs.events[:0])
	strip := gs.FilterBar.Strip
	gs.events = strip.HandlePointers(gs.events)
	overStrip := strip.UpdateHover(mx, my)

	if _, wy := MouseWheelDelta(); wy != 0 {
		if !strip.HandleWheel(mx, my, wy) {
			gs.ScrollBy(-wy * ScrollWheelSpeed)
		}
	}

	gs.handlePointers(overStrip)

	if gs.FilterBar.Active {
		gs.FilterBar.Update()
	} else {
		gs.handleKeys()
	}

	gs.updateHover(mx, my, overStrip)
	gs.Animate()
	return nil, nil
}

func (gs *GalleryScreen) handlePointers(overStrip bool) {
	for _, ev := range gs.events {
		switch ev.Phase {
		case PointerDown:
			if gs.Error.HandleClick(ev.X, ev.Y) {
				continue
			}
			if gs.FilterBar.HandleClick(ev.X, ev.Y) {
				continue
			}
			gs.pressedCard = gs.cardAt(ev.X, ev.Y)
		case PointerUp:
			switch {
			case gs.suggestRect.Contains(ev.X, ev.Y):
				if gs.OnSuggest != nil {
					gs.OnSuggest()
				}
			case gs.opts.Contact != "" && gs.contactRect.Contains(ev.X, ev.Y):
				if err := OpenURL(gs.opts.Contact); err != nil {
					log.Printf("Failed to open contact link: %v", err)
					gs.Error.Set(err)
				}
			case !overStrip:
				if i := gs.cardAt(ev.X, ev.Y); i >= 0 && i == gs.pressedCard {
					gs.Grid.Focus.Focused = i
					gs.open(i)
				}
			}
			gs.pressedCard = -1
		}
	}
}

func (gs *GalleryScreen) cardAt(x, y int) int {
	if float64(y) < gs.gridVisibleTop() {
		return -1
	}
	if gs.suggestRect.Contains(x, y) || gs.contactRect.Contains(x, y) {
		return -1
	}
	return gs.Grid.CardAt(x, y, gs.ScrollY)
}

func (gs *GalleryScreen) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySlash) {
		gs.FilterBar.Active = true
		return
	}
	dir, enter, _ := InputState()
	if dir != DirNone {
		gs.Grid.Active = true
		if !gs.Grid.Focus.Update(dir) && dir == DirUp {
			gs.Grid.Active = false
			gs.FilterBar.Active = true
		}
		if r, ok := gs.Grid.CardRect(gs.Grid.Focus.Focused); ok {
			gs.EnsureVisible(r.Y, r.H, gs.FilterBar.Height()+PagePadding, float64(ScreenHeight)-gs.FilterBar.Height()-PagePadding)
		}
	}
	if enter && gs.Grid.Active {
		gs.open(gs.Grid.Focus.Focused)
	}
}

func (gs *GalleryScreen) open(i int) {
	if i < 0 || i >= len(gs.Grid.Icons) || gs.OnIconSelected == nil {
		return
	}
	gs.OnIconSelected(gs.Grid.Icons[i])
}

func (gs *GalleryScreen) updateHover(mx, my int, overStrip bool) {
	hover := -1
	if !overStrip && ebiten.IsFocused() {
		hover = gs.cardAt(mx, my)
	}
	gs.Grid.SetHover(hover)

	shape, ok := gs.FilterBar.Strip.CursorShape(mx, my)
	switch {
	case ok:
	case hover >= 0, gs.suggestRect.Contains(mx, my), gs.contactRect.Contains(mx, my):
		shape = ebiten.CursorShapePointer
	case gs.FilterBar.searchRect.Contains(mx, my):
		shape = ebiten.CursorShapeText
	}
	ebiten.SetCursorShape(shape)
}

func (gs *GalleryScreen) Draw(dst *ebiten.Image) {
	w := float64(ScreenWidth)

	// Header scrolls with the page.
	hy := PagePadding - gs.ScrollY
	DrawTextBoldCentered(dst, gs.opts.Title, w/2, hy+FontSizeTitle/2, FontSizeTitle, ColorPrimary)
	hy += FontSizeTitle + 12
	DrawTextCentered(dst, gs.opts.Tagline, w/2, hy+FontSizeHeading/2, FontSizeHeading, ColorTextSecondary)
	hy += FontSizeHeading + 14
	for _, line := range gs.opts.Credits {
		lw, _ := MeasureText(line, FontSizeCaption)
		if lw > w-2*PagePadding {
			hy += DrawTextWrapped(dst, line, PagePadding, hy, w-2*PagePadding, 0, FontSizeCaption, ColorTextMuted)
			continue
		}
		DrawTextCentered(dst, line, w/2, hy+FontSizeCaption/2, FontSizeCaption, ColorTextMuted)
		hy += FontSizeCaption * 1.6
	}

	clipTop := gs.gridVisibleTop()
	if len(gs.Grid.Icons) == 0 {
		DrawTextCentered(dst, "No icon matches your search.", w/2, gs.gridTop-gs.ScrollY+60, FontSizeBody, ColorTextDim)
	}
	gs.Grid.Draw(dst, gs.ScrollY, clipTop, float64(ScreenHeight))

	// Sticky filter bar over the grid.
	if gs.barY < HeaderHeight {
		vector.DrawFilledRect(dst, 0, 0, float32(w), float32(clipTop), ColorBackground, false)
		vector.StrokeLine(dst, 0, float32(clipTop), float32(w), float32(clipTop), 1, ColorBorder, false)
	}
	gs.FilterBar.Draw(dst)

	if gs.Error.Message != "" {
		gs.Error.Draw(dst, PagePadding, float64(ScreenHeight)-PagePadding-FontSizeSmall, w-3*PagePadding-FabSize, FontSizeSmall)
	}
	gs.drawFabs(dst)
}

func (gs *GalleryScreen) drawFabs(dst *ebiten.Image) {
	mx, my := ebiten.CursorPosition()
	drawFab(dst, gs.suggestRect, gs.suggestRect.Contains(mx, my), drawLightbulbIcon)
	if gs.opts.Contact != "" {
		drawFab(dst, gs.contactRect, gs.contactRect.Contains(mx, my), drawEnvelopeIcon)
	}
}
