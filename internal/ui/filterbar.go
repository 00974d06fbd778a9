package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gabun/headicons/internal/catalog"
)

// FilterBar is the search input above the category strip.
type FilterBar struct {
	SearchInput TextInput
	Strip       *CategoryStrip
	Active      bool // search input has keyboard focus
	OnChanged   func()

	searchRect ButtonRect
	clearRect  ButtonRect
	lastSearch string
}

// NewFilterBar creates a FilterBar around strip.
func NewFilterBar(strip *CategoryStrip) *FilterBar {
	fb := &FilterBar{
		Strip:       strip,
		SearchInput: TextInput{MaxLen: 64},
	}
	strip.OnToggle = func(string) { fb.changed() }
	return fb
}

// SetIcons refreshes the strip's categories and counts from the catalog.
func (fb *FilterBar) SetIcons(icons []catalog.Icon) {
	fb.Strip.SetCategories(catalog.Categories(icons), catalog.CategoryCounts(icons))
}

// Query returns the applied search text.
func (fb *FilterBar) Query() string {
	return fb.lastSearch
}

// Height is the vertical space the bar occupies.
func (fb *FilterBar) Height() float64 {
	return SearchHeight + 16 + PillHeight
}

// Layout positions the bar. Call before Update each frame.
func (fb *FilterBar) Layout(x, y, w float64) {
	fb.searchRect = ButtonRect{X: x, Y: y, W: w, H: SearchHeight}
	fb.clearRect = ButtonRect{X: x + w - SearchHeight, Y: y, W: SearchHeight, H: SearchHeight}
	fb.Strip.Layout(x, y+SearchHeight+16, w)
}

// Update handles keyboard input for the focused search box. Search is
// applied as the user types.
func (fb *FilterBar) Update() {
	if !fb.Active {
		return
	}
	if fb.SearchInput.Update() {
		fb.apply()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		fb.Active = false
	}
}

// HandleClick focuses or clears the search input. Returns true if consumed.
func (fb *FilterBar) HandleClick(mx, my int) bool {
	if fb.SearchInput.Text != "" && fb.clearRect.Contains(mx, my) {
		fb.SetSearchText("")
		fb.changed()
		fb.Active = true
		return true
	}
	if fb.searchRect.Contains(mx, my) {
		fb.Active = true
		return true
	}
	fb.Active = false
	return false
}

// SetSearchText sets the search input text and marks it as applied.
func (fb *FilterBar) SetSearchText(text string) {
	fb.SearchInput.SetText(text)
	fb.lastSearch = text
}

func (fb *FilterBar) apply() {
	if fb.SearchInput.Text == fb.lastSearch {
		return
	}
	fb.lastSearch = fb.SearchInput.Text
	fb.changed()
}

func (fb *FilterBar) changed() {
	if fb.OnChanged != nil {
		fb.OnChanged()
	}
}

// Draw renders the search box and the strip.
func (fb *FilterBar) Draw(dst *ebiten.Image) {
	r := fb.searchRect
	fill, border, bw := ColorSurface, ColorBorder, float32(1)
	if fb.Active {
		fill, border, bw = ColorSurfaceHover, ColorFocusBorder, 2
	}
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fill, false)
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), bw, border, false)
	drawSearchIcon(dst, float32(r.X+24), float32(r.Y+r.H/2), 9, ColorTextDim)

	textX := r.X + 44
	_, th := MeasureText("Ag", FontSizeBody)
	textY := r.Y + (r.H-th)/2
	switch {
	case fb.Active:
		DrawText(dst, fb.SearchInput.DisplayText(), textX, textY, FontSizeBody, ColorText)
	case fb.SearchInput.Text != "":
		DrawText(dst, fb.SearchInput.Text, textX, textY, FontSizeBody, ColorText)
	default:
		DrawText(dst, "Search a character...", textX, textY, FontSizeBody, ColorTextMuted)
	}
	if fb.SearchInput.Text != "" {
		c := fb.clearRect
		drawCloseIcon(dst, float32(c.X+c.W/2), float32(c.Y+c.H/2), 6, ColorTextDim)
	}

	fb.Strip.Draw(dst)
}
