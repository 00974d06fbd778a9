package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gabun/headicons/internal/catalog"
)

// ImageSource is the part of the image cache the UI draws from.
type ImageSource interface {
	Get(src string) *ebiten.Image
	Err(src string) error
	LoadAsync(src string, callback func(*ebiten.Image))
}

// IconGrid lays icon cards out in responsive columns.
type IconGrid struct {
	Icons  []catalog.Icon
	Focus  *FocusGrid
	Active bool // keyboard focus is in the grid

	images    ImageSource
	requested map[string]bool
	rects     []ButtonRect // content coordinates
	cols      int
	hover     int
	height    float64
}

func NewIconGrid(images ImageSource) *IconGrid {
	return &IconGrid{
		Focus:     NewFocusGrid(2, 0),
		images:    images,
		requested: map[string]bool{},
		hover:     -1,
	}
}

// SetIcons replaces the grid content and resets focus.
func (g *IconGrid) SetIcons(icons []catalog.Icon) {
	g.Icons = icons
	g.Focus.Focused = 0
	g.Focus.SetTotal(len(icons))
	g.hover = -1
}

// Layout computes card rectangles for a content area starting at (x, y)
// and returns the grid height.
func (g *IconGrid) Layout(x, y, w float64) float64 {
	g.cols = GridColumns(int(w + 2*PagePadding))
	g.Focus.Cols = g.cols
	cardW := (w - float64(g.cols-1)*CardGap) / float64(g.cols)
	cardH := cardW + CardLabelH

	if cap(g.rects) < len(g.Icons) {
		g.rects = make([]ButtonRect, len(g.Icons))
	}
	g.rects = g.rects[:len(g.Icons)]
	for i := range g.Icons {
		row, col := i/g.cols, i%g.cols
		g.rects[i] = ButtonRect{
			X: x + float64(col)*(cardW+CardGap),
			Y: y + float64(row)*(cardH+CardGap),
			W: cardW,
			H: cardH,
		}
	}
	rows := (len(g.Icons) + g.cols - 1) / g.cols
	g.height = 0
	if rows > 0 {
		g.height = float64(rows)*cardH + float64(rows-1)*CardGap
	}
	return g.height
}

// CardRect returns the content-space rectangle of card i.
func (g *IconGrid) CardRect(i int) (ButtonRect, bool) {
	if i < 0 || i >= len(g.rects) {
		return ButtonRect{}, false
	}
	return g.rects[i], true
}

// CardAt returns the card under a screen point, given the page scroll.
func (g *IconGrid) CardAt(mx, my int, scrollY float64) int {
	for i, r := range g.rects {
		r.Y -= scrollY
		if r.Contains(mx, my) {
			return i
		}
	}
	return -1
}

// SetHover marks card i as hovered (-1 for none).
func (g *IconGrid) SetHover(i int) {
	g.hover = i
}

// Draw renders the cards visible between clipTop and clipBottom.
func (g *IconGrid) Draw(dst *ebiten.Image, scrollY, clipTop, clipBottom float64) {
	for i, r := range g.rects {
		r.Y -= scrollY
		if r.Y+r.H < clipTop || r.Y > clipBottom {
			continue
		}
		focused := g.Active && i == g.Focus.Focused
		g.drawCard(dst, g.Icons[i], r, focused, i == g.hover)
	}
}

func (g *IconGrid) drawCard(dst *ebiten.Image, icon catalog.Icon, r ButtonRect, focused, hovered bool) {
	if hovered || focused {
		// Grow around the center, like a CSS scale on hover.
		gw, gh := r.W*(CardHoverGrow-1), r.H*(CardHoverGrow-1)
		r = ButtonRect{X: r.X - gw/2, Y: r.Y - gh/2, W: r.W + gw, H: r.H + gh}
		vector.DrawFilledRect(dst, float32(r.X-6), float32(r.Y-6), float32(r.W+12), float32(r.H+12), ColorGlow, false)
	}
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), ColorSurface, false)
	border := color.Color(ColorBorder)
	if focused {
		border = ColorFocusBorder
	}
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, border, false)

	imgSize := r.W - CardPadding*2
	src := icon.Thumbnail()
	if img := g.image(src); img != nil {
		DrawImageContain(dst, img, r.X+CardPadding, r.Y+CardPadding, imgSize, imgSize)
	} else {
		msg := "..."
		if g.images != nil && g.images.Err(src) != nil {
			msg = "?"
		}
		DrawTextCentered(dst, msg, r.X+r.W/2, r.Y+CardPadding+imgSize/2, FontSizeHeading, ColorTextMuted)
	}

	labelY := r.Y + r.W
	name := truncateText(icon.Name, r.W-CardPadding*2, FontSizeSmall, true)
	nw, _ := MeasureTextBold(name, FontSizeSmall)
	DrawTextBold(dst, name, r.X+(r.W-nw)/2, labelY, FontSizeSmall, ColorText)
	cat := truncateText(icon.Category, r.W-CardPadding*2, FontSizeCaption, false)
	cw, _ := MeasureText(cat, FontSizeCaption)
	DrawText(dst, cat, r.X+(r.W-cw)/2, labelY+FontSizeSmall+6, FontSizeCaption, ColorTextDim)
}

// image returns the cached image for src, requesting it once if missing.
func (g *IconGrid) image(src string) *ebiten.Image {
	if g.images == nil || src == "" {
		return nil
	}
	if img := g.images.Get(src); img != nil {
		return img
	}
	if !g.requested[src] {
		g.requested[src] = true
		g.images.LoadAsync(src, func(*ebiten.Image) {})
	}
	return nil
}

// DrawImageContain draws img scaled to fit inside the box, centered, keeping
// its aspect ratio.
func DrawImageContain(dst, img *ebiten.Image, x, y, w, h float64) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	scale := min(w/float64(b.Dx()), h/float64(b.Dy()))
	dw, dh := float64(b.Dx())*scale, float64(b.Dy())*scale
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x+(w-dw)/2, y+(h-dh)/2)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}
