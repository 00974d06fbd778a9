package ui

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gabun/headicons/internal/catalog"
)

// SaveFunc writes a copy of src into dir and returns the new file's path.
type SaveFunc func(ctx context.Context, src, dir string) (string, error)

// PreviewScreen is the modal showing one icon large, cycling through its
// images, with buttons to save the SVG or PNG.
type PreviewScreen struct {
	Icon    catalog.Icon
	Sources []string
	Index   int

	images       ImageSource
	downloadsDir string
	save         SaveFunc
	requested    map[string]bool

	mu     sync.Mutex
	busy   bool
	status string
	err    ErrorDisplay

	panel    ButtonRect
	closeBtn ButtonRect
	prevBtn  ButtonRect
	nextBtn  ButtonRect
	svgBtn   ButtonRect
	pngBtn   ButtonRect
}

func NewPreviewScreen(icon catalog.Icon, images ImageSource, downloadsDir string, save SaveFunc) *PreviewScreen {
	if save == nil {
		save = catalog.Save
	}
	return &PreviewScreen{
		Icon:         icon,
		Sources:      icon.Sources(),
		images:       images,
		downloadsDir: downloadsDir,
		save:         save,
		requested:    map[string]bool{},
	}
}

func (ps *PreviewScreen) Name() string { return "Preview" }
func (ps *PreviewScreen) Modal() bool  { return true }
func (ps *PreviewScreen) OnEnter()     {}
func (ps *PreviewScreen) OnExit()      {}

// Next moves the carousel forward, wrapping around.
func (ps *PreviewScreen) Next() {
	if n := len(ps.Sources); n > 0 {
		ps.Index = (ps.Index + 1) % n
	}
}

// Prev moves the carousel back, wrapping around.
func (ps *PreviewScreen) Prev() {
	if n := len(ps.Sources); n > 0 {
		ps.Index = (ps.Index - 1 + n) % n
	}
}

// Current returns the source on display.
func (ps *PreviewScreen) Current() string {
	if ps.Index < 0 || ps.Index >= len(ps.Sources) {
		return ""
	}
	return ps.Sources[ps.Index]
}

// Status returns the last save result and whether a save is running.
func (ps *PreviewScreen) Status() (string, bool) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.status, ps.busy
}

// Save copies src into the downloads directory in the background.
func (ps *PreviewScreen) Save(src string) {
	if src == "" {
		return
	}
	ps.mu.Lock()
	if ps.busy {
		ps.mu.Unlock()
		return
	}
	ps.busy = true
	ps.status = "Saving..."
	ps.mu.Unlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		path, err := ps.save(ctx, src, ps.downloadsDir)

		ps.mu.Lock()
		defer ps.mu.Unlock()
		ps.busy = false
		if err != nil {
			log.Printf("Failed to save %s: %v", src, err)
			ps.status = ""
			ps.err.Set(fmt.Errorf("save failed: %w", err))
			return
		}
		ps.err.Clear()
		ps.status = "Saved to " + filepath.Base(filepath.Dir(path)) + "/" + filepath.Base(path)
	}()
}

func (ps *PreviewScreen) layout() {
	w, h := float64(ScreenWidth), float64(ScreenHeight)
	pw := min(w-2*PagePadding, 640)
	ph := min(h-2*PagePadding, 620)
	ps.panel = ButtonRect{X: (w - pw) / 2, Y: (h - ph) / 2, W: pw, H: ph}
	p := ps.panel

	ps.closeBtn = ButtonRect{X: p.X + p.W - 44, Y: p.Y + 8, W: 36, H: 36}

	imgTop := p.Y + 56
	imgH := p.H - 56 - 140
	ps.prevBtn, ps.nextBtn = ButtonRect{}, ButtonRect{}
	if len(ps.Sources) > 1 {
		ps.prevBtn = ButtonRect{X: p.X + 12, Y: imgTop + imgH/2 - 24, W: 40, H: 48}
		ps.nextBtn = ButtonRect{X: p.X + p.W - 52, Y: imgTop + imgH/2 - 24, W: 40, H: 48}
	}

	by := p.Y + p.H - 64
	bw := (p.W - 3*16) / 2
	ps.svgBtn, ps.pngBtn = ButtonRect{}, ButtonRect{}
	if ps.Icon.SVG != "" {
		ps.svgBtn = ButtonRect{X: p.X + 16, Y: by, W: bw, H: 44}
	}
	if ps.Icon.PNG != "" {
		ps.pngBtn = ButtonRect{X: p.X + 32 + bw, Y: by, W: bw, H: 44}
	}
}

func (ps *PreviewScreen) Update() (*ScreenTransition, error) {
	ps.layout()
	ebiten.SetCursorShape(ebiten.CursorShapeDefault)

	dir, _, back := InputState()
	if back {
		return &ScreenTransition{Type: TransitionPop}, nil
	}
	switch dir {
	case DirLeft:
		ps.Prev()
	case DirRight:
		ps.Next()
	}

	mx, my, released := MouseJustReleased()
	if !released {
		return nil, nil
	}
	ps.mu.Lock()
	consumed := ps.err.HandleClick(mx, my)
	ps.mu.Unlock()
	switch {
	case consumed:
	case ps.closeBtn.Contains(mx, my), !ps.panel.Contains(mx, my):
		return &ScreenTransition{Type: TransitionPop}, nil
	case ps.prevBtn.Contains(mx, my):
		ps.Prev()
	case ps.nextBtn.Contains(mx, my):
		ps.Next()
	case ps.svgBtn.Contains(mx, my):
		ps.Save(ps.Icon.SVG)
	case ps.pngBtn.Contains(mx, my):
		ps.Save(ps.Icon.PNG)
	}
	return nil, nil
}

func (ps *PreviewScreen) Draw(dst *ebiten.Image) {
	w, h := float32(ScreenWidth), float32(ScreenHeight)
	vector.DrawFilledRect(dst, 0, 0, w, h, ColorOverlay, false)

	p := ps.panel
	vector.DrawFilledRect(dst, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), ColorSurface, false)
	vector.StrokeRect(dst, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), 1, ColorBorder, false)

	title := truncateText(ps.Icon.Name, p.W-80, FontSizeHeading, true)
	DrawTextBold(dst, title, p.X+20, p.Y+16, FontSizeHeading, ColorText)
	c := ps.closeBtn
	drawCloseIcon(dst, float32(c.X+c.W/2), float32(c.Y+c.H/2), 8, ColorTextSecondary)

	imgTop := p.Y + 56
	imgH := p.H - 56 - 140
	if img := ps.image(); img != nil {
		DrawImageContain(dst, img, p.X+64, imgTop, p.W-128, imgH)
	} else if ps.images != nil && ps.images.Err(ps.Current()) != nil {
		DrawTextCentered(dst, "Image unavailable", p.X+p.W/2, imgTop+imgH/2, FontSizeBody, ColorError)
	} else {
		DrawTextCentered(dst, "Loading...", p.X+p.W/2, imgTop+imgH/2, FontSizeBody, ColorTextMuted)
	}

	mx, my := ebiten.CursorPosition()
	if len(ps.Sources) > 1 {
		for _, b := range []struct {
			r    ButtonRect
			left bool
		}{{ps.prevBtn, true}, {ps.nextBtn, false}} {
			fill := ColorSurfaceHover
			if b.r.Contains(mx, my) {
				fill = ColorBorder
			}
			vector.DrawFilledRect(dst, float32(b.r.X), float32(b.r.Y), float32(b.r.W), float32(b.r.H), fill, false)
			drawChevron(dst, float32(b.r.X+b.r.W/2), float32(b.r.Y+b.r.H/2), 9, b.left, ColorText)
		}
		dots := fmt.Sprintf("%d / %d", ps.Index+1, len(ps.Sources))
		DrawTextCentered(dst, dots, p.X+p.W/2, imgTop+imgH+16, FontSizeSmall, ColorTextDim)
	}
	DrawTextCentered(dst, ps.Icon.Category, p.X+p.W/2, imgTop+imgH+40, FontSizeSmall, ColorTextSecondary)

	if ps.svgBtn.W > 0 {
		drawButton(dst, "Download SVG", ps.svgBtn.X, ps.svgBtn.Y, ps.svgBtn.W, ps.svgBtn.H, true, ps.svgBtn.Contains(mx, my), drawDownloadIcon)
	}
	if ps.pngBtn.W > 0 {
		drawButton(dst, "Download PNG", ps.pngBtn.X, ps.pngBtn.Y, ps.pngBtn.W, ps.pngBtn.H, ps.svgBtn.W == 0, ps.pngBtn.Contains(mx, my), drawDownloadIcon)
	}

	ps.mu.Lock()
	status := ps.status
	sy := p.Y + p.H - 92
	if ps.err.Message != "" {
		ps.err.Draw(dst, p.X+16, sy, p.W-32, FontSizeSmall)
	} else if status != "" {
		DrawText(dst, truncateText(status, p.W-32, FontSizeSmall, false), p.X+16, sy, FontSizeSmall, ColorSuccess)
	}
	ps.mu.Unlock()
}

func (ps *PreviewScreen) image() *ebiten.Image {
	src := ps.Current()
	if ps.images == nil || src == "" {
		return nil
	}
	if img := ps.images.Get(src); img != nil {
		return img
	}
	if !ps.requested[src] {
		ps.requested[src] = true
		ps.images.LoadAsync(src, func(*ebiten.Image) {})
	}
	return nil
}
