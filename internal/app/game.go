package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gabun/headicons/internal/cache"
	"github.com/gabun/headicons/internal/config"
	"github.com/gabun/headicons/internal/scroll"
	"github.com/gabun/headicons/internal/ui"
)

// Game implements ebiten.Game and manages the overall application.
type Game struct {
	Config  *config.Config
	Cache   *cache.ImageCache
	Screens *ui.ScreenManager
	Sched   *scroll.Scheduler

	// Gallery is the root screen; its strip feeds the debug overlay.
	Gallery *ui.GalleryScreen
	// OnSuggest opens the suggestion form.
	OnSuggest func()

	keys bindings
}

// NewGame creates the Game with all dependencies.
func NewGame(cfg *config.Config, imgCache *cache.ImageCache) *Game {
	ui.SetScreenSize(cfg.UI.Width, cfg.UI.Height)
	return &Game{
		Config:  cfg,
		Cache:   imgCache,
		Screens: ui.NewScreenManager(),
		Sched:   scroll.NewScheduler(),
		keys:    newBindings(cfg.Keybinds),
	}
}

// tick is the fixed duration of one Update.
func tick() time.Duration {
	return time.Second / time.Duration(ebiten.TPS())
}

func (g *Game) Update() error {
	// Alt+Enter toggles fullscreen alongside the configured key
	if g.keys.fullscreen.justPressed() ||
		(inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt)) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if g.keys.debug.justPressed() {
		ui.ToggleDebugOverlay()
	}
	if g.keys.suggest.justPressed() && g.OnSuggest != nil && g.Screens.Current() == ui.Screen(g.Gallery) {
		g.OnSuggest()
	}

	if err := g.Screens.Update(); err != nil {
		return err
	}

	// Animation frames run after input.
	g.Sched.Tick(tick())

	ui.UpdateInputState()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)
	g.Screens.Draw(screen)
	var strip *ui.CategoryStrip
	if g.Gallery != nil {
		strip = g.Gallery.Strip()
	}
	ui.DrawDebugOverlay(screen, strip)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	ui.SetScreenSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
