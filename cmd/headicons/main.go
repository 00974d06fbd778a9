package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gabun/headicons/assets/icon"
	"github.com/gabun/headicons/internal/app"
	"github.com/gabun/headicons/internal/cache"
	"github.com/gabun/headicons/internal/catalog"
	"github.com/gabun/headicons/internal/config"
	"github.com/gabun/headicons/internal/suggest"
	"github.com/gabun/headicons/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to config.toml (default: user config dir)")
	catalogPath := flag.String("catalog", "", "path to the icon manifest (overrides config)")
	clearCache := flag.Bool("clear-cache", false, "empty the image cache before starting")
	flag.Parse()

	// Load config
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *catalogPath != "" {
		cfg.Catalog.Path = *catalogPath
	}

	// Init fonts
	if err := ui.InitFonts(goregular.TTF, gobold.TTF); err != nil {
		log.Fatalf("Failed to init fonts: %v", err)
	}

	// Load icons
	icons, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.Printf("Loaded %d icons from %s", len(icons), cfg.Catalog.Path)

	// Init image cache
	cacheDir := filepath.Join(os.TempDir(), "headicons", "images")
	if configDir, err := config.ConfigDir(); err == nil {
		cacheDir = filepath.Join(configDir, "cache", "images")
	}
	imgCache, err := cache.NewImageCache(cacheDir, cfg.Catalog.SVGSize)
	if err != nil {
		log.Fatalf("Failed to init image cache: %v", err)
	}
	if *clearCache {
		if err := imgCache.ClearDisk(); err != nil {
			log.Printf("Failed to clear image cache: %v", err)
		} else {
			log.Printf("Cleared image cache at %s", imgCache.CacheDir())
		}
	}

	game := app.NewGame(cfg, imgCache)
	sf := &screenFactory{
		game:     game,
		cfg:      cfg,
		imgCache: imgCache,
		suggest: suggest.NewClient(cfg.Suggestion.Endpoint, cfg.Suggestion.ServiceID,
			cfg.Suggestion.TemplateID, cfg.Suggestion.PublicKey),
	}
	if !sf.suggest.Configured() {
		log.Printf("Suggestions are not configured; the form will report send errors")
	}
	sf.pushGallery(icons)

	// Configure window
	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle(cfg.UI.Title)
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
