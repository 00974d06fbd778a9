package main

import (
	"github.com/gabun/headicons/internal/app"
	"github.com/gabun/headicons/internal/cache"
	"github.com/gabun/headicons/internal/catalog"
	"github.com/gabun/headicons/internal/config"
	"github.com/gabun/headicons/internal/suggest"
	"github.com/gabun/headicons/internal/ui"
)

// screenFactory captures the shared dependencies for creating and wiring screens.
type screenFactory struct {
	game     *app.Game
	cfg      *config.Config
	imgCache *cache.ImageCache
	suggest  *suggest.Client
}

func (sf *screenFactory) pushGallery(icons []catalog.Icon) {
	contact := ""
	if sf.cfg.Contact.Email != "" {
		contact = ui.MailtoURL(sf.cfg.Contact.Email, sf.cfg.Contact.Subject)
	}
	gallery := ui.NewGalleryScreen(icons, sf.imgCache, sf.game.Sched, ui.GalleryOptions{
		Title:   sf.cfg.UI.Title,
		Tagline: sf.cfg.UI.Tagline,
		Credits: sf.cfg.UI.Credits,
		Contact: contact,
		Strip: ui.StripOptions{
			Scroll:     sf.cfg.ScrollTuning(),
			WheelRemap: sf.cfg.Scroll.WheelRemap,
			ButtonStep: sf.cfg.Scroll.ButtonStep,
		},
	})
	gallery.OnIconSelected = sf.pushPreview
	gallery.OnSuggest = sf.pushSuggestion

	sf.game.Gallery = gallery
	sf.game.OnSuggest = sf.pushSuggestion
	sf.game.Screens.Replace(gallery)
}

func (sf *screenFactory) pushPreview(icon catalog.Icon) {
	preview := ui.NewPreviewScreen(icon, sf.imgCache, sf.cfg.DownloadsDir(), catalog.Save)
	sf.game.Screens.Push(preview)
}

func (sf *screenFactory) pushSuggestion() {
	sf.game.Screens.Push(ui.NewSuggestionScreen(sf.suggest))
}
