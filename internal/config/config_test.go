package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Scroll.DragThreshold != 6 || cfg.Scroll.ButtonStep != 220 {
		t.Errorf("unexpected scroll defaults: %+v", cfg.Scroll)
	}
	if cfg.UI.Width != 1280 {
		t.Errorf("width: %d", cfg.UI.Width)
	}
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[catalog]
path = "/srv/icons/icons.toml"

[scroll]
decay = 0.9
frame_coupled = true
glide_epsilon = 0.25
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Catalog.Path != "/srv/icons/icons.toml" {
		t.Errorf("catalog path: %q", cfg.Catalog.Path)
	}
	sc := cfg.ScrollTuning()
	if sc.Decay != 0.9 || !sc.FrameCoupled || sc.GlideEpsilon != 0.25 {
		t.Errorf("scroll tuning: %+v", sc)
	}
	if sc.Gain != 20 || sc.DragThreshold != 6 {
		t.Errorf("defaults lost: %+v", sc)
	}
	if cfg.Keybinds.DebugOverlay != "F12" {
		t.Errorf("keybind default lost: %q", cfg.Keybinds.DebugOverlay)
	}
}

func TestLoadFileRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[scroll\ndecay = "), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestSaveFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.Contact.Email = "someone@example.com"

	if err := cfg.SaveFile(path); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got.Contact.Email != "someone@example.com" {
		t.Errorf("email: %q", got.Contact.Email)
	}
}
