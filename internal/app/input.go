package app

import (
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gabun/headicons/internal/config"
)

// keyMap maps config key names to ebiten keys.
var keyMap = map[string]ebiten.Key{
	"space":  ebiten.KeySpace,
	"enter":  ebiten.KeyEnter,
	"return": ebiten.KeyEnter,
	"tab":    ebiten.KeyTab,
	"left":   ebiten.KeyArrowLeft,
	"right":  ebiten.KeyArrowRight,
	"up":     ebiten.KeyArrowUp,
	"down":   ebiten.KeyArrowDown,
	"a":      ebiten.KeyA,
	"b":      ebiten.KeyB,
	"c":      ebiten.KeyC,
	"d":      ebiten.KeyD,
	"e":      ebiten.KeyE,
	"f":      ebiten.KeyF,
	"g":      ebiten.KeyG,
	"h":      ebiten.KeyH,
	"i":      ebiten.KeyI,
	"j":      ebiten.KeyJ,
	"k":      ebiten.KeyK,
	"l":      ebiten.KeyL,
	"m":      ebiten.KeyM,
	"n":      ebiten.KeyN,
	"o":      ebiten.KeyO,
	"p":      ebiten.KeyP,
	"q":      ebiten.KeyQ,
	"r":      ebiten.KeyR,
	"s":      ebiten.KeyS,
	"t":      ebiten.KeyT,
	"u":      ebiten.KeyU,
	"v":      ebiten.KeyV,
	"w":      ebiten.KeyW,
	"x":      ebiten.KeyX,
	"y":      ebiten.KeyY,
	"z":      ebiten.KeyZ,
	"0":      ebiten.KeyDigit0,
	"1":      ebiten.KeyDigit1,
	"2":      ebiten.KeyDigit2,
	"3":      ebiten.KeyDigit3,
	"4":      ebiten.KeyDigit4,
	"5":      ebiten.KeyDigit5,
	"6":      ebiten.KeyDigit6,
	"7":      ebiten.KeyDigit7,
	"8":      ebiten.KeyDigit8,
	"9":      ebiten.KeyDigit9,
	"f1":     ebiten.KeyF1,
	"f2":     ebiten.KeyF2,
	"f3":     ebiten.KeyF3,
	"f4":     ebiten.KeyF4,
	"f5":     ebiten.KeyF5,
	"f6":     ebiten.KeyF6,
	"f7":     ebiten.KeyF7,
	"f8":     ebiten.KeyF8,
	"f9":     ebiten.KeyF9,
	"f10":    ebiten.KeyF10,
	"f11":    ebiten.KeyF11,
	"f12":    ebiten.KeyF12,
}

// parseKey converts a config key name to an ebiten.Key.
func parseKey(name string) (ebiten.Key, bool) {
	k, ok := keyMap[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// binding is a configured key; unset bindings never fire.
type binding struct {
	key ebiten.Key
	set bool
}

func (b binding) justPressed() bool {
	return b.set && inpututil.IsKeyJustPressed(b.key)
}

// bindings holds the global keybinds resolved from config.
type bindings struct {
	fullscreen binding
	debug      binding
	suggest    binding
}

func newBindings(kb config.KeybindConfig) bindings {
	return bindings{
		fullscreen: resolve("fullscreen", kb.Fullscreen),
		debug:      resolve("debug_overlay", kb.DebugOverlay),
		suggest:    resolve("suggest", kb.Suggest),
	}
}

func resolve(action, name string) binding {
	if name == "" {
		return binding{}
	}
	k, ok := parseKey(name)
	if !ok {
		log.Printf("Unknown key %q for %s, binding disabled", name, action)
		return binding{}
	}
	return binding{key: k, set: true}
}
