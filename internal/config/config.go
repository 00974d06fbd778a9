package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/gabun/headicons/internal/scroll"
)

type Config struct {
	Catalog    CatalogConfig    `toml:"catalog"`
	UI         UIConfig         `toml:"ui"`
	Scroll     ScrollConfig     `toml:"scroll"`
	Suggestion SuggestionConfig `toml:"suggestion"`
	Contact    ContactConfig    `toml:"contact"`
	Keybinds   KeybindConfig    `toml:"keybinds"`
}

type CatalogConfig struct {
	Path         string `toml:"path"`
	DownloadsDir string `toml:"downloads_dir"`
	SVGSize      int    `toml:"svg_size"`
}

type UIConfig struct {
	Fullscreen bool     `toml:"fullscreen"`
	Width      int      `toml:"width"`
	Height     int      `toml:"height"`
	Title      string   `toml:"title"`
	Tagline    string   `toml:"tagline"`
	Credits    []string `toml:"credits"`
}

// ScrollConfig tunes the category strip's drag/momentum/snap behaviour.
type ScrollConfig struct {
	DragThreshold  float64 `toml:"drag_threshold"`
	Gain           float64 `toml:"gain"`
	Decay          float64 `toml:"decay"`
	SettleVelocity float64 `toml:"settle_velocity"`
	GlideSpeed     float64 `toml:"glide_speed"`
	GlideEpsilon   float64 `toml:"glide_epsilon"`
	FrameCoupled   bool    `toml:"frame_coupled"`
	WheelRemap     bool    `toml:"wheel_remap"`
	ButtonStep     float64 `toml:"button_step"`
}

type SuggestionConfig struct {
	Endpoint   string `toml:"endpoint"`
	ServiceID  string `toml:"service_id"`
	TemplateID string `toml:"template_id"`
	PublicKey  string `toml:"public_key"`
}

type ContactConfig struct {
	Email   string `toml:"email"`
	Subject string `toml:"subject"`
}

type KeybindConfig struct {
	Fullscreen   string `toml:"fullscreen"`
	DebugOverlay string `toml:"debug_overlay"`
	Suggest      string `toml:"suggest"`
}

func DefaultConfig() *Config {
	sc := scroll.DefaultConfig()
	return &Config{
		Catalog: CatalogConfig{
			Path:    "icons.toml",
			SVGSize: 256,
		},
		UI: UIConfig{
			Fullscreen: false,
			Width:      1280,
			Height:     800,
			Title:      "SMASH HEAD ICONS",
			Tagline:    "Choose your fighter",
			Credits: []string{
				"Icons made by GabUn",
				"All characters and franchises belong to their respective owners. This is a fan-made project and is not affiliated with or endorsed by any studio.",
				"You can freely use them for personal projects. For other types of projects, please send me a message. Thanks!",
			},
		},
		Scroll: ScrollConfig{
			DragThreshold:  sc.DragThreshold,
			Gain:           sc.Gain,
			Decay:          sc.Decay,
			SettleVelocity: sc.SettleVelocity,
			GlideSpeed:     sc.GlideSpeed,
			GlideEpsilon:   sc.GlideEpsilon,
			WheelRemap:     true,
			ButtonStep:     220,
		},
		Suggestion: SuggestionConfig{
			Endpoint: "https://api.emailjs.com",
		},
		Contact: ContactConfig{
			Subject: "Message from Shi",
		},
		Keybinds: KeybindConfig{
			Fullscreen:   "F11",
			DebugOverlay: "F12",
			Suggest:      "F2",
		},
	}
}

// ScrollTuning converts the [scroll] section into controller settings.
func (c *Config) ScrollTuning() scroll.Config {
	sc := scroll.DefaultConfig()
	sc.DragThreshold = c.Scroll.DragThreshold
	sc.Gain = c.Scroll.Gain
	sc.Decay = c.Scroll.Decay
	sc.SettleVelocity = c.Scroll.SettleVelocity
	sc.GlideSpeed = c.Scroll.GlideSpeed
	sc.GlideEpsilon = c.Scroll.GlideEpsilon
	sc.FrameCoupled = c.Scroll.FrameCoupled
	return sc
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "headicons"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// DownloadsDir returns where saved icons go, defaulting to ~/Downloads.
func (c *Config) DownloadsDir() string {
	if c.Catalog.DownloadsDir != "" {
		return c.Catalog.DownloadsDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return os.TempDir()
	}
	return filepath.Join(home, "Downloads")
}

func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the config at path over the defaults. A missing file yields
// the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
