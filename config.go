package f7

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Theme selects the toolkit's visual language.
type Theme string

const (
	// ThemeAuto picks ios or md from the user agent at runtime.
	ThemeAuto Theme = "auto"
	ThemeIOS  Theme = "ios"
	ThemeMD   Theme = "md"
)

// DarkMode selects the color scheme.
type DarkMode string

const (
	DarkAuto DarkMode = "auto"
	DarkOff  DarkMode = "light"
	DarkOn   DarkMode = "dark"
)

// Config is the app-level configuration handed to AppShell and
// InitScript. The zero value is not usable directly; start from
// DefaultConfig.
type Config struct {
	Title string `yaml:"title"`
	Lang  string `yaml:"lang"`
	Theme Theme  `yaml:"theme"`
	// Color is the primary theme color as a CSS hex value.
	Color    string   `yaml:"color"`
	DarkMode DarkMode `yaml:"dark_mode"`
	// FilledBars paints navbars/toolbars with the theme color.
	FilledBars bool `yaml:"filled_bars"`
	// TapHold enables long-press events; TouchRipple the md ripple.
	TapHold     bool `yaml:"tap_hold"`
	TouchRipple bool `yaml:"touch_ripple"`
	// HideNavbarOnScroll applies globally unless pages override it.
	HideNavbarOnScroll bool `yaml:"hide_navbar_on_scroll"`
	// ServiceWorker is the registration path, empty to disable.
	ServiceWorker string    `yaml:"service_worker"`
	PWA           PWAConfig `yaml:"pwa"`
}

// PWAConfig controls installable-app metadata.
type PWAConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Name        string `yaml:"name"`
	ShortName   string `yaml:"short_name"`
	Description string `yaml:"description"`
	// BackgroundColor paints the launch screen.
	BackgroundColor string `yaml:"background_color"`
	// Display defaults to standalone.
	Display  string         `yaml:"display"`
	StartURL string         `yaml:"start_url"`
	Icons    []ManifestIcon `yaml:"icons"`
}

// ManifestIcon is one icon entry of the web-app manifest.
type ManifestIcon struct {
	Src   string `yaml:"src" json:"src"`
	Sizes string `yaml:"sizes" json:"sizes"`
	Type  string `yaml:"type" json:"type"`
}

// DefaultConfig returns a working standalone configuration.
func DefaultConfig() Config {
	return Config{
		Title:       "App",
		Lang:        "en",
		Theme:       ThemeAuto,
		Color:       "#007aff",
		DarkMode:    DarkAuto,
		TouchRipple: true,
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enum-like fields.
func (c Config) Validate() error {
	switch c.Theme {
	case ThemeAuto, ThemeIOS, ThemeMD:
	default:
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	switch c.DarkMode {
	case DarkAuto, DarkOff, DarkOn:
	default:
		return fmt.Errorf("unknown dark mode %q", c.DarkMode)
	}
	return nil
}

// appSettings is the JSON payload the init script feeds the toolkit
// constructor. A struct keeps key output stable.
type appSettings struct {
	El       string         `json:"el"`
	Name     string         `json:"name"`
	Theme    string         `json:"theme"`
	DarkMode any            `json:"darkMode"`
	Colors   map[string]any `json:"colors,omitempty"`
	Touch    touchSettings  `json:"touch"`
	Navbar   navbarSettings `json:"navbar"`
	SW       *swSettings    `json:"serviceWorker,omitempty"`
}

type touchSettings struct {
	TapHold     bool `json:"tapHold"`
	TouchRipple bool `json:"mdTouchRipple"`
}

type navbarSettings struct {
	HideOnPageScroll bool `json:"hideOnPageScroll"`
}

type swSettings struct {
	Path string `json:"path"`
}

// FilledBarsStyle paints navbars and toolbars with the primary color,
// the toolkit's filled chrome look. AppShell appends it after the
// toolkit stylesheets when Config.FilledBars is set, so it wins the
// cascade.
func FilledBarsStyle(cfg Config) *Node {
	color := cfg.Color
	if color == "" {
		color = DefaultConfig().Color
	}
	return StyleEl(Raw(
		".navbar-bg{background:" + color + ";}" +
			".navbar .title,.navbar .subtitle,.navbar .link{color:#fff;}" +
			".toolbar{background:" + color + ";}" +
			".toolbar .link,.toolbar .tab-link{color:#fff;}",
	))
}

// InitScript emits the inline script that instantiates the toolkit app
// over the finished DOM and announces readiness on the document.
func InitScript(cfg Config) *Node {
	if err := cfg.Validate(); err != nil {
		panic("f7: " + err.Error())
	}

	settings := appSettings{
		El:    "#app",
		Name:  cfg.Title,
		Theme: string(cfg.Theme),
		Touch: touchSettings{TapHold: cfg.TapHold, TouchRipple: cfg.TouchRipple},
		Navbar: navbarSettings{
			HideOnPageScroll: cfg.HideNavbarOnScroll,
		},
	}
	// The toolkit takes darkMode as "auto" or a boolean.
	switch cfg.DarkMode {
	case DarkAuto:
		settings.DarkMode = "auto"
	case DarkOn:
		settings.DarkMode = true
	default:
		settings.DarkMode = false
	}
	if cfg.Color != "" {
		settings.Colors = map[string]any{"primary": cfg.Color}
	}
	if cfg.ServiceWorker != "" {
		settings.SW = &swSettings{Path: cfg.ServiceWorker}
	}

	payload, err := json.Marshal(settings)
	if err != nil {
		panic("f7: app settings: " + err.Error())
	}

	script := "window.app = {};" +
		"app.f7 = new Framework7(" + string(payload) + ");" +
		"document.dispatchEvent(new Event('app:ready'));"
	return ScriptEl(Raw(script))
}
