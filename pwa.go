package f7

import (
	"encoding/json"
	"fmt"
)

// manifest is the web-app manifest document shape.
type manifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	Description     string         `json:"description,omitempty"`
	StartURL        string         `json:"start_url"`
	Display         string         `json:"display"`
	BackgroundColor string         `json:"background_color"`
	ThemeColor      string         `json:"theme_color"`
	Icons           []ManifestIcon `json:"icons,omitempty"`
}

// Manifest marshals the web-app manifest for an installable app.
func Manifest(cfg Config) ([]byte, error) {
	if !cfg.PWA.Enabled {
		return nil, fmt.Errorf("pwa is not enabled")
	}
	m := manifest{
		Name:            cfg.PWA.Name,
		ShortName:       cfg.PWA.ShortName,
		Description:     cfg.PWA.Description,
		StartURL:        cfg.PWA.StartURL,
		Display:         cfg.PWA.Display,
		BackgroundColor: cfg.PWA.BackgroundColor,
		ThemeColor:      cfg.Color,
		Icons:           cfg.PWA.Icons,
	}
	if m.Name == "" {
		m.Name = cfg.Title
	}
	if m.ShortName == "" {
		m.ShortName = m.Name
	}
	if m.StartURL == "" {
		m.StartURL = "/"
	}
	if m.Display == "" {
		m.Display = "standalone"
	}
	if m.BackgroundColor == "" {
		m.BackgroundColor = "#ffffff"
	}
	return json.MarshalIndent(m, "", "  ")
}

// ManifestLink emits the manifest link for the document head.
func ManifestLink() *Node {
	return LinkEl(Attr("rel", "manifest"), Attr("href", "/manifest.webmanifest"))
}

// LaunchStyle emits a small inline style that paints the viewport in
// the launch background color until the toolkit styles load, so the
// splash does not flash white.
func LaunchStyle(cfg Config) *Node {
	bg := cfg.PWA.BackgroundColor
	if bg == "" {
		bg = "#ffffff"
	}
	return StyleEl(Raw("html,body{background:" + bg + ";}"))
}
