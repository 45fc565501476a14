package f7

import (
	"encoding/json"

	"github.com/google/uuid"
)

// GaugeConfig configures a circular gauge. Value is a fraction in
// [0, 1].
type GaugeConfig struct {
	Value float64
	// Type is "circle" or "semicircle"; defaults to circle.
	Type string
	Size int
	// ValueText overrides the centered text (defaults to the value as
	// a percentage); Label renders beneath it.
	ValueText   string
	Label       string
	BorderColor string
	BorderWidth int
}

// Gauge builds the gauge placeholder plus the inline script that
// instantiates it. Gauges are canvas-drawn by the toolkit, so they
// need a JS init targeting the element; when no id is given one is
// generated.
func Gauge(id string, cfg GaugeConfig) *Node {
	if cfg.Value < 0 || cfg.Value > 1 {
		panic("f7: gauge value must be in [0, 1]")
	}
	typ := cfg.Type
	if typ == "" {
		typ = "circle"
	}
	if typ != "circle" && typ != "semicircle" {
		panic("f7: invalid gauge type " + typ)
	}
	if id == "" {
		id = "gauge-" + uuid.NewString()
	}

	params := map[string]any{
		"el":    "#" + id,
		"type":  typ,
		"value": cfg.Value,
	}
	if cfg.Size > 0 {
		params["size"] = cfg.Size
	}
	if cfg.ValueText != "" {
		params["valueText"] = cfg.ValueText
	}
	if cfg.Label != "" {
		params["labelText"] = cfg.Label
	}
	if cfg.BorderColor != "" {
		params["borderColor"] = cfg.BorderColor
	}
	if cfg.BorderWidth > 0 {
		params["borderWidth"] = cfg.BorderWidth
	}
	payload, err := json.Marshal(params)
	if err != nil {
		panic("f7: gauge params: " + err.Error())
	}

	return Fragment(
		Div(Class("gauge"), ID(id)),
		ScriptEl(Raw(
			"document.addEventListener('app:ready',function(){app.f7.gauge.create("+string(payload)+");});",
		)),
	)
}
