package f7

import "strconv"

// SliderConfig configures a range slider.
type SliderConfig struct {
	Min   float64
	Max   float64
	Step  float64
	Value float64
	// ValueRight enables the dual-knob variant; Value becomes the left
	// knob position.
	Dual       bool
	ValueRight float64
	// Label shows the value bubble above the knob while dragging.
	Label bool
	// Scale draws tick marks; ScaleSteps controls how many.
	Scale      bool
	ScaleSteps int
	Color      string
}

// Slider builds div.range-slider with its settings in data attributes
// read by the toolkit's range initializer. The host binding reports
// knob positions back to the server.
func Slider(id, label string, cfg SliderConfig) *Node {
	if cfg.Min >= cfg.Max {
		panic("f7: slider requires min < max")
	}
	if cfg.Value < cfg.Min || cfg.Value > cfg.Max {
		panic("f7: slider value outside [min, max]")
	}
	if cfg.Dual && (cfg.ValueRight < cfg.Value || cfg.ValueRight > cfg.Max) {
		panic("f7: slider right value outside [value, max]")
	}

	slider := Div(
		Class("range-slider", "range-slider-init", "bound-range-input"),
		ID(requireID(id)),
		Data("min", formatFloat(cfg.Min)),
		Data("max", formatFloat(cfg.Max)),
		If(cfg.Step != 0, Data("step", formatFloat(cfg.Step))),
		If(cfg.Label, Data("label", "true")),
		If(cfg.Scale, Data("scale", "true")),
		If(cfg.Scale && cfg.ScaleSteps > 0, Data("scale-steps", strconv.Itoa(cfg.ScaleSteps))),
		ClassIf(cfg.Color != "", "color-"+cfg.Color),
	)
	if cfg.Dual {
		slider.SetAttr("data-dual", "true")
		slider.SetAttr("data-value-left", formatFloat(cfg.Value))
		slider.SetAttr("data-value-right", formatFloat(cfg.ValueRight))
	} else {
		slider.SetAttr("data-value", formatFloat(cfg.Value))
	}

	return inputItem(label, false, false, Div(Class("item-input-wrap"), slider))
}
