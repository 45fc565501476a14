package f7

// StepperSize selects a stepper size variant.
type StepperSize string

const (
	StepperDefault StepperSize = ""
	StepperSmall   StepperSize = "small"
	StepperLarge   StepperSize = "large"
)

// StepperConfig configures a plus/minus stepper.
type StepperConfig struct {
	Min   float64
	Max   float64
	Step  float64
	Value float64
	// Autorepeat keeps stepping while a button is held; Wraps jumps
	// from max back to min.
	Autorepeat bool
	Wraps      bool
	// Manual allows typing a value directly into the field.
	Manual bool
	Size   StepperSize
	Fill   bool
	Round  bool
	Color  string
}

// Stepper builds div.stepper with minus/plus buttons around the value
// field. Settings travel in data attributes for the toolkit
// initializer.
func Stepper(id, label string, cfg StepperConfig) *Node {
	if cfg.Min >= cfg.Max {
		panic("f7: stepper requires min < max")
	}
	if cfg.Value < cfg.Min || cfg.Value > cfg.Max {
		panic("f7: stepper value outside [min, max]")
	}
	switch cfg.Size {
	case StepperDefault, StepperSmall, StepperLarge:
	default:
		panic("f7: invalid stepper size " + string(cfg.Size))
	}

	input := InputEl(
		Attr("type", "text"),
		Attr("value", formatFloat(cfg.Value)),
		BoolAttrIf(!cfg.Manual, "readonly"),
	)

	stepper := Div(
		Class("stepper", "stepper-init", "bound-stepper-input"),
		ID(requireID(id)),
		ClassIf(cfg.Size != StepperDefault, "stepper-"+string(cfg.Size)),
		ClassIf(cfg.Fill, "stepper-fill"),
		ClassIf(cfg.Round, "stepper-round"),
		ClassIf(cfg.Color != "", "color-"+cfg.Color),
		Data("min", formatFloat(cfg.Min)),
		Data("max", formatFloat(cfg.Max)),
		If(cfg.Step != 0, Data("step", formatFloat(cfg.Step))),
		If(cfg.Autorepeat, Data("autorepeat", "true")),
		If(cfg.Wraps, Data("wraps", "true")),
		If(cfg.Manual, Data("manual-input-mode", "true")),
		Div(Class("stepper-button-minus")),
		Div(Class("stepper-input-wrap"), input),
		Div(Class("stepper-button-plus")),
	)

	if label == "" {
		return stepper
	}
	return inputItem(label, false, false, Div(Class("item-input-wrap"), stepper))
}
