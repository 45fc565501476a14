package f7

// TextConfig configures the text-like inputs.
type TextConfig struct {
	Value       string
	Placeholder string
	// ClearButton adds the tap-to-clear affordance.
	ClearButton bool
	// Outline draws the outlined input variant.
	Outline bool
	// FloatingLabel floats the label into the input until it has text.
	FloatingLabel bool
	// Info renders a hint line under the input.
	Info string
}

// TextInput builds a single-line text input bound to the host under
// the given id.
func TextInput(id, label string, cfg TextConfig) *Node {
	return textLike(id, label, "text", cfg)
}

// PasswordInput builds a password input.
func PasswordInput(id, label string, cfg TextConfig) *Node {
	return textLike(id, label, "password", cfg)
}

// EmailInput builds an email input with the matching mobile keyboard.
func EmailInput(id, label string, cfg TextConfig) *Node {
	return textLike(id, label, "email", cfg)
}

func textLike(id, label, typ string, cfg TextConfig) *Node {
	input := InputEl(
		Attr("type", typ),
		ID(requireID(id)),
		Class("input-with-value", "bound-text-input"),
		If(cfg.Value != "", Attr("value", cfg.Value)),
		If(cfg.Placeholder != "", Attr("placeholder", cfg.Placeholder)),
	)
	wrap := Div(Class("item-input-wrap"), input)
	if cfg.ClearButton {
		wrap.AddChild(Span(Class("input-clear-button")))
	}
	if cfg.Info != "" {
		wrap.AddChild(Div(Class("item-input-info"), Text(cfg.Info)))
	}
	return inputItem(label, cfg.Outline, cfg.FloatingLabel, wrap)
}

// TextAreaConfig configures a multi-line text input.
type TextAreaConfig struct {
	Value       string
	Placeholder string
	// Resizable grows the textarea with its content.
	Resizable bool
	Outline   bool
}

// TextArea builds a multi-line text input.
func TextArea(id, label string, cfg TextAreaConfig) *Node {
	ta := TextareaEl(
		ID(requireID(id)),
		Class("bound-text-input"),
		ClassIf(cfg.Resizable, "resizable"),
		If(cfg.Placeholder != "", Attr("placeholder", cfg.Placeholder)),
		If(cfg.Value != "", Text(cfg.Value)),
	)
	return inputItem(label, cfg.Outline, false, Div(Class("item-input-wrap"), ta))
}

// NumberConfig configures a numeric input. When Min < Max the initial
// Value must fall inside the range.
type NumberConfig struct {
	Value float64
	Min   float64
	Max   float64
	Step  float64
	// Outline draws the outlined input variant.
	Outline bool
}

// NumberInput builds a numeric input with the numeric mobile keyboard.
func NumberInput(id, label string, cfg NumberConfig) *Node {
	if cfg.Min < cfg.Max && (cfg.Value < cfg.Min || cfg.Value > cfg.Max) {
		panic("f7: number input value outside [min, max]")
	}
	input := InputEl(
		Attr("type", "number"),
		ID(requireID(id)),
		Class("bound-number-input"),
		Attr("value", formatFloat(cfg.Value)),
		If(cfg.Min < cfg.Max, Attr("min", formatFloat(cfg.Min))),
		If(cfg.Min < cfg.Max, Attr("max", formatFloat(cfg.Max))),
		If(cfg.Step != 0, Attr("step", formatFloat(cfg.Step))),
	)
	return inputItem(label, cfg.Outline, false, Div(Class("item-input-wrap"), input))
}
