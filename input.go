package f7

import "strconv"

// Inputs are pure builders emitting toolkit list-item markup. Each
// input's root element carries the widget id and a marker class the
// reactive host's client bindings discover and wire to server inputs.

// requireID panics on an empty widget id. The host keys every input
// binding on the id, so an empty one can never work.
func requireID(id string) string {
	if id == "" {
		panic("f7: input requires a non-empty id")
	}
	return id
}

// inputItem is the common list-item scaffold:
// li.item-content.item-input > div.item-inner > label + item-input-wrap.
func inputItem(label string, outline, floating bool, wrap *Node) *Node {
	inner := Div(Class("item-inner"))
	if label != "" {
		inner.AddChild(Div(
			Class("item-title", "item-label"),
			ClassIf(floating, "item-floating-label"),
			Text(label),
		))
	}
	inner.AddChild(wrap)
	return Li(
		Class("item-content", "item-input"),
		ClassIf(outline, "item-input-outline"),
		inner,
	)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
