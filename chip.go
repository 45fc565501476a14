package f7

// ChipConfig configures a chip.
type ChipConfig struct {
	// Media is an optional leading slot (icon or image); MediaColor
	// tints its background.
	Media      *Node
	MediaColor string
	Outline    bool
	// Deleteable adds the delete affordance the toolkit wires up.
	Deleteable bool
	Color      string
}

// Chip builds div.chip with optional media and delete button.
func Chip(label string, cfg ChipConfig) *Node {
	chip := Div(
		Class("chip"),
		ClassIf(cfg.Outline, "chip-outline"),
		ClassIf(cfg.Color != "", "color-"+cfg.Color),
	)
	if cfg.Media != nil {
		chip.AddChild(Div(
			Class("chip-media"),
			ClassIf(cfg.MediaColor != "", "bg-color-"+cfg.MediaColor),
			cfg.Media,
		))
	}
	chip.AddChild(Div(Class("chip-label"), Text(label)))
	if cfg.Deleteable {
		chip.AddChild(A(Class("chip-delete"), Attr("href", "#")))
	}
	return chip
}

// Badge builds span.badge, typically placed in an item-after slot or
// on a tab link.
func Badge(label string, color string) *Node {
	return Span(
		Class("badge"),
		ClassIf(color != "", "color-"+color),
		Text(label),
	)
}
