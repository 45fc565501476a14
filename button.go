package f7

// ButtonConfig configures a button.
type ButtonConfig struct {
	// Fill/Outline/Raised/Round select visual variants.
	Fill    bool
	Outline bool
	Raised  bool
	Round   bool
	Small   bool
	Large   bool
	Color   string
	// Href makes the button navigate instead of acting as a host
	// input trigger.
	Href string
	Icon string
}

// Button builds a.button. With a non-empty id the host treats taps as
// an action input (click counter keyed on the id).
func Button(id, label string, cfg ButtonConfig) *Node {
	href := cfg.Href
	if href == "" {
		href = "#"
	}
	btn := A(
		Class("button"),
		ClassIf(cfg.Fill, "button-fill"),
		ClassIf(cfg.Outline, "button-outline"),
		ClassIf(cfg.Raised, "button-raised"),
		ClassIf(cfg.Round, "button-round"),
		ClassIf(cfg.Small, "button-small"),
		ClassIf(cfg.Large, "button-large"),
		ClassIf(cfg.Color != "", "color-"+cfg.Color),
		Attr("href", href),
	)
	if id != "" {
		btn.SetAttr("id", id)
		btn.AddClass("bound-action-button")
	}
	if cfg.Icon != "" {
		btn.AddChild(Icon(cfg.Icon))
	}
	if label != "" {
		btn.AddChild(Text(label))
	}
	return btn
}

// SegmentedButtons groups buttons in div.segmented. Variants on the
// group (raised, round) apply to the container per toolkit CSS.
func SegmentedButtons(raised bool, buttons ...*Node) *Node {
	return Div(
		Class("segmented"),
		ClassIf(raised, "segmented-raised"),
		Child(buttons...),
	)
}

// Link builds a plain toolkit link with optional icon.
func Link(href, label string, icon string) *Node {
	l := A(Class("link"), Attr("href", href))
	if icon != "" {
		l.AddChild(Icon(icon))
		l.AddClass("icon-only")
	}
	if label != "" {
		l.RemoveClass("icon-only")
		l.AddChild(Span(Text(label)))
	}
	return l
}

// FabPosition places a floating action button.
type FabPosition string

const (
	FabRightBottom  FabPosition = "right-bottom"
	FabRightTop     FabPosition = "right-top"
	FabRightCenter  FabPosition = "right-center"
	FabLeftBottom   FabPosition = "left-bottom"
	FabLeftTop      FabPosition = "left-top"
	FabLeftCenter   FabPosition = "left-center"
	FabCenterBottom FabPosition = "center-bottom"
	FabCenterTop    FabPosition = "center-top"
	FabCenterCenter FabPosition = "center-center"
)

// FabConfig configures a floating action button.
type FabConfig struct {
	// Position defaults to right-bottom.
	Position FabPosition
	Icon     string
	Color    string
	// SpeedDial buttons expand from the fab when tapped.
	SpeedDial []*Node
}

// Fab builds the floating action button fixed over the page content.
func Fab(id string, cfg FabConfig) *Node {
	pos := cfg.Position
	if pos == "" {
		pos = FabRightBottom
	}
	icon := cfg.Icon
	if icon == "" {
		icon = "plus"
	}

	link := A(Attr("href", "#"), Icon(icon))
	if id != "" {
		link.SetAttr("id", id)
		link.AddClass("bound-action-button")
	}

	fab := Div(
		Class("fab", "fab-"+string(pos)),
		ClassIf(cfg.Color != "", "color-"+cfg.Color),
		link,
	)
	if len(cfg.SpeedDial) > 0 {
		fab.AddClass("fab-morph")
		fab.AddChild(Div(Class("fab-buttons", "fab-buttons-up"), Child(cfg.SpeedDial...)))
	}
	return fab
}

// FabButton builds one speed-dial entry for a Fab.
func FabButton(id, label string) *Node {
	b := A(Class("fab-close"), Attr("href", "#"), Text(label))
	if id != "" {
		b.SetAttr("id", id)
		b.AddClass("bound-action-button")
	}
	return b
}
