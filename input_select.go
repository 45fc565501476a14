package f7

// SelectChoice is one option in a select input.
type SelectChoice struct {
	Value string
	Label string
}

// SelectGroup is an optgroup of choices.
type SelectGroup struct {
	Label   string
	Choices []SelectChoice
}

// SelectConfig configures a dropdown select input.
type SelectConfig struct {
	Choices []SelectChoice
	// Groups render as optgroups after the ungrouped choices.
	Groups []SelectGroup
	// Selected is the value of the initially selected choice.
	Selected string
	Outline  bool
}

// SelectInput builds a native dropdown select bound under the id.
func SelectInput(id, label string, cfg SelectConfig) *Node {
	sel := buildSelect(id, cfg)
	wrap := Div(Class("item-input-wrap", "input-dropdown-wrap"), sel)
	return inputItem(label, cfg.Outline, false, wrap)
}

// SmartSelectOpenIn picks the surface a smart select opens in.
type SmartSelectOpenIn string

const (
	OpenInPage    SmartSelectOpenIn = "page"
	OpenInPopup   SmartSelectOpenIn = "popup"
	OpenInSheet   SmartSelectOpenIn = "sheet"
	OpenInPopover SmartSelectOpenIn = "popover"
)

// SmartSelectConfig configures a smart select: a select presented in a
// dedicated page/popup/sheet with search support.
type SmartSelectConfig struct {
	Choices  []SelectChoice
	Groups   []SelectGroup
	Selected string
	Multiple bool
	// OpenIn defaults to page.
	OpenIn SmartSelectOpenIn
	// Searchbar adds a filter field to the opened surface.
	Searchbar bool
}

// SmartSelect builds the item-link wrapper the toolkit upgrades into a
// smart select.
func SmartSelect(id, label string, cfg SmartSelectConfig) *Node {
	openIn := cfg.OpenIn
	if openIn == "" {
		openIn = OpenInPage
	}
	switch openIn {
	case OpenInPage, OpenInPopup, OpenInSheet, OpenInPopover:
	default:
		panic("f7: invalid smart select open-in " + string(openIn))
	}

	sel := buildSelect(id, SelectConfig{
		Choices:  cfg.Choices,
		Groups:   cfg.Groups,
		Selected: cfg.Selected,
	})
	if cfg.Multiple {
		sel.setAttr(Attribute{Key: "multiple", Bool: true})
	}

	return Li(
		A(Class("item-link", "smart-select", "smart-select-init"),
			Data("open-in", string(openIn)),
			If(cfg.Searchbar, Data("searchbar", "true")),
			sel,
			Div(Class("item-content"),
				Div(Class("item-inner"),
					Div(Class("item-title"), Text(label)),
				),
			),
		),
	)
}

func buildSelect(id string, cfg SelectConfig) *Node {
	sel := SelectEl(ID(requireID(id)), Class("bound-select-input"))
	for _, c := range cfg.Choices {
		sel.AddChild(choiceOption(c, cfg.Selected))
	}
	for _, g := range cfg.Groups {
		group := Optgroup(Attr("label", g.Label))
		for _, c := range g.Choices {
			group.AddChild(choiceOption(c, cfg.Selected))
		}
		sel.AddChild(group)
	}
	return sel
}

func choiceOption(c SelectChoice, selected string) *Node {
	label := c.Label
	if label == "" {
		label = c.Value
	}
	return OptionEl(
		Attr("value", c.Value),
		BoolAttrIf(c.Value == selected && selected != "", "selected"),
		Text(label),
	)
}
