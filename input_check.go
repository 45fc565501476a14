package f7

// CheckboxInput builds a single labeled checkbox list item.
func CheckboxInput(id, label string, checked bool) *Node {
	return Li(
		LabelEl(Class("item-checkbox", "item-content"),
			InputEl(
				Attr("type", "checkbox"),
				ID(requireID(id)),
				Class("bound-checkbox-input"),
				BoolAttrIf(checked, "checked"),
			),
			I(Class("icon", "icon-checkbox")),
			Div(Class("item-inner"),
				Div(Class("item-title"), Text(label)),
			),
		),
	)
}

// GroupChoice is one entry of a checkbox or radio group.
type GroupChoice struct {
	Value string
	Label string
}

// CheckboxGroup builds a group of checkboxes sharing the widget id as
// their input name; the host reads the set of checked values.
func CheckboxGroup(id, label string, choices []GroupChoice, selected ...string) *Node {
	requireID(id)
	sel := make(map[string]bool, len(selected))
	for _, s := range selected {
		sel[s] = true
	}

	items := Ul()
	for _, c := range choices {
		items.AddChild(Li(
			LabelEl(Class("item-checkbox", "item-content"),
				InputEl(
					Attr("type", "checkbox"),
					Attr("name", id),
					Attr("value", c.Value),
					BoolAttrIf(sel[c.Value], "checked"),
				),
				I(Class("icon", "icon-checkbox")),
				Div(Class("item-inner"),
					Div(Class("item-title"), Text(choiceLabel(c))),
				),
			),
		))
	}

	return groupList(id, "bound-checkbox-group", label, items)
}

// RadioGroup builds a group of radio buttons sharing the widget id as
// their input name; the host reads the single checked value.
func RadioGroup(id, label string, choices []GroupChoice, selected string) *Node {
	requireID(id)

	items := Ul()
	for _, c := range choices {
		items.AddChild(Li(
			LabelEl(Class("item-radio", "item-content"),
				InputEl(
					Attr("type", "radio"),
					Attr("name", id),
					Attr("value", c.Value),
					BoolAttrIf(c.Value == selected && selected != "", "checked"),
				),
				I(Class("icon", "icon-radio")),
				Div(Class("item-inner"),
					Div(Class("item-title"), Text(choiceLabel(c))),
				),
			),
		))
	}

	return groupList(id, "bound-radio-group", label, items)
}

// Toggle builds a switch control in a list item.
func Toggle(id, label string, checked bool) *Node {
	return Li(Class("item-content"),
		Div(Class("item-inner"),
			Div(Class("item-title"), Text(label)),
			Div(Class("item-after"),
				LabelEl(Class("toggle"),
					InputEl(
						Attr("type", "checkbox"),
						ID(requireID(id)),
						Class("bound-toggle-input"),
						BoolAttrIf(checked, "checked"),
					),
					Span(Class("toggle-icon")),
				),
			),
		),
	)
}

// groupList wraps group items in a list block carrying the widget id
// and binding class on the container, where the host binding looks.
// The block title stays a sibling of the list, per toolkit CSS.
func groupList(id, binding, label string, items *Node) *Node {
	list := Div(ID(id), Class("list", binding), items)
	if label == "" {
		return list
	}
	return Fragment(Div(Class("block-title"), Text(label)), list)
}

func choiceLabel(c GroupChoice) string {
	if c.Label == "" {
		return c.Value
	}
	return c.Label
}
