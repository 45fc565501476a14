package f7

// AccordionItem is one collapsible section.
type AccordionItem struct {
	Title string
	// Opened expands the section initially.
	Opened  bool
	Content []*Node
}

// Accordion builds a list of collapsible items. The toolkit toggles
// the accordion-item-opened class on tap.
func Accordion(items ...AccordionItem) *Node {
	list := Ul()
	for _, item := range items {
		list.AddChild(Li(
			Class("accordion-item"),
			ClassIf(item.Opened, "accordion-item-opened"),
			A(Class("item-content", "item-link"), Attr("href", "#"),
				Div(Class("item-inner"),
					Div(Class("item-title"), Text(item.Title)),
				),
			),
			Div(Class("accordion-item-content"),
				Block(BlockConfig{}, item.Content...),
			),
		))
	}
	return Div(Class("list", "accordion-list"), list)
}
