package f7

// TabItem pairs a content region with its tab-bar link. The ID links
// the two: the tab element gets it as its DOM id and the link targets
// it via href="#id". IDs must be unique within a layout.
type TabItem struct {
	ID    string
	Label string
	// Icon is an optional icon-font name shown in the tab link.
	Icon string
	// Active marks the initially shown tab. When no item is marked,
	// layouts activate the first.
	Active  bool
	Content []*Node
}

// TabsConfig configures the tabs container.
type TabsConfig struct {
	// Animated slides between tabs; Swipeable additionally allows
	// horizontal swipe gestures. Swipeable implies the swiper wrapper.
	Animated  bool
	Swipeable bool
}

// Tabs builds the div.tabs container holding tab content regions.
// Animated and swipeable variants need an extra wrapper element for
// the toolkit's transition engine.
func Tabs(cfg TabsConfig, tabs ...*Node) *Node {
	inner := Div(Class("tabs"), Child(tabs...))
	switch {
	case cfg.Swipeable:
		return Div(Class("tabs-swipeable-wrap"), inner)
	case cfg.Animated:
		return Div(Class("tabs-animated-wrap"), inner)
	default:
		return inner
	}
}

// Tab builds one tab content region: div.tab.page-content#id.
func Tab(item TabItem) *Node {
	if item.ID == "" {
		panic("f7: tab requires an id")
	}
	return Div(
		Class("tab", "page-content"),
		ClassIf(item.Active, "tab-active"),
		ID(item.ID),
		Child(item.Content...),
	)
}

// TabLink builds the tab-bar anchor switching to the tab with the
// given id.
func TabLink(item TabItem) *Node {
	if item.ID == "" {
		panic("f7: tab link requires a target id")
	}
	link := A(
		Class("tab-link"),
		ClassIf(item.Active, "tab-link-active"),
		Attr("href", "#"+item.ID),
	)
	if item.Icon != "" {
		link.AddChild(Icon(item.Icon))
		if item.Label != "" {
			link.AddChild(Span(Class("tabbar-label"), Text(item.Label)))
		}
		return link
	}
	link.AddChild(Text(item.Label))
	return link
}
