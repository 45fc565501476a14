package f7

// NavbarConfig configures a navbar. The zero value renders an empty
// navbar with no title.
type NavbarConfig struct {
	Title    string
	Subtitle string

	// Left and Right populate the side slots of the inner bar.
	Left  []*Node
	Right []*Node

	// LeftPanelToggle / RightPanelToggle add panel-open links for the
	// corresponding side panels.
	LeftPanelToggle  bool
	RightPanelToggle bool

	// BackLink adds a back navigation link with the given label on the
	// left, before any other left content.
	BackLink string

	// Large enables the expanded large-title variant.
	Large bool
	// Transparent renders the bar without background until scrolled.
	// Only honored together with Large, matching toolkit behavior.
	Transparent bool
	// HideOnScroll hides the navbar when the page content scrolls down.
	HideOnScroll bool

	// Subnavbar is placed inside the inner bar, below the title row.
	Subnavbar *Node
}

// Navbar builds the top navigation bar:
// div.navbar > div.navbar-bg + div.navbar-inner > [left] title [right].
func Navbar(cfg NavbarConfig) *Node {
	inner := Div(Class("navbar-inner"),
		ClassIf(cfg.Large, "navbar-inner-large"),
	)

	left := cfg.leftSlot()
	if left != nil {
		inner.AddChild(left)
	}

	if cfg.Title != "" || cfg.Subtitle != "" {
		title := Div(Class("title"), Text(cfg.Title))
		if cfg.Subtitle != "" {
			title.AddChild(Span(Class("subtitle"), Text(cfg.Subtitle)))
		}
		inner.AddChild(title)
	}

	right := cfg.rightSlot()
	if right != nil {
		inner.AddChild(right)
	}

	if cfg.Large {
		inner.AddChild(Div(Class("title-large"),
			Div(Class("title-large-text"), Text(cfg.Title)),
		))
	}

	if cfg.Subnavbar != nil {
		inner.AddChild(cfg.Subnavbar)
	}

	return Div(Class("navbar"),
		ClassIf(cfg.Large, "navbar-large"),
		ClassIf(cfg.Large && cfg.Transparent, "navbar-transparent"),
		ClassIf(cfg.HideOnScroll, "navbar-hidden-by-scroll"),
		Div(Class("navbar-bg")),
		inner,
	)
}

func (cfg NavbarConfig) leftSlot() *Node {
	if cfg.BackLink == "" && !cfg.LeftPanelToggle && len(cfg.Left) == 0 {
		return nil
	}
	left := Div(Class("left"))
	if cfg.BackLink != "" {
		left.AddChild(A(Class("link", "back"),
			Attr("href", "#"),
			Icon("chevron_left"),
			Span(Text(cfg.BackLink)),
		))
	}
	if cfg.LeftPanelToggle {
		left.AddChild(PanelToggle(PanelLeft))
	}
	left.AddChild(cfg.Left...)
	return left
}

func (cfg NavbarConfig) rightSlot() *Node {
	if !cfg.RightPanelToggle && len(cfg.Right) == 0 {
		return nil
	}
	right := Div(Class("right"))
	right.AddChild(cfg.Right...)
	if cfg.RightPanelToggle {
		right.AddChild(PanelToggle(PanelRight))
	}
	return right
}

// Subnavbar wraps children in the subnavbar container, used for
// searchbars and segmented controls below the title row.
func Subnavbar(children ...*Node) *Node {
	return Div(Class("subnavbar"),
		Div(Class("subnavbar-inner"), Child(children...)),
	)
}
