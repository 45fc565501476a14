package f7

// ToolbarPosition fixes a toolbar to the top or bottom of the view.
type ToolbarPosition string

const (
	ToolbarTop    ToolbarPosition = "top"
	ToolbarBottom ToolbarPosition = "bottom"
)

// ToolbarConfig configures a toolbar or tabbar.
type ToolbarConfig struct {
	// Position defaults to bottom, the toolkit's mobile convention.
	Position ToolbarPosition

	// Tabbar styles the toolbar as a tab bar; Icons additionally sizes
	// it for icon+label tab links.
	Tabbar bool
	Icons  bool

	// HideOnScroll hides the toolbar when page content scrolls down.
	HideOnScroll bool
}

// Toolbar builds div.toolbar.toolbar-{pos} > div.toolbar-inner.
func Toolbar(cfg ToolbarConfig, children ...*Node) *Node {
	pos := cfg.Position
	switch pos {
	case "":
		pos = ToolbarBottom
	case ToolbarTop, ToolbarBottom:
	default:
		panic("f7: invalid toolbar position " + string(pos))
	}

	return Div(Class("toolbar", "toolbar-"+string(pos)),
		ClassIf(cfg.Tabbar, "tabbar"),
		ClassIf(cfg.Tabbar && cfg.Icons, "tabbar-icons"),
		ClassIf(cfg.HideOnScroll, "toolbar-hidden-by-scroll"),
		Div(Class("toolbar-inner"), Child(children...)),
	)
}
