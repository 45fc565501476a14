package f7

// SplitLayoutConfig configures the split (sidebar + content) layout
// used on tablet and desktop widths.
type SplitLayoutConfig struct {
	Navbar *Node
	// Sidebar content, typically a navigation List. Links inside it
	// should carry panel-close so tapping them collapses the drawer on
	// narrow screens; above the breakpoint the panel stays open.
	Sidebar      []*Node
	SidebarTitle string
	// Breakpoint is the viewport width (px) above which the sidebar is
	// permanently visible. Defaults to 960.
	Breakpoint int
	Page       PageConfig
}

// SplitLayout assembles a left reveal panel pinned open above the
// breakpoint, plus the main view:
//
//	div.panel.panel-left.panel-reveal > div.view > div.page > ...
//	div.view.view-main > div.page > [navbar] div.page-content
func SplitLayout(cfg SplitLayoutConfig, content ...*Node) *Node {
	breakpoint := cfg.Breakpoint
	if breakpoint == 0 {
		breakpoint = 960
	}

	var sidebarChrome *Node
	if cfg.SidebarTitle != "" {
		sidebarChrome = Navbar(NavbarConfig{Title: cfg.SidebarTitle})
	}
	sidebar := Panel(PanelLeft, PanelConfig{
		Effect:            PanelReveal,
		VisibleBreakpoint: breakpoint,
	}, cfg.Sidebar...)
	if sidebarChrome != nil {
		// Hoist the sidebar navbar into the panel's page, beside its
		// page-content.
		panelPage := sidebar.FindByClass("page")
		panelContent := sidebar.FindByClass("page-content")
		panelPage.children = []*Node{sidebarChrome, panelContent}
		sidebarChrome.parent = panelPage
	}

	page := cfg.Page
	page.Navbar = cfg.Navbar

	return Fragment(
		sidebar,
		View(Page(page, content...)),
	)
}
