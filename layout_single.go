package f7

// SingleLayoutConfig configures the single-page layout.
type SingleLayoutConfig struct {
	Navbar  *Node
	Toolbar *Node
	// LeftPanel and RightPanel are emitted as siblings of the main
	// view, the level the toolkit expects drawers at.
	LeftPanel  *Node
	RightPanel *Node
	Page       PageConfig
}

// SingleLayout assembles one view with one page:
//
//	[panels]
//	div.view.view-main > div.page > [navbar] [toolbar] div.page-content
//
// The returned fragment belongs directly under the #app mount point.
func SingleLayout(cfg SingleLayoutConfig, content ...*Node) *Node {
	page := cfg.Page
	page.Navbar = cfg.Navbar
	page.Toolbar = cfg.Toolbar

	root := Fragment()
	if cfg.LeftPanel != nil {
		root.AddChild(cfg.LeftPanel)
	}
	if cfg.RightPanel != nil {
		root.AddChild(cfg.RightPanel)
	}
	root.AddChild(View(Page(page, content...)))
	return root
}
