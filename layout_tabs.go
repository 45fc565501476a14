package f7

// TabLayoutConfig configures the tabbed layout.
type TabLayoutConfig struct {
	Navbar     *Node
	LeftPanel  *Node
	RightPanel *Node
	// Animated/Swipeable select the tab transition style.
	Animated  bool
	Swipeable bool
	Page      PageConfig
}

// TabLayout assembles a page whose content is a set of tab regions
// driven by a bottom tabbar. Each tab's anchor targets its region by
// id; the first tab is active unless one is marked explicitly.
// Panics when no tabs are given or tab ids collide.
func TabLayout(cfg TabLayoutConfig, items ...TabItem) *Node {
	items = validateTabs(items)

	links := make([]*Node, len(items))
	regions := make([]*Node, len(items))
	hasIcons := false
	for i, item := range items {
		links[i] = TabLink(item)
		regions[i] = Tab(item)
		if item.Icon != "" {
			hasIcons = true
		}
	}

	tabbar := Toolbar(ToolbarConfig{
		Position: ToolbarBottom,
		Tabbar:   true,
		Icons:    hasIcons,
	}, links...)

	// The tab regions are the page contents; the page gets no
	// page-content of its own.
	page := Div(Class("page"))
	if cfg.Page.Name != "" {
		page.SetAttr("data-name", cfg.Page.Name)
	}
	if cfg.Navbar != nil {
		page.AddChild(cfg.Navbar)
	}
	page.AddChild(tabbar)
	page.AddChild(Tabs(TabsConfig{Animated: cfg.Animated, Swipeable: cfg.Swipeable}, regions...))

	root := Fragment()
	if cfg.LeftPanel != nil {
		root.AddChild(cfg.LeftPanel)
	}
	if cfg.RightPanel != nil {
		root.AddChild(cfg.RightPanel)
	}
	root.AddChild(View(page))
	return root
}
