package f7

import (
	"strings"
	"testing"
)

func TestSingleLayout_Hierarchy(t *testing.T) {
	layout := SingleLayout(SingleLayoutConfig{
		Navbar:    Navbar(NavbarConfig{Title: "Home"}),
		Toolbar:   Toolbar(ToolbarConfig{}, Link("/", "Home", "")),
		LeftPanel: Panel(PanelLeft, PanelConfig{}),
		Page:      PageConfig{Name: "home"},
	}, BlockTitle("Hi", false))

	children := layout.Children()
	if len(children) != 2 {
		t.Fatalf("layout should emit panel + view, got %d children", len(children))
	}
	if !children[0].HasClass("panel") {
		t.Error("panel should precede the main view")
	}
	view := children[1]
	if !view.HasClass("view") || !view.HasClass("view-main") {
		t.Error("main view should carry view view-main")
	}

	page := view.Children()[0]
	if !page.HasClass("page") {
		t.Fatal("view should contain the page")
	}
	if v, _ := page.Attr("data-name"); v != "home" {
		t.Errorf("page data-name = %q, want home", v)
	}

	// navbar, toolbar, then content, in that order
	pageKids := page.Children()
	if len(pageKids) != 3 {
		t.Fatalf("page should have navbar+toolbar+content, got %d", len(pageKids))
	}
	if !pageKids[0].HasClass("navbar") {
		t.Error("first page child should be the navbar")
	}
	if !pageKids[1].HasClass("toolbar") {
		t.Error("second page child should be the toolbar")
	}
	if !pageKids[2].HasClass("page-content") {
		t.Error("last page child should be the page content")
	}
}

func TestTabLayout_LinksTargetTabs(t *testing.T) {
	layout := TabLayout(TabLayoutConfig{},
		TabItem{ID: "t1", Label: "One"},
		TabItem{ID: "t2", Label: "Two", Icon: "gear"},
	)

	// Every tab link href must target an existing tab id.
	var hrefs []string
	layout.Walk(func(n *Node) {
		if n.HasClass("tab-link") {
			href, _ := n.Attr("href")
			hrefs = append(hrefs, href)
		}
	})
	if len(hrefs) != 2 {
		t.Fatalf("expected 2 tab links, got %d", len(hrefs))
	}
	for _, href := range hrefs {
		id := strings.TrimPrefix(href, "#")
		if layout.FindByID(id) == nil {
			t.Errorf("tab link %q has no matching tab region", href)
		}
	}
}

func TestTabLayout_FirstTabActiveByDefault(t *testing.T) {
	layout := TabLayout(TabLayoutConfig{},
		TabItem{ID: "a", Label: "A"},
		TabItem{ID: "b", Label: "B"},
	)

	first := layout.FindByID("a")
	if first == nil || !first.HasClass("tab-active") {
		t.Error("first tab should be active when none is marked")
	}
	second := layout.FindByID("b")
	if second.HasClass("tab-active") {
		t.Error("second tab should not be active")
	}
	link := layout.Find(func(n *Node) bool { return n.HasClass("tab-link-active") })
	if link == nil {
		t.Fatal("one tab link should be active")
	}
	if href, _ := link.Attr("href"); href != "#a" {
		t.Errorf("active link href = %q, want #a", href)
	}
}

func TestTabLayout_ExplicitActiveWins(t *testing.T) {
	layout := TabLayout(TabLayoutConfig{},
		TabItem{ID: "a", Label: "A"},
		TabItem{ID: "b", Label: "B", Active: true},
	)

	if layout.FindByID("a").HasClass("tab-active") {
		t.Error("first tab should not be active when another is marked")
	}
	if !layout.FindByID("b").HasClass("tab-active") {
		t.Error("marked tab should be active")
	}
}

func TestTabLayout_IconsEnableTabbarIcons(t *testing.T) {
	withIcons := TabLayout(TabLayoutConfig{},
		TabItem{ID: "a", Label: "A", Icon: "house"},
	)
	if withIcons.Find(func(n *Node) bool { return n.HasClass("tabbar-icons") }) == nil {
		t.Error("tabbar should carry tabbar-icons when any tab has an icon")
	}

	without := TabLayout(TabLayoutConfig{},
		TabItem{ID: "a", Label: "A"},
	)
	if without.Find(func(n *Node) bool { return n.HasClass("tabbar-icons") }) != nil {
		t.Error("tabbar should not carry tabbar-icons without icons")
	}
}

func TestTabLayout_Panics(t *testing.T) {
	type tc struct {
		items []TabItem
	}

	tests := map[string]tc{
		"no tabs":       {items: nil},
		"missing id":    {items: []TabItem{{Label: "A"}}},
		"duplicate ids": {items: []TabItem{{ID: "a"}, {ID: "a"}}},
		"two active": {items: []TabItem{
			{ID: "a", Active: true},
			{ID: "b", Active: true},
		}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("TabLayout should panic")
				}
			}()
			TabLayout(TabLayoutConfig{}, tt.items...)
		})
	}
}

func TestTabLayout_LeavesCallerTabsUntouched(t *testing.T) {
	items := []TabItem{
		{ID: "a", Label: "A"},
		{ID: "b", Label: "B"},
	}

	layout := TabLayout(TabLayoutConfig{}, items...)

	if !layout.FindByID("a").HasClass("tab-active") {
		t.Error("first tab should still be activated in the markup")
	}
	for i, item := range items {
		if item.Active {
			t.Errorf("items[%d].Active flipped; layout should normalize a copy", i)
		}
	}
}

func TestTabLayout_AnimatedAndSwipeableWrappers(t *testing.T) {
	animated := TabLayout(TabLayoutConfig{Animated: true}, TabItem{ID: "a"})
	if animated.Find(func(n *Node) bool { return n.HasClass("tabs-animated-wrap") }) == nil {
		t.Error("animated layout should wrap tabs in tabs-animated-wrap")
	}

	swipeable := TabLayout(TabLayoutConfig{Swipeable: true}, TabItem{ID: "a"})
	if swipeable.Find(func(n *Node) bool { return n.HasClass("tabs-swipeable-wrap") }) == nil {
		t.Error("swipeable layout should wrap tabs in tabs-swipeable-wrap")
	}
}

func TestSplitLayout_SidebarPinnedAboveBreakpoint(t *testing.T) {
	layout := SplitLayout(SplitLayoutConfig{
		Navbar:       Navbar(NavbarConfig{Title: "Main"}),
		SidebarTitle: "Nav",
		Sidebar: []*Node{
			List(ListConfig{}, ListItem(ListItemConfig{Title: "Home", Href: "/", PanelClose: true})),
		},
	}, BlockTitle("Content", false))

	children := layout.Children()
	if len(children) != 2 {
		t.Fatalf("split layout should emit sidebar + view, got %d", len(children))
	}

	sidebar := children[0]
	if !sidebar.HasClass("panel-left") || !sidebar.HasClass("panel-reveal") {
		t.Error("sidebar should be a left reveal panel")
	}
	if v, _ := sidebar.Attr("data-visible-breakpoint"); v != "960" {
		t.Errorf("default breakpoint = %q, want 960", v)
	}

	// The sidebar navbar is hoisted beside its page-content.
	page := sidebar.FindByClass("page")
	kids := page.Children()
	if len(kids) != 2 || !kids[0].HasClass("navbar") || !kids[1].HasClass("page-content") {
		t.Error("sidebar page should hold navbar then page-content")
	}

	if !children[1].HasClass("view-main") {
		t.Error("second child should be the main view")
	}
}

func TestSplitLayout_CustomBreakpoint(t *testing.T) {
	layout := SplitLayout(SplitLayoutConfig{Breakpoint: 768})
	sidebar := layout.Children()[0]
	if v, _ := sidebar.Attr("data-visible-breakpoint"); v != "768" {
		t.Errorf("breakpoint = %q, want 768", v)
	}
}
