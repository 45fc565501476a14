package f7

import "strconv"

// PageConfig configures a page shell.
type PageConfig struct {
	// Name is exposed as data-name for the toolkit's router/page events.
	Name string

	// Navbar and Toolbar are hoisted to page level: the toolkit
	// positions them as siblings of the page content, never inside it.
	Navbar  *Node
	Toolbar *Node

	// PullToRefresh enables the pull-down refresh gesture and emits
	// the preloader/arrow markup the toolkit animates.
	PullToRefresh bool
	// InfiniteScroll enables the bottom-of-content load trigger with
	// its preloader.
	InfiniteScroll bool
	// InfiniteDistance is the trigger distance in px (0 = toolkit default).
	InfiniteDistance int

	// HideNavbarOnScroll / HideToolbarOnScroll let scrolling collapse
	// the chrome bars.
	HideNavbarOnScroll  bool
	HideToolbarOnScroll bool
}

// Page builds div.page > div.page-content with navbar/toolbar hoisted
// beside the content.
func Page(cfg PageConfig, content ...*Node) *Node {
	pc := Div(Class("page-content"),
		ClassIf(cfg.PullToRefresh, "ptr-content"),
		ClassIf(cfg.InfiniteScroll, "infinite-scroll-content"),
		ClassIf(cfg.HideNavbarOnScroll, "hide-navbar-on-scroll"),
		ClassIf(cfg.HideToolbarOnScroll, "hide-toolbar-on-scroll"),
	)
	if cfg.PullToRefresh {
		pc.SetAttr("data-ptr", "true")
		pc.AddChild(Div(Class("ptr-preloader"),
			Div(Class("preloader")),
			Div(Class("ptr-arrow")),
		))
	}
	if cfg.InfiniteScroll && cfg.InfiniteDistance > 0 {
		pc.SetAttr("data-infinite-distance", strconv.Itoa(cfg.InfiniteDistance))
	}
	pc.AddChild(content...)
	if cfg.InfiniteScroll {
		pc.AddChild(Div(Class("preloader", "infinite-scroll-preloader")))
	}

	page := Div(Class("page"))
	if cfg.Name != "" {
		page.SetAttr("data-name", cfg.Name)
	}
	if cfg.Navbar != nil {
		page.AddChild(cfg.Navbar)
	}
	if cfg.Toolbar != nil {
		page.AddChild(cfg.Toolbar)
	}
	page.AddChild(pc)
	return page
}

// AppShell wraps a layout in a complete document: head metadata,
// toolkit stylesheets, the #app mount point, toolkit scripts, and the
// init script last so the toolkit sees the finished DOM.
func AppShell(cfg Config, layout *Node) *Node {
	head := Head(
		Meta(Attr("charset", "utf-8")),
		Meta(Attr("name", "viewport"),
			Attr("content", "width=device-width, initial-scale=1, maximum-scale=1, minimum-scale=1, user-scalable=no, viewport-fit=cover")),
		Meta(Attr("name", "apple-mobile-web-app-capable"), Attr("content", "yes")),
		Meta(Attr("name", "theme-color"), Attr("content", cfg.Color)),
		Title(Text(cfg.Title)),
	)
	if cfg.PWA.Enabled {
		head.AddChild(ManifestLink())
		head.AddChild(LaunchStyle(cfg))
	}
	head.AddChild(Stylesheets()...)
	if cfg.FilledBars {
		head.AddChild(FilledBarsStyle(cfg))
	}

	body := Body(Div(ID("app"), layout))
	for _, s := range Scripts() {
		body.AddChild(s)
	}
	body.AddChild(InitScript(cfg))

	return Html(Attr("lang", cfg.Lang), head, body)
}
