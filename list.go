package f7

// ListConfig configures a list block.
type ListConfig struct {
	// MediaList sizes items for title/subtitle/media layouts.
	MediaList bool
	Inset     bool
	Outline   bool
	// Dividers draws hairlines between items (default toolkit look
	// keeps them; this forces the simple-list variant without).
	NoHairlines bool
	// Grouped takes ListGroup nodes instead of plain items; each group
	// brings its own ul with a title row.
	Grouped bool
}

// List wraps items in div.list > ul. Items should be Li nodes, usually
// from ListItem or the input builders. Grouped lists take ListGroup
// nodes directly, without the shared ul.
func List(cfg ListConfig, items ...*Node) *Node {
	root := Div(
		Class("list"),
		ClassIf(cfg.MediaList, "media-list"),
		ClassIf(cfg.Inset, "inset"),
		ClassIf(cfg.Outline, "list-outline"),
		ClassIf(cfg.NoHairlines, "no-hairlines"),
	)
	if cfg.Grouped {
		root.AddChild(items...)
		return root
	}
	root.AddChild(Ul(Child(items...)))
	return root
}

// ListGroup builds one titled section of a grouped list:
// div.list-group > ul > li.list-group-title + items.
func ListGroup(title string, items ...*Node) *Node {
	return Div(Class("list-group"),
		Ul(
			Li(Class("list-group-title"), Text(title)),
			Child(items...),
		),
	)
}

// ListItemConfig configures a single list item.
type ListItemConfig struct {
	Title    string
	Subtitle string
	// After renders trailing text (or use Badge nodes via AfterNode).
	After     string
	AfterNode *Node
	// Media is the leading slot, usually an Icon or Img.
	Media *Node
	// Href turns the item into a navigation link; PanelClose closes an
	// open panel when tapped (sidebar navigation).
	Href       string
	PanelClose bool
}

// ListItem builds li > [a.item-link] > div.item-content.
func ListItem(cfg ListItemConfig) *Node {
	inner := Div(Class("item-inner"))

	if cfg.Subtitle != "" {
		titleWrap := Div(Class("item-title-row"), Div(Class("item-title"), Text(cfg.Title)))
		inner.AddChild(titleWrap)
		inner.AddChild(Div(Class("item-subtitle"), Text(cfg.Subtitle)))
	} else {
		inner.AddChild(Div(Class("item-title"), Text(cfg.Title)))
	}

	if cfg.After != "" || cfg.AfterNode != nil {
		after := Div(Class("item-after"))
		if cfg.AfterNode != nil {
			after.AddChild(cfg.AfterNode)
		} else {
			after.AddChild(Text(cfg.After))
		}
		inner.AddChild(after)
	}

	content := Div(Class("item-content"))
	if cfg.Media != nil {
		content.AddChild(Div(Class("item-media"), cfg.Media))
	}
	content.AddChild(inner)

	if cfg.Href == "" {
		return Li(content)
	}
	return Li(
		A(
			Class("item-link"),
			ClassIf(cfg.PanelClose, "panel-close"),
			Attr("href", cfg.Href),
			content,
		),
	)
}
