package f7

// Plumbing shared by the layout builders in layout_single.go,
// layout_tabs.go, and layout_split.go.

// View wraps content in the toolkit's main view container:
// div.view.view-main. Every layout has exactly one main view.
func View(children ...*Node) *Node {
	return Div(Class("view", "view-main"), Child(children...))
}

// validateTabs enforces the layout tab invariants: at least one tab,
// unique ids, at most one explicitly active tab. When none is marked
// active the first is activated. Returns the normalized slice.
func validateTabs(items []TabItem) []TabItem {
	if len(items) == 0 {
		panic("f7: tab layout requires at least one tab")
	}
	// Normalize a copy so activating the first tab never writes through
	// to the caller's slice.
	items = append([]TabItem(nil), items...)
	seen := make(map[string]bool, len(items))
	activeCount := 0
	for _, item := range items {
		if item.ID == "" {
			panic("f7: tab requires an id")
		}
		if seen[item.ID] {
			panic("f7: duplicate tab id " + item.ID)
		}
		seen[item.ID] = true
		if item.Active {
			activeCount++
		}
	}
	if activeCount > 1 {
		panic("f7: multiple tabs marked active")
	}
	if activeCount == 0 {
		items[0].Active = true
	}
	return items
}
