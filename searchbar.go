package f7

// SearchbarConfig configures a searchbar form.
type SearchbarConfig struct {
	Placeholder string
	// DisableText is the cancel button label. Defaults to "Cancel".
	DisableText string
	// SearchContainer is a CSS selector for the list the searchbar
	// filters; SearchIn selects which item parts are matched.
	SearchContainer string
	SearchIn        string
	// Expandable collapses the bar into a navbar icon until tapped.
	Expandable bool
}

// Searchbar builds form.searchbar > div.searchbar-inner with the input
// wrap and disable button. Filtering behavior is wired through data
// attributes read by the toolkit.
func Searchbar(cfg SearchbarConfig) *Node {
	placeholder := cfg.Placeholder
	if placeholder == "" {
		placeholder = "Search"
	}
	disable := cfg.DisableText
	if disable == "" {
		disable = "Cancel"
	}

	return Form(
		Class("searchbar"),
		ClassIf(cfg.Expandable, "searchbar-expandable"),
		If(cfg.SearchContainer != "", Data("search-container", cfg.SearchContainer)),
		If(cfg.SearchIn != "", Data("search-in", cfg.SearchIn)),
		Div(Class("searchbar-inner"),
			Div(Class("searchbar-input-wrap"),
				InputEl(Attr("type", "search"), Attr("placeholder", placeholder)),
				I(Class("searchbar-icon")),
				Span(Class("input-clear-button")),
			),
			Span(Class("searchbar-disable-button"), Text(disable)),
		),
	)
}
