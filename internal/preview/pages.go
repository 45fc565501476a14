package preview

import (
	f7 "github.com/lamarque/go-f7"
)

// The demo pages double as a component kitchen sink: each exercises a
// layout plus a slice of the widget catalogue.

// SinglePage is the single-view layout demo with a left panel, cards,
// and a gauge.
func SinglePage(cfg f7.Config) *f7.Node {
	panel := f7.Panel(f7.PanelLeft, f7.PanelConfig{},
		f7.BlockTitle("Menu", false),
		f7.List(f7.ListConfig{},
			f7.ListItem(f7.ListItemConfig{Title: "Home", Href: "/", PanelClose: true}),
			f7.ListItem(f7.ListItemConfig{Title: "Tabs", Href: "/tabs", PanelClose: true}),
			f7.ListItem(f7.ListItemConfig{Title: "Split", Href: "/split", PanelClose: true}),
			f7.ListItem(f7.ListItemConfig{Title: "Inputs", Href: "/inputs", PanelClose: true}),
		),
	)

	return f7.SingleLayout(f7.SingleLayoutConfig{
		Navbar: f7.Navbar(f7.NavbarConfig{
			Title:           cfg.Title,
			Subtitle:        "single layout",
			LeftPanelToggle: true,
		}),
		Toolbar: f7.Toolbar(f7.ToolbarConfig{},
			f7.Link("/", "Home", ""),
			f7.Link("/inputs", "Inputs", ""),
		),
		LeftPanel: panel,
		Page:      f7.PageConfig{Name: "home", PullToRefresh: true},
	},
		f7.BlockTitle("Welcome", true),
		f7.Card(f7.CardConfig{Title: "Cards", Outline: true},
			f7.P(f7.Text("Markup composed on the server, animated by the toolkit.")),
		),
		f7.Block(f7.BlockConfig{Strong: true, Inset: true},
			f7.Gauge("demo-gauge", f7.GaugeConfig{Value: 0.44, Label: "completion"}),
		),
		f7.Block(f7.BlockConfig{},
			f7.Chip("ios", f7.ChipConfig{}),
			f7.Chip("md", f7.ChipConfig{Outline: true}),
			f7.ProgressBar("demo-progress", 60, "blue"),
		),
	)
}

// TabsPage is the tabbed layout demo.
func TabsPage(cfg f7.Config) *f7.Node {
	return f7.TabLayout(f7.TabLayoutConfig{
		Navbar:   f7.Navbar(f7.NavbarConfig{Title: cfg.Title, Subtitle: "tab layout"}),
		Animated: true,
		Page:     f7.PageConfig{Name: "tabs"},
	},
		f7.TabItem{
			ID: "tab-feed", Label: "Feed", Icon: "house",
			Content: []*f7.Node{
				f7.BlockTitle("Feed", false),
				f7.Block(f7.BlockConfig{Strong: true}, f7.P(f7.Text("First tab."))),
			},
		},
		f7.TabItem{
			ID: "tab-catalog", Label: "Catalog", Icon: "square_list",
			Content: []*f7.Node{
				f7.BlockTitle("Catalog", false),
				f7.Accordion(
					f7.AccordionItem{Title: "Section 1", Content: []*f7.Node{f7.P(f7.Text("One"))}},
					f7.AccordionItem{Title: "Section 2", Content: []*f7.Node{f7.P(f7.Text("Two"))}},
				),
			},
		},
		f7.TabItem{
			ID: "tab-settings", Label: "Settings", Icon: "gear",
			Content: []*f7.Node{
				f7.BlockTitle("Settings", false),
				f7.List(f7.ListConfig{},
					f7.Toggle("notify", "Notifications", true),
					f7.Toggle("sounds", "Sounds", false),
				),
			},
		},
	)
}

// SplitPage is the split (sidebar) layout demo.
func SplitPage(cfg f7.Config) *f7.Node {
	return f7.SplitLayout(f7.SplitLayoutConfig{
		Navbar:       f7.Navbar(f7.NavbarConfig{Title: cfg.Title, Subtitle: "split layout"}),
		SidebarTitle: "Navigation",
		Sidebar: []*f7.Node{
			f7.List(f7.ListConfig{},
				f7.ListItem(f7.ListItemConfig{Title: "Home", Href: "/", PanelClose: true}),
				f7.ListItem(f7.ListItemConfig{Title: "Tabs", Href: "/tabs", PanelClose: true}),
				f7.ListItem(f7.ListItemConfig{Title: "Inputs", Href: "/inputs", PanelClose: true}),
			),
		},
		Page: f7.PageConfig{Name: "split"},
	},
		f7.BlockTitle("Content", true),
		f7.Block(f7.BlockConfig{Strong: true},
			f7.P(f7.Text("The sidebar stays open above the breakpoint.")),
		),
	)
}

// InputsPage exercises the form input catalogue.
func InputsPage(cfg f7.Config) *f7.Node {
	return f7.SingleLayout(f7.SingleLayoutConfig{
		Navbar: f7.Navbar(f7.NavbarConfig{Title: "Inputs", BackLink: "Back"}),
		Page:   f7.PageConfig{Name: "inputs"},
	},
		f7.BlockTitle("Text", false),
		f7.List(f7.ListConfig{},
			f7.TextInput("name", "Name", f7.TextConfig{Placeholder: "Your name", ClearButton: true}),
			f7.PasswordInput("secret", "Password", f7.TextConfig{Outline: true}),
			f7.EmailInput("email", "E-mail", f7.TextConfig{FloatingLabel: true}),
			f7.NumberInput("age", "Age", f7.NumberConfig{Value: 30, Min: 0, Max: 120, Step: 1}),
			f7.TextArea("bio", "Bio", f7.TextAreaConfig{Resizable: true}),
		),
		f7.BlockTitle("Choices", false),
		f7.List(f7.ListConfig{},
			f7.SelectInput("fruit", "Fruit", f7.SelectConfig{
				Choices: []f7.SelectChoice{
					{Value: "apple", Label: "Apple"},
					{Value: "pear", Label: "Pear"},
				},
				Selected: "pear",
			}),
			f7.SmartSelect("cities", "Cities", f7.SmartSelectConfig{
				Choices: []f7.SelectChoice{
					{Value: "ams", Label: "Amsterdam"},
					{Value: "ber", Label: "Berlin"},
					{Value: "lis", Label: "Lisbon"},
				},
				Multiple:  true,
				OpenIn:    f7.OpenInPopup,
				Searchbar: true,
			}),
			f7.CheckboxInput("tos", "Accept terms", false),
		),
		f7.RadioGroup("plan", "Plan",
			[]f7.GroupChoice{{Value: "free"}, {Value: "pro"}}, "free"),
		f7.CheckboxGroup("extras", "Extras",
			[]f7.GroupChoice{{Value: "gpu"}, {Value: "backup"}}, "backup"),
		f7.BlockTitle("Ranges", false),
		f7.List(f7.ListConfig{},
			f7.Slider("volume", "Volume", f7.SliderConfig{Min: 0, Max: 100, Value: 40, Label: true}),
			f7.Stepper("count", "Count", f7.StepperConfig{Min: 0, Max: 10, Value: 2, Fill: true}),
		),
		f7.Block(f7.BlockConfig{},
			f7.Button("save", "Save", f7.ButtonConfig{Fill: true}),
			f7.SegmentedButtons(true,
				f7.Button("", "Left", f7.ButtonConfig{Outline: true}),
				f7.Button("", "Right", f7.ButtonConfig{Outline: true}),
			),
		),
		f7.Fab("add", f7.FabConfig{Icon: "plus"}),
	)
}
