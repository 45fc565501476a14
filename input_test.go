package f7

import (
	"strings"
	"testing"
)

func TestTextInput_Markup(t *testing.T) {
	item := TextInput("name", "Name", TextConfig{
		Value:       "Ada",
		Placeholder: "Your name",
		ClearButton: true,
		Info:        "required",
	})

	if !item.HasClass("item-input") {
		t.Fatal("text input should render as li.item-input")
	}
	input := item.FindByID("name")
	if input == nil {
		t.Fatal("input should carry the widget id")
	}
	if !input.HasClass("bound-text-input") {
		t.Error("input should carry the binding class")
	}
	if v, _ := input.Attr("value"); v != "Ada" {
		t.Errorf("value = %q, want Ada", v)
	}
	if item.FindByClass("input-clear-button") == nil {
		t.Error("ClearButton should add the clear affordance")
	}
	if item.FindByClass("item-input-info") == nil {
		t.Error("Info should add the hint line")
	}
	if item.FindByClass("item-label") == nil {
		t.Error("item should carry its label")
	}
}

func TestTextInput_Variants(t *testing.T) {
	type tc struct {
		node *Node
		typ  string
	}

	tests := map[string]tc{
		"password": {node: PasswordInput("pw", "Password", TextConfig{}), typ: "password"},
		"email":    {node: EmailInput("mail", "Email", TextConfig{}), typ: "email"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			input := tt.node.Find(func(n *Node) bool { return n.Tag() == "input" })
			if input == nil {
				t.Fatal("item should hold an input")
			}
			if v, _ := input.Attr("type"); v != tt.typ {
				t.Errorf("type = %q, want %q", v, tt.typ)
			}
		})
	}
}

func TestTextInput_OutlineAndFloatingLabel(t *testing.T) {
	item := TextInput("n", "Name", TextConfig{Outline: true, FloatingLabel: true})

	if !item.HasClass("item-input-outline") {
		t.Error("outline variant should mark the item")
	}
	label := item.FindByClass("item-label")
	if label == nil || !label.HasClass("item-floating-label") {
		t.Error("floating label should mark the label")
	}
}

func TestInput_EmptyIDPanics(t *testing.T) {
	type tc struct {
		build func()
	}

	tests := map[string]tc{
		"text":     {build: func() { TextInput("", "L", TextConfig{}) }},
		"textarea": {build: func() { TextArea("", "L", TextAreaConfig{}) }},
		"number":   {build: func() { NumberInput("", "L", NumberConfig{}) }},
		"select":   {build: func() { SelectInput("", "L", SelectConfig{}) }},
		"checkbox": {build: func() { CheckboxInput("", "L", false) }},
		"toggle":   {build: func() { Toggle("", "L", false) }},
		"slider":   {build: func() { Slider("", "L", SliderConfig{Max: 10, Value: 5}) }},
		"stepper":  {build: func() { Stepper("", "L", StepperConfig{Max: 10, Value: 5}) }},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("empty id should panic")
				}
			}()
			tt.build()
		})
	}
}

func TestNumberInput_RangeAttrs(t *testing.T) {
	item := NumberInput("qty", "Qty", NumberConfig{Value: 3, Min: 1, Max: 10, Step: 0.5})
	input := item.FindByID("qty")

	if v, _ := input.Attr("min"); v != "1" {
		t.Errorf("min = %q, want 1", v)
	}
	if v, _ := input.Attr("max"); v != "10" {
		t.Errorf("max = %q, want 10", v)
	}
	if v, _ := input.Attr("step"); v != "0.5" {
		t.Errorf("step = %q, want 0.5", v)
	}
}

func TestNumberInput_ValueOutsideRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("out-of-range value should panic")
		}
	}()
	NumberInput("qty", "Qty", NumberConfig{Value: 20, Min: 1, Max: 10})
}

func TestSelectInput_Choices(t *testing.T) {
	item := SelectInput("color", "Color", SelectConfig{
		Choices: []SelectChoice{
			{Value: "red", Label: "Red"},
			{Value: "blue"},
		},
		Groups: []SelectGroup{
			{Label: "Other", Choices: []SelectChoice{{Value: "green", Label: "Green"}}},
		},
		Selected: "blue",
	})

	sel := item.FindByID("color")
	if sel == nil || sel.Tag() != "select" {
		t.Fatal("item should hold select#color")
	}
	if !sel.HasClass("bound-select-input") {
		t.Error("select should carry the binding class")
	}

	var selected *Node
	sel.Walk(func(n *Node) {
		if n.Tag() == "option" {
			if _, ok := n.Attr("selected"); ok {
				selected = n
			}
		}
	})
	if selected == nil {
		t.Fatal("one option should be selected")
	}
	if v, _ := selected.Attr("value"); v != "blue" {
		t.Errorf("selected option = %q, want blue", v)
	}
	// Label falls back to the value when unset.
	if !strings.Contains(selected.String(), "blue") {
		t.Errorf("label fallback missing, got %q", selected.String())
	}

	group := sel.Find(func(n *Node) bool { return n.Tag() == "optgroup" })
	if group == nil {
		t.Fatal("groups should render as optgroups")
	}
	if v, _ := group.Attr("label"); v != "Other" {
		t.Errorf("optgroup label = %q", v)
	}
}

func TestSmartSelect_OpenInAndSearchbar(t *testing.T) {
	item := SmartSelect("country", "Country", SmartSelectConfig{
		Choices:   []SelectChoice{{Value: "fr"}, {Value: "de"}},
		OpenIn:    OpenInPopup,
		Searchbar: true,
		Multiple:  true,
	})

	link := item.FindByClass("smart-select")
	if link == nil || !link.HasClass("smart-select-init") {
		t.Fatal("smart select should render the init link")
	}
	if v, _ := link.Attr("data-open-in"); v != "popup" {
		t.Errorf("data-open-in = %q, want popup", v)
	}
	if v, _ := link.Attr("data-searchbar"); v != "true" {
		t.Error("searchbar flag should travel as data-searchbar")
	}

	sel := item.FindByID("country")
	if sel == nil {
		t.Fatal("smart select should embed the native select")
	}
	if _, ok := sel.Attr("multiple"); !ok {
		t.Error("multiple should mark the select")
	}
}

func TestSmartSelect_InvalidOpenInPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("invalid open-in should panic")
		}
	}()
	SmartSelect("x", "X", SmartSelectConfig{OpenIn: "window"})
}

func TestCheckboxGroup_SharedName(t *testing.T) {
	group := CheckboxGroup("fruit", "Fruit", []GroupChoice{
		{Value: "apple", Label: "Apple"},
		{Value: "pear"},
	}, "apple")

	list := group.FindByID("fruit")
	if list == nil || !list.HasClass("bound-checkbox-group") {
		t.Fatal("group container should carry id and binding class")
	}
	title := group.FindByClass("block-title")
	if title == nil {
		t.Fatal("labeled group should emit a block title")
	}
	if title.Parent() == list {
		t.Error("block title should be a sibling of the list, not inside it")
	}

	checkedCount := 0
	group.Walk(func(n *Node) {
		if n.Tag() != "input" {
			return
		}
		if v, _ := n.Attr("name"); v != "fruit" {
			t.Errorf("input name = %q, want fruit", v)
		}
		if _, ok := n.Attr("checked"); ok {
			checkedCount++
		}
	})
	if checkedCount != 1 {
		t.Errorf("checked inputs = %d, want 1", checkedCount)
	}
}

func TestRadioGroup_SingleSelection(t *testing.T) {
	group := RadioGroup("size", "", []GroupChoice{
		{Value: "s"}, {Value: "m"}, {Value: "l"},
	}, "m")

	if group.FindByClass("block-title") != nil {
		t.Error("unlabeled group should not emit a block title")
	}

	var checked []string
	group.Walk(func(n *Node) {
		if n.Tag() == "input" {
			if _, ok := n.Attr("checked"); ok {
				v, _ := n.Attr("value")
				checked = append(checked, v)
			}
		}
	})
	if len(checked) != 1 || checked[0] != "m" {
		t.Errorf("checked = %v, want [m]", checked)
	}
}

func TestToggle_Markup(t *testing.T) {
	item := Toggle("dark", "Dark mode", true)

	input := item.FindByID("dark")
	if input == nil || !input.HasClass("bound-toggle-input") {
		t.Fatal("toggle input should carry id and binding class")
	}
	if _, ok := input.Attr("checked"); !ok {
		t.Error("checked toggle should mark the input")
	}
	if !input.Parent().HasClass("toggle") {
		t.Error("input should sit inside label.toggle")
	}
	if item.FindByClass("toggle-icon") == nil {
		t.Error("toggle should render its icon span")
	}
}

func TestSlider_DataAttrs(t *testing.T) {
	item := Slider("vol", "Volume", SliderConfig{
		Min: 0, Max: 100, Step: 5, Value: 40,
		Label: true, Scale: true, ScaleSteps: 10,
	})
	slider := item.FindByID("vol")
	if slider == nil || !slider.HasClass("range-slider-init") {
		t.Fatal("slider should render range-slider-init")
	}

	want := map[string]string{
		"data-min":         "0",
		"data-max":         "100",
		"data-step":        "5",
		"data-value":       "40",
		"data-label":       "true",
		"data-scale":       "true",
		"data-scale-steps": "10",
	}
	for k, v := range want {
		if got, _ := slider.Attr(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
}

func TestSlider_Dual(t *testing.T) {
	item := Slider("price", "Price", SliderConfig{
		Min: 0, Max: 500, Value: 100, Dual: true, ValueRight: 300,
	})
	slider := item.FindByID("price")

	if v, _ := slider.Attr("data-dual"); v != "true" {
		t.Error("dual slider should set data-dual")
	}
	if v, _ := slider.Attr("data-value-left"); v != "100" {
		t.Errorf("data-value-left = %q", v)
	}
	if v, _ := slider.Attr("data-value-right"); v != "300" {
		t.Errorf("data-value-right = %q", v)
	}
	if _, ok := slider.Attr("data-value"); ok {
		t.Error("dual slider should not set data-value")
	}
}

func TestSlider_Panics(t *testing.T) {
	type tc struct {
		cfg SliderConfig
	}

	tests := map[string]tc{
		"min >= max":        {cfg: SliderConfig{Min: 10, Max: 10}},
		"value below min":   {cfg: SliderConfig{Min: 0, Max: 10, Value: -1}},
		"value above max":   {cfg: SliderConfig{Min: 0, Max: 10, Value: 11}},
		"right below value": {cfg: SliderConfig{Min: 0, Max: 10, Value: 5, Dual: true, ValueRight: 2}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Slider should panic")
				}
			}()
			Slider("s", "S", tt.cfg)
		})
	}
}

func TestStepper_Markup(t *testing.T) {
	node := Stepper("qty", "", StepperConfig{
		Min: 1, Max: 9, Value: 3, Autorepeat: true, Fill: true, Size: StepperSmall,
	})

	if !node.HasClass("stepper") || !node.HasClass("stepper-init") {
		t.Fatal("stepper should render stepper stepper-init")
	}
	if !node.HasClass("stepper-small") || !node.HasClass("stepper-fill") {
		t.Errorf("variant classes missing, got %v", node.Classes())
	}
	if v, _ := node.Attr("data-autorepeat"); v != "true" {
		t.Error("autorepeat should travel as data-autorepeat")
	}

	kids := node.Children()
	if len(kids) != 3 ||
		!kids[0].HasClass("stepper-button-minus") ||
		!kids[1].HasClass("stepper-input-wrap") ||
		!kids[2].HasClass("stepper-button-plus") {
		t.Fatal("stepper should hold minus, input wrap, plus in order")
	}

	input := kids[1].Children()[0]
	if _, ok := input.Attr("readonly"); !ok {
		t.Error("non-manual stepper input should be readonly")
	}
}

func TestStepper_ManualInput(t *testing.T) {
	node := Stepper("n", "", StepperConfig{Min: 0, Max: 10, Value: 1, Manual: true})

	input := node.Find(func(n *Node) bool { return n.Tag() == "input" })
	if _, ok := input.Attr("readonly"); ok {
		t.Error("manual stepper input should be editable")
	}
	if v, _ := node.Attr("data-manual-input-mode"); v != "true" {
		t.Error("manual mode should travel as data-manual-input-mode")
	}
}

func TestButton_ActionBinding(t *testing.T) {
	btn := Button("save", "Save", ButtonConfig{Fill: true, Color: "green", Icon: "checkmark"})

	if !btn.HasClass("bound-action-button") {
		t.Error("id'd button should carry the action binding class")
	}
	if v, _ := btn.Attr("id"); v != "save" {
		t.Errorf("id = %q, want save", v)
	}
	if !btn.HasClass("button-fill") || !btn.HasClass("color-green") {
		t.Errorf("variant classes missing, got %v", btn.Classes())
	}
	if btn.FindByClass("f7-icons") == nil {
		t.Error("icon should render inside the button")
	}
	if !strings.Contains(btn.String(), "Save") {
		t.Error("label should render inside the button")
	}
}

func TestButton_HrefOnly(t *testing.T) {
	btn := Button("", "About", ButtonConfig{Href: "/about"})

	if btn.HasClass("bound-action-button") {
		t.Error("href-only button should not bind as an action")
	}
	if v, _ := btn.Attr("href"); v != "/about" {
		t.Errorf("href = %q, want /about", v)
	}
}

func TestFab_SpeedDial(t *testing.T) {
	fab := Fab("add", FabConfig{
		Position:  FabLeftTop,
		SpeedDial: []*Node{FabButton("add-note", "Note"), FabButton("add-task", "Task")},
	})

	if !fab.HasClass("fab-left-top") || !fab.HasClass("fab-morph") {
		t.Errorf("fab classes = %v", fab.Classes())
	}
	buttons := fab.FindByClass("fab-buttons")
	if buttons == nil || len(buttons.Children()) != 2 {
		t.Fatal("speed dial should render its buttons")
	}
	if !buttons.Children()[0].HasClass("bound-action-button") {
		t.Error("speed dial entries should bind as actions")
	}
}
