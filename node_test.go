package f7

import (
	"testing"
)

func TestEl_Defaults(t *testing.T) {
	n := El("div")

	if n.Kind() != ElementNode {
		t.Error("El() should create an element node")
	}
	if n.Tag() != "div" {
		t.Errorf("Tag() = %q, want %q", n.Tag(), "div")
	}
	if len(n.Children()) != 0 {
		t.Errorf("El() should have no children, got %d", len(n.Children()))
	}
	if n.Parent() != nil {
		t.Error("El() should have no parent")
	}
}

func TestEl_WithArgs(t *testing.T) {
	type tc struct {
		args    []Arg
		check   func(*Node) bool
		message string
	}

	tests := map[string]tc{
		"Class": {
			args:    []Arg{Class("page")},
			check:   func(n *Node) bool { return n.HasClass("page") },
			message: "Class should add the class",
		},
		"ClassIf true": {
			args:    []Arg{ClassIf(true, "active")},
			check:   func(n *Node) bool { return n.HasClass("active") },
			message: "ClassIf(true) should add the class",
		},
		"ClassIf false": {
			args:    []Arg{ClassIf(false, "active")},
			check:   func(n *Node) bool { return !n.HasClass("active") },
			message: "ClassIf(false) should not add the class",
		},
		"ID": {
			args: []Arg{ID("home")},
			check: func(n *Node) bool {
				v, ok := n.Attr("id")
				return ok && v == "home"
			},
			message: "ID should set the id attribute",
		},
		"Attr": {
			args: []Arg{Attr("href", "#")},
			check: func(n *Node) bool {
				v, ok := n.Attr("href")
				return ok && v == "#"
			},
			message: "Attr should set the attribute",
		},
		"Data": {
			args: []Arg{Data("panel", "left")},
			check: func(n *Node) bool {
				v, ok := n.Attr("data-panel")
				return ok && v == "left"
			},
			message: "Data should set the data- attribute",
		},
		"TextContent": {
			args: []Arg{TextContent("hi")},
			check: func(n *Node) bool {
				kids := n.Children()
				return len(kids) == 1 && kids[0].Kind() == TextNode && kids[0].TextContent() == "hi"
			},
			message: "TextContent should append a text child",
		},
		"child node": {
			args:    []Arg{Span()},
			check:   func(n *Node) bool { return len(n.Children()) == 1 },
			message: "a *Node arg should become a child",
		},
		"nil arg skipped": {
			args:    []Arg{nil, Span()},
			check:   func(n *Node) bool { return len(n.Children()) == 1 },
			message: "nil args should be skipped",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			n := El("div", tt.args...)
			if !tt.check(n) {
				t.Error(tt.message)
			}
		})
	}
}

func TestNode_AddChild(t *testing.T) {
	parent := Div()
	child1 := Span()
	child2 := Span()

	parent.AddChild(child1, nil, child2)

	if len(parent.Children()) != 2 {
		t.Errorf("AddChild: len(Children) = %d, want 2", len(parent.Children()))
	}
	if parent.Children()[0] != child1 {
		t.Error("AddChild: first child mismatch")
	}
	if child1.Parent() != parent {
		t.Error("AddChild: child1.Parent() not set")
	}
}

func TestNode_AddChild_VoidElementPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("AddChild on void element should panic")
		}
	}()
	InputEl().AddChild(Span())
}

func TestNode_AddClass_Dedupes(t *testing.T) {
	n := Div(Class("page", "page", "no-swipeback"))
	n.AddClass("page")

	got := n.Classes()
	if len(got) != 2 || got[0] != "page" || got[1] != "no-swipeback" {
		t.Errorf("Classes() = %v, want [page no-swipeback]", got)
	}
}

func TestNode_RemoveClass(t *testing.T) {
	n := Div(Class("tab", "tab-active"))

	if !n.RemoveClass("tab-active") {
		t.Error("RemoveClass should return true for present class")
	}
	if n.HasClass("tab-active") {
		t.Error("class should be gone after RemoveClass")
	}
	if n.RemoveClass("tab-active") {
		t.Error("RemoveClass should return false for absent class")
	}
}

func TestNode_SetAttr_ReplacesInPlace(t *testing.T) {
	n := Div(Attr("href", "#"), Attr("target", "_blank"))
	n.SetAttr("href", "/home")

	attrs := n.Attrs()
	if len(attrs) != 2 {
		t.Fatalf("len(Attrs) = %d, want 2", len(attrs))
	}
	if attrs[0].Key != "href" || attrs[0].Value != "/home" {
		t.Errorf("SetAttr should replace in place, got %+v", attrs[0])
	}
}

func TestNode_SetAttr_StyleFoldsIntoDeclarations(t *testing.T) {
	n := Div(StyleProp("color", "red"))
	n.SetAttr("style", "margin: 0; padding: 4px")

	if v, _ := n.Attr("style"); v != "color: red; margin: 0; padding: 4px;" {
		t.Errorf(`Attr("style") = %q`, v)
	}
	for _, a := range n.Attrs() {
		if a.Key == "style" {
			t.Error("style should never be stored as a plain attribute")
		}
	}
	if got := n.String(); got != `<div style="color: red; margin: 0; padding: 4px;"></div>` {
		t.Errorf("render should emit one style attribute, got %q", got)
	}
}

func TestNode_Attr_ClassAndStyle(t *testing.T) {
	n := Div(Class("a", "b"), StyleProp("color", "red"))

	if v, ok := n.Attr("class"); !ok || v != "a b" {
		t.Errorf(`Attr("class") = %q, %v; want "a b", true`, v, ok)
	}
	if v, ok := n.Attr("style"); !ok || v != "color: red;" {
		t.Errorf(`Attr("style") = %q, %v; want "color: red;", true`, v, ok)
	}

	empty := Div()
	if _, ok := empty.Attr("class"); ok {
		t.Error("empty class list should report unset")
	}
}

func TestNode_Walk_VisitsDepthFirst(t *testing.T) {
	root := Div(ID("root"), Span(ID("a"), I(ID("b"))), Span(ID("c")))

	var order []string
	root.Walk(func(n *Node) {
		if v, ok := n.Attr("id"); ok {
			order = append(order, v)
		}
	})

	want := []string{"root", "a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("Walk visited %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("Walk visited %v, want %v", order, want)
		}
	}
}

func TestNode_Find(t *testing.T) {
	root := Div(Span(Class("target")), Span(ID("x")))

	if root.FindByClass("target") == nil {
		t.Error("FindByClass should find the descendant")
	}
	if root.FindByID("x") == nil {
		t.Error("FindByID should find the descendant")
	}
	if root.FindByID("missing") != nil {
		t.Error("FindByID should return nil when absent")
	}
}

func TestFragment_HasNoTag(t *testing.T) {
	f := Fragment(Div(), Div())

	if !f.isFragment() {
		t.Error("Fragment should be a tagless element wrapper")
	}
	if len(f.Children()) != 2 {
		t.Errorf("Fragment children = %d, want 2", len(f.Children()))
	}
}
