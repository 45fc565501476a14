package f7

import "strings"

// Attr returns the value of an attribute and whether it is set.
// "class" and "style" are assembled from the class list and style
// declarations rather than stored as plain attributes.
func (n *Node) Attr(key string) (string, bool) {
	switch key {
	case "class":
		if len(n.classes) == 0 {
			return "", false
		}
		return joinClasses(n.classes), true
	case "style":
		if len(n.styles) == 0 {
			return "", false
		}
		return joinStyles(n.styles), true
	}
	for _, a := range n.attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets a key/value attribute, replacing an existing key in
// place. "class" and "style" values fold into the class list and style
// declarations instead of being stored as plain attributes.
func (n *Node) SetAttr(key, value string) {
	n.setAttr(Attribute{Key: key, Value: value})
}

func (n *Node) setAttr(attr Attribute) {
	if attr.Key == "class" {
		n.AddClass(splitClasses(attr.Value)...)
		return
	}
	if attr.Key == "style" {
		n.styles = append(n.styles, splitStyles(attr.Value)...)
		return
	}
	for i, a := range n.attrs {
		if a.Key == attr.Key {
			n.attrs[i] = attr
			return
		}
	}
	n.attrs = append(n.attrs, attr)
}

// RemoveAttr removes an attribute. Returns true if it was present.
func (n *Node) RemoveAttr(key string) bool {
	for i, a := range n.attrs {
		if a.Key == key {
			n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
			return true
		}
	}
	return false
}

// Attrs returns the attributes in insertion order.
func (n *Node) Attrs() []Attribute {
	return n.attrs
}

// AddClass appends class names, skipping empties and duplicates while
// preserving first-seen order.
func (n *Node) AddClass(names ...string) {
	for _, name := range names {
		if name == "" || n.HasClass(name) {
			continue
		}
		n.classes = append(n.classes, name)
	}
}

// RemoveClass removes a class name. Returns true if it was present.
func (n *Node) RemoveClass(name string) bool {
	for i, c := range n.classes {
		if c == name {
			n.classes = append(n.classes[:i], n.classes[i+1:]...)
			return true
		}
	}
	return false
}

// HasClass returns true if the node carries the class.
func (n *Node) HasClass(name string) bool {
	for _, c := range n.classes {
		if c == name {
			return true
		}
	}
	return false
}

// Classes returns the class list in order.
func (n *Node) Classes() []string {
	return n.classes
}

func joinClasses(classes []string) string {
	out := ""
	for i, c := range classes {
		if i > 0 {
			out += " "
		}
		out += c
	}
	return out
}

func joinStyles(styles []StyleDecl) string {
	out := ""
	for i, s := range styles {
		if i > 0 {
			out += " "
		}
		out += s.Prop + ": " + s.Value + ";"
	}
	return out
}

func splitStyles(s string) []StyleDecl {
	var out []StyleDecl
	for _, decl := range strings.Split(s, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.TrimSpace(prop)
		value = strings.TrimSpace(value)
		if prop == "" || value == "" {
			continue
		}
		out = append(out, StyleDecl{Prop: prop, Value: value})
	}
	return out
}

func splitClasses(s string) []string {
	var out []string
	start := -1
	for i, r := range s {
		if r == ' ' || r == '\t' || r == '\n' {
			if start >= 0 {
				out = append(out, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, s[start:])
	}
	return out
}
