package f7

// Arg is anything that can configure or populate an element node:
// options (Class, Attr, ID, ...) and child nodes both satisfy it.
type Arg interface {
	apply(*Node)
}

// Option configures a Node. Options satisfy Arg.
type Option func(*Node)

func (o Option) apply(n *Node) { o(n) }

// apply lets a *Node be passed directly as a child argument.
func (n *Node) apply(parent *Node) {
	if n != nil {
		parent.AddChild(n)
	}
}

// Class appends class names, skipping duplicates.
func Class(names ...string) Option {
	return func(n *Node) {
		n.AddClass(names...)
	}
}

// ClassIf appends class names only when cond is true.
func ClassIf(cond bool, names ...string) Option {
	return func(n *Node) {
		if cond {
			n.AddClass(names...)
		}
	}
}

// ID sets the id attribute.
func ID(id string) Option {
	return func(n *Node) {
		n.SetAttr("id", id)
	}
}

// Attr sets a key/value attribute. Setting an existing key replaces
// its value in place, preserving position.
func Attr(key, value string) Option {
	return func(n *Node) {
		n.SetAttr(key, value)
	}
}

// BoolAttr sets a bare boolean attribute (checked, disabled, ...).
func BoolAttr(key string) Option {
	return func(n *Node) {
		n.setAttr(Attribute{Key: key, Bool: true})
	}
}

// BoolAttrIf sets a bare boolean attribute only when cond is true.
func BoolAttrIf(cond bool, key string) Option {
	return func(n *Node) {
		if cond {
			n.setAttr(Attribute{Key: key, Bool: true})
		}
	}
}

// Data sets a data-* attribute. The key is given without the prefix.
func Data(key, value string) Option {
	return func(n *Node) {
		n.SetAttr("data-"+key, value)
	}
}

// StyleProp appends an inline style declaration.
func StyleProp(prop, value string) Option {
	return func(n *Node) {
		n.styles = append(n.styles, StyleDecl{Prop: prop, Value: value})
	}
}

// TextContent appends a text child, shorthand for Child(Text(s)).
func TextContent(s string) Option {
	return func(n *Node) {
		n.AddChild(Text(s))
	}
}

// Child appends child nodes. Nil children are skipped.
func Child(children ...*Node) Option {
	return func(n *Node) {
		n.AddChild(children...)
	}
}

// If applies args only when cond is true.
func If(cond bool, args ...Arg) Option {
	return func(n *Node) {
		if !cond {
			return
		}
		for _, arg := range args {
			if arg != nil {
				arg.apply(n)
			}
		}
	}
}
