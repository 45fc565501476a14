package f7

// --- Node's own tree API ---

// AddChild appends children to this node. Nil children are skipped.
// Panics when called on a void element; the toolkit markup for those
// never nests content.
func (n *Node) AddChild(children ...*Node) {
	if voidElements[n.tag] {
		panic("f7: AddChild on void element <" + n.tag + ">")
	}
	for _, child := range children {
		if child == nil {
			continue
		}
		child.parent = n
		n.children = append(n.children, child)
	}
}

// Children returns the child nodes.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the parent node, or nil if this is a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Walk visits n and every descendant in depth-first order.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, child := range n.children {
		child.Walk(visit)
	}
}

// Find returns the first node (depth-first, including n itself) for
// which pred returns true, or nil if none matches.
func (n *Node) Find(pred func(*Node) bool) *Node {
	if pred(n) {
		return n
	}
	for _, child := range n.children {
		if found := child.Find(pred); found != nil {
			return found
		}
	}
	return nil
}

// FindByClass returns the first descendant element carrying the class.
func (n *Node) FindByClass(name string) *Node {
	return n.Find(func(c *Node) bool { return c.HasClass(name) })
}

// FindByID returns the first descendant element with the given id.
func (n *Node) FindByID(id string) *Node {
	return n.Find(func(c *Node) bool {
		v, ok := c.Attr("id")
		return ok && v == id
	})
}
