package f7

import "fmt"

// NodeKind identifies what a Node holds.
type NodeKind int

const (
	// ElementNode is a markup element with a tag, attributes, and children.
	ElementNode NodeKind = iota
	// TextNode holds escaped text content.
	TextNode
	// RawNode holds pre-escaped markup emitted verbatim.
	RawNode
)

// Attribute is a single key/value attribute on an element.
// Boolean attributes render bare (no ="value").
type Attribute struct {
	Key   string
	Value string
	Bool  bool
}

// StyleDecl is a single inline style declaration.
type StyleDecl struct {
	Prop  string
	Value string
}

// Node is a markup tree node. Element nodes own their children directly;
// attribute and class insertion order is preserved so output is stable.
type Node struct {
	kind NodeKind
	tag  string
	text string // TextNode / RawNode content

	attrs   []Attribute
	classes []string
	styles  []StyleDecl

	children []*Node
	parent   *Node
}

// El creates an element node with the given tag and args.
// Args are either options (Class, Attr, ID, ...) or child nodes.
func El(tag string, args ...Arg) *Node {
	n := &Node{kind: ElementNode, tag: tag}
	for _, arg := range args {
		if arg != nil {
			arg.apply(n)
		}
	}
	return n
}

// Text creates a text node. Content is HTML-escaped at render time.
func Text(content string) *Node {
	return &Node{kind: TextNode, text: content}
}

// Textf creates a text node from a format string.
func Textf(format string, args ...any) *Node {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates a node whose content is written verbatim, without escaping.
// Only use for trusted markup such as generated inline scripts.
func Raw(markup string) *Node {
	return &Node{kind: RawNode, text: markup}
}

// Fragment groups nodes without introducing a wrapper element.
// Rendering a fragment renders its children in order.
func Fragment(children ...*Node) *Node {
	n := &Node{kind: ElementNode}
	n.AddChild(children...)
	return n
}

// Kind returns the node kind.
func (n *Node) Kind() NodeKind { return n.kind }

// Tag returns the element tag, or "" for text/raw nodes and fragments.
func (n *Node) Tag() string { return n.tag }

// TextContent returns the text of a text or raw node.
func (n *Node) TextContent() string { return n.text }

// isFragment reports whether n is a tagless element wrapper.
func (n *Node) isFragment() bool {
	return n.kind == ElementNode && n.tag == ""
}

// voidElements never carry children or a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true,
	"embed": true, "hr": true, "img": true, "input": true,
	"link": true, "meta": true, "source": true, "track": true, "wbr": true,
}

// rawTextElements emit their text children without escaping.
var rawTextElements = map[string]bool{
	"script": true, "style": true,
}
