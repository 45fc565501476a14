package f7

import (
	"html"
	"io"
	"strings"
)

// Render writes the node tree as HTML. Text nodes and attribute values
// are escaped; Raw nodes and the text content of script/style elements
// are written verbatim.
func (n *Node) Render(w io.Writer) error {
	sw := &stickyWriter{w: w}
	n.render(sw, false)
	return sw.err
}

// String renders the node tree to a string.
func (n *Node) String() string {
	var b strings.Builder
	_ = n.Render(&b)
	return b.String()
}

// RenderDocument writes a complete HTML document: doctype plus the tree.
func RenderDocument(w io.Writer, root *Node) error {
	if _, err := io.WriteString(w, "<!DOCTYPE html>"); err != nil {
		return err
	}
	return root.Render(w)
}

func (n *Node) render(w *stickyWriter, rawText bool) {
	switch n.kind {
	case TextNode:
		if rawText {
			w.WriteString(n.text)
		} else {
			w.WriteString(html.EscapeString(n.text))
		}
		return
	case RawNode:
		w.WriteString(n.text)
		return
	}

	if n.isFragment() {
		for _, child := range n.children {
			child.render(w, rawText)
		}
		return
	}

	w.WriteString("<")
	w.WriteString(n.tag)
	n.renderAttrs(w)

	if voidElements[n.tag] {
		w.WriteString("/>")
		return
	}
	w.WriteString(">")

	childRaw := rawTextElements[n.tag]
	for _, child := range n.children {
		child.render(w, childRaw)
	}

	w.WriteString("</")
	w.WriteString(n.tag)
	w.WriteString(">")
}

func (n *Node) renderAttrs(w *stickyWriter) {
	if len(n.classes) > 0 {
		w.WriteString(` class="`)
		w.WriteString(html.EscapeString(joinClasses(n.classes)))
		w.WriteString(`"`)
	}
	if len(n.styles) > 0 {
		w.WriteString(` style="`)
		w.WriteString(html.EscapeString(joinStyles(n.styles)))
		w.WriteString(`"`)
	}
	for _, a := range n.attrs {
		w.WriteString(" ")
		w.WriteString(a.Key)
		if a.Bool {
			continue
		}
		w.WriteString(`="`)
		w.WriteString(html.EscapeString(a.Value))
		w.WriteString(`"`)
	}
}

// stickyWriter remembers the first write error so render code can skip
// per-write error checks.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) WriteString(str string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, str)
}
