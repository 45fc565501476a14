package f7

// BlockConfig configures a content block.
type BlockConfig struct {
	// Strong gives the block a filled background; Inset rounds and
	// insets it from the screen edges.
	Strong bool
	Inset  bool
}

// Block wraps content in the toolkit's base spacing container.
func Block(cfg BlockConfig, children ...*Node) *Node {
	return Div(
		Class("block"),
		ClassIf(cfg.Strong, "block-strong"),
		ClassIf(cfg.Inset, "inset"),
		Child(children...),
	)
}

// BlockTitle renders a section heading above a block or list.
// Large renders the oversized variant.
func BlockTitle(title string, large bool) *Node {
	return Div(
		Class("block-title"),
		ClassIf(large, "block-title-large"),
		Text(title),
	)
}

// BlockHeader renders auxiliary text above a block.
func BlockHeader(text string) *Node {
	return Div(Class("block-header"), Text(text))
}

// BlockFooter renders auxiliary text below a block.
func BlockFooter(text string) *Node {
	return Div(Class("block-footer"), Text(text))
}
