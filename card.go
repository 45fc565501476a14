package f7

// CardConfig configures a card.
type CardConfig struct {
	Header *Node
	Footer *Node
	// Title is a convenience for a plain text header.
	Title string
	// Outline/Raised select border treatments; Expandable makes the
	// card open full-screen when tapped.
	Outline    bool
	Raised     bool
	Expandable bool
}

// Card builds div.card > [card-header] card-content [card-footer].
func Card(cfg CardConfig, content ...*Node) *Node {
	card := Div(
		Class("card"),
		ClassIf(cfg.Outline, "card-outline"),
		ClassIf(cfg.Raised, "card-raised"),
		ClassIf(cfg.Expandable, "card-expandable"),
	)

	header := cfg.Header
	if header == nil && cfg.Title != "" {
		header = Div(Class("card-header"), Text(cfg.Title))
	}
	if header != nil {
		card.AddChild(header)
	}

	card.AddChild(Div(
		Class("card-content", "card-content-padding"),
		Child(content...),
	))

	if cfg.Footer != nil {
		card.AddChild(cfg.Footer)
	}
	return card
}

// CardHeader wraps nodes for the card header slot.
func CardHeader(children ...*Node) *Node {
	return Div(Class("card-header"), Child(children...))
}

// CardFooter wraps nodes for the card footer slot.
func CardFooter(children ...*Node) *Node {
	return Div(Class("card-footer"), Child(children...))
}
