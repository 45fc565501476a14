package f7

import "strconv"

// Side identifies which edge a panel slides in from.
type Side string

const (
	PanelLeft  Side = "left"
	PanelRight Side = "right"
)

// PanelEffect is the slide-in animation style.
type PanelEffect string

const (
	// PanelCover slides the panel over the content (default).
	PanelCover PanelEffect = "cover"
	// PanelReveal slides the content away to reveal the panel.
	PanelReveal PanelEffect = "reveal"
	// PanelPush pushes the content along with the panel.
	PanelPush PanelEffect = "push"
)

// PanelConfig configures a slide-in side panel.
type PanelConfig struct {
	// Effect defaults to cover.
	Effect PanelEffect
	// Resizable lets the user drag the panel edge.
	Resizable bool
	// NoBackdrop suppresses the dimmed backdrop behind an open panel.
	NoBackdrop bool
	// VisibleBreakpoint keeps the panel permanently open above the
	// given viewport width (px). Zero means never.
	VisibleBreakpoint int
}

// Panel builds a side drawer: div.panel.panel-{side}.panel-{effect}
// containing a view/page wrapper around the content. Side must be
// PanelLeft or PanelRight.
func Panel(side Side, cfg PanelConfig, content ...*Node) *Node {
	if side != PanelLeft && side != PanelRight {
		panic("f7: invalid panel side " + string(side))
	}
	effect := cfg.Effect
	if effect == "" {
		effect = PanelCover
	}
	switch effect {
	case PanelCover, PanelReveal, PanelPush:
	default:
		panic("f7: invalid panel effect " + string(effect))
	}

	p := Div(
		Class("panel", "panel-"+string(side), "panel-"+string(effect)),
		ClassIf(cfg.Resizable, "panel-resizable"),
		If(cfg.NoBackdrop, Data("backdrop", "false")),
		If(cfg.VisibleBreakpoint > 0,
			Data("visible-breakpoint", strconv.Itoa(cfg.VisibleBreakpoint))),
		Div(Class("view"),
			Div(Class("page"),
				Div(Class("page-content"), Child(content...)),
			),
		),
	)
	return p
}

// PanelToggle builds the icon link that opens a side panel.
func PanelToggle(side Side) *Node {
	if side != PanelLeft && side != PanelRight {
		panic("f7: invalid panel side " + string(side))
	}
	return A(
		Class("link", "icon-only", "panel-open"),
		Attr("href", "#"),
		Data("panel", string(side)),
		Icon("bars"),
	)
}

// PanelClose builds a link that closes any open panel, for use inside
// panel content.
func PanelClose(children ...*Node) *Node {
	return A(Class("link", "panel-close"), Attr("href", "#"), Child(children...))
}
