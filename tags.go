package f7

// Per-tag constructors over El. Tags colliding with component names
// carry an El suffix.

func Div(args ...Arg) *Node { return El("div", args...) }
func Span(args ...Arg) *Node { return El("span", args...) }
func P(args ...Arg) *Node { return El("p", args...) }
func A(args ...Arg) *Node { return El("a", args...) }
func Ul(args ...Arg) *Node { return El("ul", args...) }
func Ol(args ...Arg) *Node { return El("ol", args...) }
func Li(args ...Arg) *Node { return El("li", args...) }
func H1(args ...Arg) *Node { return El("h1", args...) }
func H2(args ...Arg) *Node { return El("h2", args...) }
func H3(args ...Arg) *Node { return El("h3", args...) }
func Form(args ...Arg) *Node { return El("form", args...) }
func LabelEl(args ...Arg) *Node { return El("label", args...) }
func InputEl(args ...Arg) *Node { return El("input", args...) }
func TextareaEl(args ...Arg) *Node { return El("textarea", args...) }
func SelectEl(args ...Arg) *Node { return El("select", args...) }
func OptionEl(args ...Arg) *Node { return El("option", args...) }
func Optgroup(args ...Arg) *Node { return El("optgroup", args...) }
func ButtonEl(args ...Arg) *Node { return El("button", args...) }
func I(args ...Arg) *Node { return El("i", args...) }
func Img(args ...Arg) *Node { return El("img", args...) }
func Table(args ...Arg) *Node { return El("table", args...) }
func Header(args ...Arg) *Node { return El("header", args...) }
func Footer(args ...Arg) *Node { return El("footer", args...) }
func Html(args ...Arg) *Node { return El("html", args...) }
func Head(args ...Arg) *Node { return El("head", args...) }
func Body(args ...Arg) *Node { return El("body", args...) }
func Title(args ...Arg) *Node { return El("title", args...) }
func Meta(args ...Arg) *Node { return El("meta", args...) }
func LinkEl(args ...Arg) *Node { return El("link", args...) }
func ScriptEl(args ...Arg) *Node { return El("script", args...) }
func StyleEl(args ...Arg) *Node { return El("style", args...) }

// Icon renders a Framework7 icon element. The name is an icon-font
// ligature (f7-icons or material icons depending on active theme).
func Icon(name string, args ...Arg) *Node {
	n := El("i", Class("icon", "f7-icons"), Text(name))
	for _, arg := range args {
		if arg != nil {
			arg.apply(n)
		}
	}
	return n
}
