package f7

import "github.com/google/uuid"

// PopupConfig configures a full-screen popup.
type PopupConfig struct {
	Title string
	// TabletFullscreen keeps the popup full-screen on large viewports
	// instead of the centered modal.
	TabletFullscreen bool
	// SwipeToClose allows dragging the popup down to dismiss it.
	SwipeToClose bool
}

// Popup builds the popup markup with a close-link navbar. Pair it with
// PopupOpen using the same id.
func Popup(id string, cfg PopupConfig, content ...*Node) *Node {
	if id == "" {
		id = "popup-" + uuid.NewString()
	}
	navbar := Navbar(NavbarConfig{
		Title: cfg.Title,
		Right: []*Node{A(Class("link", "popup-close"), Attr("href", "#"), Text("Close"))},
	})
	return Div(
		Class("popup"),
		ID(id),
		ClassIf(cfg.TabletFullscreen, "popup-tablet-fullscreen"),
		If(cfg.SwipeToClose, Data("swipe-to-close", "true")),
		View(Div(Class("page"),
			navbar,
			Div(Class("page-content"), Child(content...)),
		)),
	)
}

// PopupOpen builds a link opening the popup with the given id.
func PopupOpen(id string, children ...*Node) *Node {
	return A(
		Class("link", "popup-open"),
		Attr("href", "#"),
		Data("popup", "#"+id),
		Child(children...),
	)
}

// SheetConfig configures a bottom sheet modal.
type SheetConfig struct {
	// SwipeToClose/SwipeToStep enable the drag gestures.
	SwipeToClose bool
	SwipeToStep  bool
	// Backdrop dims the page behind the sheet.
	Backdrop bool
}

// Sheet builds the bottom sheet markup. Pair with SheetOpen.
func Sheet(id string, cfg SheetConfig, content ...*Node) *Node {
	if id == "" {
		id = "sheet-" + uuid.NewString()
	}
	return Div(
		Class("sheet-modal"),
		ID(id),
		ClassIf(cfg.SwipeToClose || cfg.SwipeToStep, "sheet-modal-swipe-to-close"),
		If(cfg.SwipeToClose, Data("swipe-to-close", "true")),
		If(cfg.SwipeToStep, Data("swipe-to-step", "true")),
		If(cfg.Backdrop, Data("backdrop", "true")),
		Div(Class("sheet-modal-inner"),
			Div(Class("swipe-handler")),
			Div(Class("page-content"), Child(content...)),
		),
	)
}

// SheetOpen builds a link opening the sheet with the given id.
func SheetOpen(id string, children ...*Node) *Node {
	return A(
		Class("link", "sheet-open"),
		Attr("href", "#"),
		Data("sheet", "#"+id),
		Child(children...),
	)
}
