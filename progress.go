package f7

import "strconv"

// ProgressBar builds a determinate progress bar at the given percent
// (clamped to [0, 100]).
func ProgressBar(id string, percent int, color string) *Node {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return Div(
		Class("progressbar"),
		ClassIf(color != "", "color-"+color),
		If(id != "", ID(id)),
		Data("progress", strconv.Itoa(percent)),
		Span(),
	)
}

// ProgressBarInfinite builds the indeterminate variant.
func ProgressBarInfinite(color string) *Node {
	return Div(
		Class("progressbar-infinite"),
		ClassIf(color != "", "color-"+color),
	)
}

// PreloaderSize selects a preloader size variant.
type PreloaderSize string

const (
	PreloaderDefault PreloaderSize = ""
	PreloaderSmall   PreloaderSize = "small"
	PreloaderLarge   PreloaderSize = "large"
)

// Preloader builds the spinning activity indicator.
func Preloader(size PreloaderSize, color string) *Node {
	switch size {
	case PreloaderDefault, PreloaderSmall, PreloaderLarge:
	default:
		panic("f7: invalid preloader size " + string(size))
	}
	return Div(
		Class("preloader"),
		ClassIf(size != PreloaderDefault, "preloader-"+string(size)),
		ClassIf(color != "", "color-"+color),
	)
}
