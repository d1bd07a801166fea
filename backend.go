package plotter

import "unicode/utf8"

// Anchor tells a backend which point of the text box the given position
// refers to. Bits combine, eg AnchorRight|AnchorBottom. The zero value
// anchors at the top left corner.
type Anchor int

const (
	AnchorLeft Anchor = 1 << iota
	AnchorCenter
	AnchorRight
	AnchorTop
	AnchorMiddle
	AnchorBottom
)

// Offset returns the displacement from the anchor position to the top left
// corner of a text box of the given size.
func (a Anchor) Offset(width, height int) (int, int) {
	var dx, dy int
	switch {
	case a&AnchorCenter != 0:
		dx = -width / 2
	case a&AnchorRight != 0:
		dx = -width
	}
	switch {
	case a&AnchorMiddle != 0:
		dy = -height / 2
	case a&AnchorBottom != 0:
		dy = -height
	}
	return dx, dy
}

// Backend is the capability set a rendering target implements. All
// coordinates are absolute canvas pixels, origin top left, y growing down.
// Degenerate input (offscreen coordinates, empty paths, zero sizes) is
// absorbed as a no-op: an operation fails only on unrecoverable resource
// errors.
type Backend interface {
	// Size reports the fixed canvas dimension chosen at construction.
	Size() (int, int)

	DrawPixel(x, y int, c RGBA) error
	DrawLine(x0, y0, x1, y1 int, s Stroke) error
	DrawRect(x0, y0, x1, y1 int, st Style, filled bool) error

	// DrawPath strokes the segments connecting consecutive points. Empty
	// and single point paths are no-ops.
	DrawPath(points []Pos, s Stroke) error

	// DrawPolygon draws the closed ring through the given points, filled
	// or stroked. Fewer than three points is a no-op.
	DrawPolygon(points []Pos, st Style, filled bool) error

	DrawText(str string, x, y int, ft Font, c RGBA, anchor Anchor) error

	// TextSize reports a best effort estimate of the rendered extent of
	// str. Backends that cannot measure return an approximation, never an
	// error.
	TextSize(str string, ft Font) (int, int)

	// Flush finalizes buffered output. It is idempotent.
	Flush() error
}

// ApproxTextSize is the shared fallback estimate for backends without real
// glyph metrics.
func ApproxTextSize(str string, ft Font) (int, int) {
	size := ft.Size
	if size <= 0 {
		size = FontSize
	}
	return int(size * 0.6 * float64(utf8.RuneCountInString(str))), int(size * 1.2)
}
