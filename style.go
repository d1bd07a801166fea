package plotter

const (
	FontSize      = 12.0
	DefaultFamily = "sans-serif"
)

type Stroke struct {
	Color RGBA
	Width float64
}

func NewStroke(c RGBA, width float64) Stroke {
	return Stroke{
		Color: c,
		Width: width,
	}
}

type Fill struct {
	Color RGBA
}

func NewFill(c RGBA) Fill {
	return Fill{
		Color: c,
	}
}

// Style bundles the stroke and fill attributes of a primitive. Styles are
// value objects, set once when the primitive is built.
type Style struct {
	Stroke Stroke
	Fill   Fill
}

func NewStyle(c RGBA) Style {
	return Style{
		Stroke: NewStroke(c, 1),
		Fill:   NewFill(c),
	}
}

// Font is a (family, size in pixels) descriptor. Backends resolve the
// family to an available font or fall back to a default.
type Font struct {
	Family string
	Size   float64
}

func NewFont(size float64) Font {
	return Font{
		Family: DefaultFamily,
		Size:   size,
	}
}
