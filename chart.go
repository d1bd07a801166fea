package plotter

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// Chart lays out a complete cartesian figure on a root drawing area: outer
// padding, an optional centered title, a bottom and a left label strip with
// their axes, and the inner plot area the caller draws series on.
type Chart[T, U ScalerConstraint] struct {
	Title string
	Font  Font

	Padding

	// XSize and YSize are the heights and widths, in pixels, of the
	// bottom and left label strips. Zero drops the strip and its axis.
	XSize int
	YSize int

	Bottom Axis[T]
	Left   Axis[U]
}

// Build carves the figure out of root and returns the plot area with the
// coordinate mapping attached. The scalers are re-ranged to the plot span;
// axes and grid lines are rendered on the way.
func (c Chart[T, U]) Build(root Area, x Scaler[T], y Scaler[U]) (Cartesian[T, U], error) {
	var zero Cartesian[T, U]

	ar := root.Margin(int(c.Padding.Top), int(c.Padding.Right), int(c.Padding.Bottom), int(c.Padding.Left))
	if c.Title != "" {
		var err error
		if ar, err = c.drawTitle(ar); err != nil {
			return zero, err
		}
	}

	var (
		plotH = ar.Height() - c.XSize
		plotW = ar.Width() - c.YSize
	)
	if plotH < 0 {
		plotH = 0
	}
	if plotW < 0 {
		plotW = 0
	}
	rows, err := ar.SplitRatio([]float64{float64(plotH), float64(c.XSize)}, OrientLeft)
	if err != nil {
		return zero, err
	}
	upper, err := rows[0].SplitRatio([]float64{float64(c.YSize), float64(plotW)}, OrientBottom)
	if err != nil {
		return zero, err
	}
	lower, err := rows[1].SplitRatio([]float64{float64(c.YSize), float64(plotW)}, OrientBottom)
	if err != nil {
		return zero, err
	}

	var (
		ystrip = upper[0]
		plot   = upper[1]
		xstrip = lower[1]
	)
	cart := NewCartesian(plot, x, y)

	if c.XSize > 0 {
		ax := c.Bottom
		ax.Orientation = OrientBottom
		ax.Scaler = cart.Coord().X
		if err := ax.Render(xstrip); err != nil {
			return zero, err
		}
		if err := ax.RenderGrid(plot); err != nil {
			return zero, err
		}
	}
	if c.YSize > 0 {
		ax := c.Left
		ax.Orientation = OrientLeft
		ax.Scaler = cart.Coord().Y
		if err := ax.Render(ystrip); err != nil {
			return zero, err
		}
		if err := ax.RenderGrid(plot); err != nil {
			return zero, err
		}
	}
	return cart, nil
}

func (c Chart[T, U]) drawTitle(ar Area) (Area, error) {
	font := c.Font
	if font.Size <= 0 {
		font = NewFont(FontSize * 1.5)
	}
	title := Label{
		Text:   c.Title,
		Pos:    NewPos(float64(ar.Width())/2, 0),
		Font:   font,
		Color:  Black,
		Anchor: AnchorCenter | AnchorTop,
	}
	if err := ar.Draw(title); err != nil {
		return ar, err
	}
	_, th := ar.be.TextSize(c.Title, font)
	return ar.Margin(th+th/2, 0, 0, 0), nil
}
