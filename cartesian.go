package plotter

// Cartesian is a drawing area with an attached 2D coordinate mapping.
// Attaching re-ranges the scalers onto the area span: x ascends left to
// right, y descends so the logical minimum sits at the bottom edge.
type Cartesian[T, U ScalerConstraint] struct {
	Area
	coord Coord[T, U]
}

// NewCartesian attaches (or replaces) the coordinate mapping of an area.
// The returned handle shares the area's backend and rectangle.
func NewCartesian[T, U ScalerConstraint](ar Area, x Scaler[T], y Scaler[U]) Cartesian[T, U] {
	if x != nil {
		x = x.replace(NewRange(0, float64(ar.Width())))
	}
	if y != nil {
		y = y.replace(NewRange(float64(ar.Height()), 0))
	}
	return Cartesian[T, U]{
		Area: ar,
		coord: Coord[T, U]{
			X: x,
			Y: y,
		},
	}
}

func (c Cartesian[T, U]) Coord() Coord[T, U] {
	return c.coord
}

// Draw resolves a logical space primitive through the attached mapping and
// hands the result to the underlying area.
func (c Cartesian[T, U]) Draw(el Element[T, U]) error {
	if el == nil {
		return nil
	}
	if c.coord.X == nil || c.coord.Y == nil {
		return ErrNoCoordinateMapping
	}
	return c.Area.Draw(el.Resolve(c.coord))
}

// DrawSeries consumes a series, drawing every element it produces in
// order.
func (c Cartesian[T, U]) DrawSeries(series Series[T, U]) error {
	if series == nil {
		return nil
	}
	var err error
	series(func(el Element[T, U]) bool {
		err = c.Draw(el)
		return err == nil
	})
	return err
}

// Invert maps an absolute canvas pixel back to the logical value whose
// projection contains it. It reports false when either axis has no inverse
// at that position.
func (c Cartesian[T, U]) Invert(x, y int) (Point[T, U], bool) {
	if c.coord.X == nil || c.coord.Y == nil {
		var zero Point[T, U]
		return zero, false
	}
	p := NewPos(float64(x-c.rect.X0), float64(y-c.rect.Y0))
	return c.coord.Invert(p)
}
