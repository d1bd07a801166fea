package plotter

import (
	"github.com/midbel/slices"
)

// Element is a drawable primitive expressed in the logical coordinate
// space of a Cartesian area. Resolving through the area's mapping yields
// the pixel space Shape actually dispatched.
type Element[T, U ScalerConstraint] interface {
	Resolve(c Coord[T, U]) Shape
}

// Line connects its points into a single polyline.
type Line[T, U ScalerConstraint] struct {
	Points []Point[T, U]
	Stroke Stroke
}

func (l Line[T, U]) Resolve(c Coord[T, U]) Shape {
	pts := make([]Pos, 0, len(l.Points))
	for _, pt := range l.Points {
		pts = append(pts, c.Map(pt))
	}
	return Polyline{
		Points: pts,
		Stroke: l.Stroke,
	}
}

// Dot marks a single data point.
type Dot[T, U ScalerConstraint] struct {
	At    Point[T, U]
	Kind  MarkerKind
	Size  float64
	Style Style
}

func (d Dot[T, U]) Resolve(c Coord[T, U]) Shape {
	size := d.Size
	if size <= 0 {
		size = DefaultSize
	}
	return Marker{
		Pos:   c.Map(d.At),
		Kind:  d.Kind,
		Size:  size,
		Style: d.Style,
	}
}

// Bar is an axis aligned rectangle between two logical corners, the usual
// building block of bar charts.
type Bar[T, U ScalerConstraint] struct {
	Min    Point[T, U]
	Max    Point[T, U]
	Style  Style
	Filled bool
}

func (b Bar[T, U]) Resolve(c Coord[T, U]) Shape {
	return Box{
		Min:    c.Map(b.Min),
		Max:    c.Map(b.Max),
		Style:  b.Style,
		Filled: b.Filled,
	}
}

// Band is the filled region between a point run and a constant baseline.
type Band[T, U ScalerConstraint] struct {
	Points   []Point[T, U]
	Baseline U
	Style    Style
}

func (b Band[T, U]) Resolve(c Coord[T, U]) Shape {
	if len(b.Points) < 2 {
		return Polygon{}
	}
	var (
		base = c.Y.Scale(b.Baseline)
		pts  = make([]Pos, 0, len(b.Points)+2)
	)
	for _, pt := range b.Points {
		pts = append(pts, c.Map(pt))
	}
	pts = append(pts, NewPos(c.Map(slices.Lst(b.Points)).X, base))
	pts = append(pts, NewPos(c.Map(slices.Fst(b.Points)).X, base))
	return Polygon{
		Points: pts,
		Style:  b.Style,
		Filled: true,
	}
}

// Note is a text label anchored at a logical position.
type Note[T, U ScalerConstraint] struct {
	At     Point[T, U]
	Text   string
	Font   Font
	Color  RGBA
	Anchor Anchor
}

func (n Note[T, U]) Resolve(c Coord[T, U]) Shape {
	return Label{
		Text:   n.Text,
		Pos:    c.Map(n.At),
		Font:   n.Font,
		Color:  n.Color,
		Anchor: n.Anchor,
	}
}
