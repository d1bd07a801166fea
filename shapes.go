package plotter

import (
	"math"
)

var DefaultSize float64 = 4

// Shape is a drawable primitive in pixel space, positioned relative to the
// drawing area that consumes it. Bounds is the pixel bounding box used for
// the cheap clip reject; Render dispatches to the backend, displaced by the
// area origin.
type Shape interface {
	Bounds(be Backend) Rect
	Render(be Backend, dx, dy int) error
}

type MarkerKind int

const (
	MarkCircle MarkerKind = iota
	MarkSquare
	MarkDiamond
)

type Marker struct {
	Pos   Pos
	Kind  MarkerKind
	Size  float64
	Style Style
}

func NewMarker(pos Pos, kind MarkerKind, c RGBA) Marker {
	return Marker{
		Pos:   pos,
		Kind:  kind,
		Size:  DefaultSize,
		Style: NewStyle(c),
	}
}

func (m Marker) Bounds(Backend) Rect {
	half := m.Size / 2
	return boundingBox([]Pos{
		m.Pos.Translate(-half, -half),
		m.Pos.Translate(half, half),
	})
}

func (m Marker) Render(be Backend, dx, dy int) error {
	var (
		pos  = m.Pos.Translate(float64(dx), float64(dy))
		half = m.Size / 2
	)
	if m.Size <= 1 {
		x, y := pos.Round()
		return be.DrawPixel(x, y, m.Style.Fill.Color)
	}
	switch m.Kind {
	case MarkSquare:
		x0, y0 := pos.Translate(-half, -half).Round()
		x1, y1 := pos.Translate(half, half).Round()
		return be.DrawRect(x0, y0, x1, y1, m.Style, true)
	case MarkDiamond:
		pts := []Pos{
			pos.Translate(0, -half),
			pos.Translate(half, 0),
			pos.Translate(0, half),
			pos.Translate(-half, 0),
		}
		return be.DrawPolygon(pts, m.Style, true)
	default:
		return be.DrawPolygon(circlePoints(pos, half), m.Style, true)
	}
}

type Polyline struct {
	Points []Pos
	Stroke Stroke
}

func NewPolyline(points []Pos, s Stroke) Polyline {
	return Polyline{
		Points: points,
		Stroke: s,
	}
}

func (p Polyline) Bounds(Backend) Rect {
	// the stroke straddles the geometric segment
	return boundingBox(p.Points).Shrink(-1, -1, -1, -1)
}

func (p Polyline) Render(be Backend, dx, dy int) error {
	if len(p.Points) < 2 {
		return nil
	}
	return be.DrawPath(translate(p.Points, dx, dy), p.Stroke)
}

type Polygon struct {
	Points []Pos
	Style  Style
	Filled bool
}

func NewPolygon(points []Pos, st Style, filled bool) Polygon {
	return Polygon{
		Points: points,
		Style:  st,
		Filled: filled,
	}
}

func (p Polygon) Bounds(Backend) Rect {
	return boundingBox(p.Points)
}

func (p Polygon) Render(be Backend, dx, dy int) error {
	if len(p.Points) < 3 {
		return nil
	}
	pts := translate(p.Points, dx, dy)
	if p.Filled {
		return be.DrawPolygon(pts, p.Style, true)
	}
	pts = append(pts, pts[0])
	return be.DrawPath(pts, p.Style.Stroke)
}

// Box is an axis aligned rectangle given by two opposite corners.
type Box struct {
	Min    Pos
	Max    Pos
	Style  Style
	Filled bool
}

func NewBox(min, max Pos, st Style, filled bool) Box {
	return Box{
		Min:    min,
		Max:    max,
		Style:  st,
		Filled: filled,
	}
}

func (b Box) Bounds(Backend) Rect {
	return boundingBox([]Pos{b.Min, b.Max})
}

func (b Box) Render(be Backend, dx, dy int) error {
	x0, y0 := b.Min.Translate(float64(dx), float64(dy)).Round()
	x1, y1 := b.Max.Translate(float64(dx), float64(dy)).Round()
	return be.DrawRect(x0, y0, x1, y1, b.Style, b.Filled)
}

// Circle is decomposed into a polygonal ring before dispatch so that
// backends only ever see paths, rectangles and text.
type Circle struct {
	Center Pos
	Radius float64
	Style  Style
	Filled bool
}

func NewCircle(center Pos, radius float64, st Style, filled bool) Circle {
	return Circle{
		Center: center,
		Radius: radius,
		Style:  st,
		Filled: filled,
	}
}

func (c Circle) Bounds(Backend) Rect {
	return boundingBox([]Pos{
		c.Center.Translate(-c.Radius, -c.Radius),
		c.Center.Translate(c.Radius, c.Radius),
	})
}

func (c Circle) Render(be Backend, dx, dy int) error {
	if c.Radius <= 0 {
		return nil
	}
	pts := circlePoints(c.Center.Translate(float64(dx), float64(dy)), c.Radius)
	if c.Filled {
		return be.DrawPolygon(pts, c.Style, true)
	}
	pts = append(pts, pts[0])
	return be.DrawPath(pts, c.Style.Stroke)
}

type Label struct {
	Text   string
	Pos    Pos
	Font   Font
	Color  RGBA
	Anchor Anchor
}

func NewLabel(str string, pos Pos, ft Font, c RGBA) Label {
	return Label{
		Text:   str,
		Pos:    pos,
		Font:   ft,
		Color:  c,
		Anchor: AnchorLeft | AnchorTop,
	}
}

func (l Label) Bounds(be Backend) Rect {
	w, h := be.TextSize(l.Text, l.Font)
	var (
		x, y   = l.Pos.Round()
		dx, dy = l.Anchor.Offset(w, h)
	)
	return NewRect(x+dx, y+dy, x+dx+w, y+dy+h)
}

func (l Label) Render(be Backend, dx, dy int) error {
	if l.Text == "" {
		return nil
	}
	x, y := l.Pos.Translate(float64(dx), float64(dy)).Round()
	return be.DrawText(l.Text, x, y, l.Font, l.Color, l.Anchor)
}

const (
	fullcircle = 360.0
	halfcircle = 180.0
	deg2rad    = math.Pi / halfcircle
)

const circleSteps = 32

func circlePoints(center Pos, radius float64) []Pos {
	pts := make([]Pos, 0, circleSteps)
	for i := 0; i < circleSteps; i++ {
		angle := float64(i) * (fullcircle / circleSteps) * deg2rad
		pts = append(pts, center.Translate(getPosFromAngle(angle, radius)))
	}
	return pts
}

func getPosFromAngle(angle, radius float64) (float64, float64) {
	var (
		x = radius * math.Cos(angle)
		y = radius * math.Sin(angle)
	)
	return x, y
}

func translate(points []Pos, dx, dy int) []Pos {
	out := make([]Pos, len(points))
	for i, p := range points {
		out[i] = p.Translate(float64(dx), float64(dy))
	}
	return out
}

func isFloat[T any](v T) (float64, bool) {
	x, ok := any(v).(float64)
	return x, ok
}
