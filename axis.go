package plotter

import (
	"fmt"
	"strconv"
	"time"
)

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

func (o Orientation) Reverse() bool {
	return o == OrientRight || o == OrientTop
}

// Axis renders tick marks and labels for one scaler into a label strip
// area. The strip sits against the plot edge named by the orientation: an
// OrientBottom axis draws its domain line along the top edge of its strip.
type Axis[T ScalerConstraint] struct {
	Label string
	Orientation
	Ticks          int
	Scaler         Scaler[T]
	Domain         []T
	Format         func(T) string
	Font           Font
	Color          RGBA
	WithInnerTicks bool
	WithLabelTicks bool
	WithBands      bool
}

func (a Axis[T]) Render(strip Area) error {
	if a.Scaler == nil {
		return ErrNoCoordinateMapping
	}
	var (
		data   = a.ticks()
		font   = a.font()
		stroke = NewStroke(a.color(), 1)
		w      = float64(strip.Width())
		h      = float64(strip.Height())
		span   = w
	)
	if a.Vertical() {
		span = h
	}
	if err := strip.Draw(a.domainLine(w, h, stroke)); err != nil {
		return err
	}
	tick := FontSize * 0.8
	for _, v := range data {
		pos := a.Scaler.Scale(v)
		if pos < 0 || pos > span {
			continue
		}
		if a.WithInnerTicks {
			if err := strip.Draw(a.tickLine(pos, tick, w, h, stroke)); err != nil {
				return err
			}
		}
		if a.WithLabelTicks {
			if err := strip.Draw(a.tickLabel(a.format(v), pos, tick, w, h, font)); err != nil {
				return err
			}
		}
	}
	if a.Label != "" {
		if err := strip.Draw(a.axisLabel(w, h, font)); err != nil {
			return err
		}
	}
	return nil
}

// RenderGrid draws faint mesh lines across the plot area at the tick
// positions, and alternating bands when enabled. The scaler must be ranged
// to the plot span, which Chart.Build guarantees.
func (a Axis[T]) RenderGrid(plot Area) error {
	if a.Scaler == nil {
		return ErrNoCoordinateMapping
	}
	var (
		data   = a.ticks()
		w      = float64(plot.Width())
		h      = float64(plot.Height())
		stroke = NewStroke(NewRGBA(0, 0, 0, 26), 1)
		band   = NewStyle(NewRGBA(0, 0, 0, 13))
		span   = w
	)
	if a.Vertical() {
		span = h
	}
	for i, v := range data {
		pos := a.Scaler.Scale(v)
		if pos < 0 || pos > span {
			continue
		}
		var line Polyline
		if a.Vertical() {
			line = NewPolyline([]Pos{NewPos(0, pos), NewPos(w, pos)}, stroke)
		} else {
			line = NewPolyline([]Pos{NewPos(pos, 0), NewPos(pos, h)}, stroke)
		}
		if err := plot.Draw(line); err != nil {
			return err
		}
		if a.WithBands && i%2 == 0 && len(data) > 1 {
			slot := span / float64(len(data)-1)
			var box Box
			if a.Vertical() {
				box = NewBox(NewPos(0, pos), NewPos(w, pos+slot), band, true)
			} else {
				box = NewBox(NewPos(pos, 0), NewPos(pos+slot, h), band, true)
			}
			if err := plot.Draw(box); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a Axis[T]) ticks() []T {
	if len(a.Domain) > 0 {
		return a.Domain
	}
	return a.Scaler.Values(a.Ticks)
}

func (a Axis[T]) font() Font {
	if a.Font.Size > 0 {
		return a.Font
	}
	return NewFont(FontSize)
}

func (a Axis[T]) color() RGBA {
	if a.Color.A > 0 {
		return a.Color
	}
	return Black
}

func (a Axis[T]) format(v T) string {
	if a.Format != nil {
		return a.Format(v)
	}
	switch x := any(v).(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', 2, 64)
	case time.Time:
		return x.Format("2006-01-02")
	case string:
		return x
	}
	return fmt.Sprint(v)
}

func (a Axis[T]) domainLine(w, h float64, stroke Stroke) Shape {
	switch a.Orientation {
	case OrientTop:
		return NewPolyline([]Pos{NewPos(0, h), NewPos(w, h)}, stroke)
	case OrientLeft:
		return NewPolyline([]Pos{NewPos(w, 0), NewPos(w, h)}, stroke)
	case OrientRight:
		return NewPolyline([]Pos{NewPos(0, 0), NewPos(0, h)}, stroke)
	default:
		return NewPolyline([]Pos{NewPos(0, 0), NewPos(w, 0)}, stroke)
	}
}

func (a Axis[T]) tickLine(pos, tick, w, h float64, stroke Stroke) Shape {
	switch a.Orientation {
	case OrientTop:
		return NewPolyline([]Pos{NewPos(pos, h), NewPos(pos, h-tick)}, stroke)
	case OrientLeft:
		return NewPolyline([]Pos{NewPos(w, pos), NewPos(w-tick, pos)}, stroke)
	case OrientRight:
		return NewPolyline([]Pos{NewPos(0, pos), NewPos(tick, pos)}, stroke)
	default:
		return NewPolyline([]Pos{NewPos(pos, 0), NewPos(pos, tick)}, stroke)
	}
}

func (a Axis[T]) tickLabel(str string, pos, tick, w, h float64, font Font) Shape {
	const gap = 2
	label := Label{
		Text:  str,
		Font:  font,
		Color: a.color(),
	}
	switch a.Orientation {
	case OrientTop:
		label.Pos = NewPos(pos, h-tick-gap)
		label.Anchor = AnchorCenter | AnchorBottom
	case OrientLeft:
		label.Pos = NewPos(w-tick-gap, pos)
		label.Anchor = AnchorRight | AnchorMiddle
	case OrientRight:
		label.Pos = NewPos(tick+gap, pos)
		label.Anchor = AnchorLeft | AnchorMiddle
	default:
		label.Pos = NewPos(pos, tick+gap)
		label.Anchor = AnchorCenter | AnchorTop
	}
	return label
}

func (a Axis[T]) axisLabel(w, h float64, font Font) Shape {
	label := Label{
		Text:  a.Label,
		Font:  font,
		Color: a.color(),
	}
	switch a.Orientation {
	case OrientTop:
		label.Pos = NewPos(w/2, 0)
		label.Anchor = AnchorCenter | AnchorTop
	case OrientLeft:
		label.Pos = NewPos(0, h/2)
		label.Anchor = AnchorLeft | AnchorMiddle
	case OrientRight:
		label.Pos = NewPos(w, h/2)
		label.Anchor = AnchorRight | AnchorMiddle
	default:
		label.Pos = NewPos(w/2, h)
		label.Anchor = AnchorCenter | AnchorBottom
	}
	return label
}
