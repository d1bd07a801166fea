package plotter

import (
	"math"
)

// Series lazily produces the elements of one data series. A series is a
// restartable sequence: ranging over it twice replays the same elements,
// and adapters over the same source slice share no state.
type Series[T, U ScalerConstraint] func(yield func(Element[T, U]) bool)

// LineSeries connects consecutive points into polylines. Runs are split on
// NaN values so that gaps in the data break the line; a run of a single
// point yields nothing.
func LineSeries[T, U ScalerConstraint](points []Point[T, U], s Stroke) Series[T, U] {
	return func(yield func(Element[T, U]) bool) {
		var run []Point[T, U]
		flush := func() bool {
			if len(run) < 2 {
				run = nil
				return true
			}
			el := Line[T, U]{
				Points: run,
				Stroke: s,
			}
			run = nil
			return yield(el)
		}
		for _, pt := range points {
			if f, ok := isFloat(pt.Y); ok && math.IsNaN(f) {
				if !flush() {
					return
				}
				continue
			}
			run = append(run, pt)
		}
		flush()
	}
}

// PointSeries produces one circle marker per point.
func PointSeries[T, U ScalerConstraint](points []Point[T, U], size float64, st Style) Series[T, U] {
	return PointSeriesOf(points, func(pt Point[T, U]) Element[T, U] {
		return Dot[T, U]{
			At:    pt,
			Kind:  MarkCircle,
			Size:  size,
			Style: st,
		}
	})
}

// PointSeriesOf produces one element per point using a caller supplied
// constructor, for custom markers.
func PointSeriesOf[T, U ScalerConstraint](points []Point[T, U], make func(Point[T, U]) Element[T, U]) Series[T, U] {
	return func(yield func(Element[T, U]) bool) {
		for _, pt := range points {
			if !yield(make(pt)) {
				return
			}
		}
	}
}

// AreaSeries fills the region between the points and a constant baseline.
func AreaSeries[T, U ScalerConstraint](points []Point[T, U], baseline U, st Style) Series[T, U] {
	return func(yield func(Element[T, U]) bool) {
		if len(points) < 2 {
			return
		}
		yield(Band[T, U]{
			Points:   points,
			Baseline: baseline,
			Style:    st,
		})
	}
}

// BarSeries produces one filled bar per category point, centered in its
// slot and scaled by width (1 fills the slot), reaching down to the
// baseline. It assumes the default center anchored string scaler.
func BarSeries[U ScalerConstraint](points []Point[string, U], baseline U, width float64, fill Palette) Series[string, U] {
	if width <= 0 || width > 1 {
		width = 1
	}
	return func(yield func(Element[string, U]) bool) {
		for i, pt := range points {
			el := catBar[U]{
				pt:       pt,
				baseline: baseline,
				width:    width,
				style:    NewStyle(fill.Pick(i)),
			}
			if !yield(el) {
				return
			}
		}
	}
}

// Merge drains several series in order, letting callers compose adapters,
// eg a line and its markers over the same points.
func Merge[T, U ScalerConstraint](series ...Series[T, U]) Series[T, U] {
	return func(yield func(Element[T, U]) bool) {
		for _, s := range series {
			if s == nil {
				continue
			}
			ok := true
			s(func(el Element[T, U]) bool {
				ok = yield(el)
				return ok
			})
			if !ok {
				return
			}
		}
	}
}

// catBar resolves a category bar against the discrete X scaler: the slot
// geometry comes from the scaler spacing, not from two mapped corners.
type catBar[U ScalerConstraint] struct {
	pt       Point[string, U]
	baseline U
	width    float64
	style    Style
}

func (b catBar[U]) Resolve(c Coord[string, U]) Shape {
	var (
		slot = c.X.Space()
		w    = slot * b.width
		o    = (slot - w) / 2
		x    = c.X.Scale(b.pt.X) - slot/2
		y    = c.Y.Scale(b.pt.Y)
		base = c.Y.Scale(b.baseline)
	)
	return Box{
		Min:    NewPos(x+o, y),
		Max:    NewPos(x+o+w, base),
		Style:  b.style,
		Filled: true,
	}
}
