package plotter

import (
	"fmt"
	"math"
)

// Area is a rectangular region of a backend canvas. Areas are immutable
// values: splitting yields new areas contained in their parent, all sharing
// the one backend instance. The backend outlives any area derived from it
// and is only finalized by Flush on whichever handle the caller keeps.
type Area struct {
	rect Rect
	be   Backend
}

// Root covers the whole canvas of the given backend.
func Root(be Backend) Area {
	w, h := be.Size()
	return Area{
		rect: NewRect(0, 0, w, h),
		be:   be,
	}
}

func (a Area) Rect() Rect {
	return a.rect
}

func (a Area) Width() int {
	return a.rect.Width()
}

func (a Area) Height() int {
	return a.rect.Height()
}

// SplitEvenly partitions the area into a rows x cols grid in row major
// order. Cell edges are spread so that the grid tiles the parent exactly,
// rounding differences never exceeding one pixel.
func (a Area) SplitEvenly(rows, cols int) ([]Area, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: split %dx%d", ErrInvalidLayout, rows, cols)
	}
	var (
		w   = a.rect.Width()
		h   = a.rect.Height()
		xat = func(j int) int { return a.rect.X0 + int(math.Round(float64(j)*float64(w)/float64(cols))) }
		yat = func(i int) int { return a.rect.Y0 + int(math.Round(float64(i)*float64(h)/float64(rows))) }
		all = make([]Area, 0, rows*cols)
	)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			r := Rect{
				X0: xat(j),
				Y0: yat(i),
				X1: xat(j + 1),
				Y1: yat(i + 1),
			}
			all = append(all, Area{rect: r, be: a.be})
		}
	}
	return all, nil
}

// SplitRatio partitions the area proportionally along one axis: vertically
// (stacked top to bottom) when the orientation is vertical, side by side
// otherwise. Ratios are normalized to the available span; a zero ratio
// yields a zero size area.
func (a Area) SplitRatio(ratios []float64, orient Orientation) ([]Area, error) {
	if len(ratios) == 0 {
		return nil, fmt.Errorf("%w: empty ratio list", ErrInvalidLayout)
	}
	var sum float64
	for _, r := range ratios {
		if r < 0 || math.IsNaN(r) {
			return nil, fmt.Errorf("%w: ratio %g", ErrInvalidLayout, r)
		}
		sum += r
	}
	var (
		span = a.rect.Width()
		all  = make([]Area, 0, len(ratios))
	)
	if orient.Vertical() {
		span = a.rect.Height()
	}
	edge := func(acc float64) int {
		if sum == 0 {
			return 0
		}
		return int(math.Round(acc * float64(span) / sum))
	}
	var acc float64
	prev := edge(0)
	for _, ratio := range ratios {
		acc += ratio
		var (
			next = edge(acc)
			r    Rect
		)
		if orient.Vertical() {
			r = Rect{X0: a.rect.X0, Y0: a.rect.Y0 + prev, X1: a.rect.X1, Y1: a.rect.Y0 + next}
		} else {
			r = Rect{X0: a.rect.X0 + prev, Y0: a.rect.Y0, X1: a.rect.X0 + next, Y1: a.rect.Y1}
		}
		all = append(all, Area{rect: r, be: a.be})
		prev = next
	}
	return all, nil
}

// Margin shrinks the area inward by fixed pixel amounts. Margins larger
// than the extent collapse the area to zero size; drawing into such an
// area is a no-op.
func (a Area) Margin(top, right, bottom, left int) Area {
	return Area{
		rect: a.rect.Shrink(top, right, bottom, left),
		be:   a.be,
	}
}

// Draw resolves the primitive against this area: primitives whose bounding
// box misses the rectangle are skipped, the rest are dispatched to the
// backend as-is. Pixel exact clipping is the backend's business.
func (a Area) Draw(s Shape) error {
	if s == nil || a.rect.Empty() || a.be == nil {
		return nil
	}
	box := s.Bounds(a.be).Translate(a.rect.X0, a.rect.Y0)
	if !box.Overlaps(a.rect) {
		return nil
	}
	return backendError("draw", s.Render(a.be, a.rect.X0, a.rect.Y0))
}

// Flush forwards to the backend. It is meaningful on the root area but
// safe anywhere.
func (a Area) Flush() error {
	if a.be == nil {
		return nil
	}
	return backendError("flush", a.be.Flush())
}
