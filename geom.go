package plotter

import "math"

type Pos struct {
	X float64
	Y float64
}

func NewPos(x, y float64) Pos {
	return Pos{
		X: x,
		Y: y,
	}
}

func (p Pos) Translate(dx, dy float64) Pos {
	p.X += dx
	p.Y += dy
	return p
}

func (p Pos) Round() (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

// Rect is a pixel rectangle in backend canvas coordinates. The x1/y1 edges
// are exclusive: a rectangle covers [X0,X1) x [Y0,Y1).
type Rect struct {
	X0 int
	Y0 int
	X1 int
	Y1 int
}

func NewRect(x0, y0, x1, y1 int) Rect {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Rect{
		X0: x0,
		Y0: y0,
		X1: x1,
		Y1: y1,
	}
}

func (r Rect) Width() int {
	return r.X1 - r.X0
}

func (r Rect) Height() int {
	return r.Y1 - r.Y0
}

func (r Rect) Empty() bool {
	return r.X0 >= r.X1 || r.Y0 >= r.Y1
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X0 && x < r.X1 && y >= r.Y0 && y < r.Y1
}

func (r Rect) Overlaps(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.X0 < other.X1 && other.X0 < r.X1 && r.Y0 < other.Y1 && other.Y0 < r.Y1
}

func (r Rect) Intersect(other Rect) Rect {
	x := r
	if other.X0 > x.X0 {
		x.X0 = other.X0
	}
	if other.Y0 > x.Y0 {
		x.Y0 = other.Y0
	}
	if other.X1 < x.X1 {
		x.X1 = other.X1
	}
	if other.Y1 < x.Y1 {
		x.Y1 = other.Y1
	}
	if x.Empty() {
		return Rect{X0: x.X0, Y0: x.Y0, X1: x.X0, Y1: x.Y0}
	}
	return x
}

func (r Rect) Translate(dx, dy int) Rect {
	r.X0 += dx
	r.X1 += dx
	r.Y0 += dy
	r.Y1 += dy
	return r
}

// Shrink moves the edges inward by the given amounts. Negative values grow
// the rectangle. When the margins exceed the extent the result collapses to
// a zero size rectangle instead of turning inside out.
func (r Rect) Shrink(top, right, bottom, left int) Rect {
	x := Rect{
		X0: r.X0 + left,
		Y0: r.Y0 + top,
		X1: r.X1 - right,
		Y1: r.Y1 - bottom,
	}
	if x.X0 > x.X1 {
		mid := (x.X0 + x.X1) / 2
		x.X0, x.X1 = mid, mid
	}
	if x.Y0 > x.Y1 {
		mid := (x.Y0 + x.Y1) / 2
		x.Y0, x.Y1 = mid, mid
	}
	return x
}

func boundingBox(points []Pos) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	var (
		minx = points[0].X
		miny = points[0].Y
		maxx = points[0].X
		maxy = points[0].Y
	)
	for _, p := range points[1:] {
		minx = math.Min(minx, p.X)
		miny = math.Min(miny, p.Y)
		maxx = math.Max(maxx, p.X)
		maxy = math.Max(maxy, p.Y)
	}
	return Rect{
		X0: int(math.Floor(minx)),
		Y0: int(math.Floor(miny)),
		X1: int(math.Ceil(maxx)) + 1,
		Y1: int(math.Ceil(maxy)) + 1,
	}
}
