// Package svg renders the backend contract into an SVG document built with
// github.com/midbel/svg. Draw calls accumulate elements; Flush serializes
// the document once to the configured writer.
package svg

import (
	"bufio"
	"io"
	"math"

	msvg "github.com/midbel/svg"

	"github.com/midbel/plotter"
)

type Backend struct {
	width  int
	height int
	out    io.Writer
	root   msvg.SVG
	done   bool
}

func New(w io.Writer, width, height int) *Backend {
	el := msvg.NewSVG(msvg.WithDimension(float64(width), float64(height)))
	return &Backend{
		width:  width,
		height: height,
		out:    w,
		root:   el,
	}
}

func (b *Backend) Size() (int, int) {
	return b.width, b.height
}

func (b *Backend) DrawPixel(x, y int, c plotter.RGBA) error {
	var el msvg.Rect
	el.Pos = msvg.NewPos(float64(x), float64(y))
	el.Dim = msvg.NewDim(1, 1)
	el.Fill = fill(c)
	b.root.Append(el.AsElement())
	return nil
}

func (b *Backend) DrawLine(x0, y0, x1, y1 int, s plotter.Stroke) error {
	el := msvg.NewLine(msvg.NewPos(float64(x0), float64(y0)), msvg.NewPos(float64(x1), float64(y1)))
	el.Stroke = stroke(s)
	b.root.Append(el.AsElement())
	return nil
}

func (b *Backend) DrawRect(x0, y0, x1, y1 int, st plotter.Style, filled bool) error {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if filled {
		var el msvg.Rect
		el.Pos = msvg.NewPos(float64(x0), float64(y0))
		el.Dim = msvg.NewDim(float64(x1-x0), float64(y1-y0))
		el.Fill = fill(st.Fill.Color)
		b.root.Append(el.AsElement())
		return nil
	}
	ring := []plotter.Pos{
		plotter.NewPos(float64(x0), float64(y0)),
		plotter.NewPos(float64(x1), float64(y0)),
		plotter.NewPos(float64(x1), float64(y1)),
		plotter.NewPos(float64(x0), float64(y1)),
		plotter.NewPos(float64(x0), float64(y0)),
	}
	return b.DrawPath(ring, st.Stroke)
}

func (b *Backend) DrawPath(points []plotter.Pos, s plotter.Stroke) error {
	if len(points) < 2 {
		return nil
	}
	pat := basePath()
	pat.Stroke = stroke(s)
	pat.AbsMoveTo(msvg.NewPos(points[0].X, points[0].Y))
	for _, p := range points[1:] {
		pat.AbsLineTo(msvg.NewPos(p.X, p.Y))
	}
	b.root.Append(pat.AsElement())
	return nil
}

func (b *Backend) DrawPolygon(points []plotter.Pos, st plotter.Style, filled bool) error {
	if len(points) < 3 {
		return nil
	}
	pat := basePath()
	if filled {
		pat.Fill = fill(st.Fill.Color)
	} else {
		pat.Stroke = stroke(st.Stroke)
	}
	pat.AbsMoveTo(msvg.NewPos(points[0].X, points[0].Y))
	for _, p := range points[1:] {
		pat.AbsLineTo(msvg.NewPos(p.X, p.Y))
	}
	pat.ClosePath()
	b.root.Append(pat.AsElement())
	return nil
}

func (b *Backend) DrawText(str string, x, y int, ft plotter.Font, c plotter.RGBA, anchor plotter.Anchor) error {
	if str == "" {
		return nil
	}
	size := ft.Size
	if size <= 0 {
		size = plotter.FontSize
	}
	tx := msvg.NewText(str)
	tx.Pos = msvg.NewPos(float64(x), float64(y))
	tx.Font = msvg.NewFont(size)
	switch {
	case anchor&plotter.AnchorCenter != 0:
		tx.Anchor = "middle"
	case anchor&plotter.AnchorRight != 0:
		tx.Anchor = "end"
	default:
		tx.Anchor = "start"
	}
	// text sits on its alphabetic baseline; vertical alignment rides on a
	// dy shift from the anchor point
	if anchor&plotter.AnchorBottom == 0 {
		dy := size
		if anchor&plotter.AnchorMiddle != 0 {
			dy = 0.35 * size
		}
		tx.Shift = msvg.NewPos(0, dy)
	}
	var g msvg.Group
	g.Fill = fill(c)
	g.Append(tx.AsElement())
	b.root.Append(g.AsElement())
	return nil
}

func (b *Backend) TextSize(str string, ft plotter.Font) (int, int) {
	return plotter.ApproxTextSize(str, ft)
}

// Flush serializes the document to the writer. The first call renders;
// later calls are no-ops so that redundant flushes stay safe.
func (b *Backend) Flush() error {
	if b.done || b.out == nil {
		return nil
	}
	b.done = true
	bw := bufio.NewWriter(b.out)
	b.root.Render(bw)
	return bw.Flush()
}

func basePath() msvg.Path {
	var pat msvg.Path
	pat.Fill = msvg.NewFill("none")
	return pat
}

func stroke(s plotter.Stroke) msvg.Stroke {
	width := int(math.Round(s.Width))
	if width < 1 {
		width = 1
	}
	sk := msvg.NewStroke(s.Color.Hex(), width)
	sk.Opacity = s.Color.Opacity()
	return sk
}

func fill(c plotter.RGBA) msvg.Fill {
	var (
		f = msvg.NewFill(c.Hex())
	)
	f.Opacity = c.Opacity()
	return f
}
