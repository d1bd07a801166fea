// Package record implements a canvas-like backend that retains resolved
// draw commands as values. A recording can be replayed onto any other
// backend, deferred or repeated, and doubles as the reference surface for
// testing dispatch and clipping behavior.
package record

import (
	"github.com/midbel/plotter"
)

// Op is one recorded draw command.
type Op interface {
	Apply(be plotter.Backend) error
}

type Pixel struct {
	X, Y  int
	Color plotter.RGBA
}

func (o Pixel) Apply(be plotter.Backend) error {
	return be.DrawPixel(o.X, o.Y, o.Color)
}

type Line struct {
	X0, Y0, X1, Y1 int
	Stroke         plotter.Stroke
}

func (o Line) Apply(be plotter.Backend) error {
	return be.DrawLine(o.X0, o.Y0, o.X1, o.Y1, o.Stroke)
}

type Rect struct {
	X0, Y0, X1, Y1 int
	Style          plotter.Style
	Filled         bool
}

func (o Rect) Apply(be plotter.Backend) error {
	return be.DrawRect(o.X0, o.Y0, o.X1, o.Y1, o.Style, o.Filled)
}

type Path struct {
	Points []plotter.Pos
	Stroke plotter.Stroke
}

func (o Path) Apply(be plotter.Backend) error {
	return be.DrawPath(o.Points, o.Stroke)
}

type Polygon struct {
	Points []plotter.Pos
	Style  plotter.Style
	Filled bool
}

func (o Polygon) Apply(be plotter.Backend) error {
	return be.DrawPolygon(o.Points, o.Style, o.Filled)
}

type Text struct {
	Str    string
	X, Y   int
	Font   plotter.Font
	Color  plotter.RGBA
	Anchor plotter.Anchor
}

func (o Text) Apply(be plotter.Backend) error {
	return be.DrawText(o.Str, o.X, o.Y, o.Font, o.Color, o.Anchor)
}

// Backend records every command issued against a fixed size canvas.
type Backend struct {
	width   int
	height  int
	ops     []Op
	flushed int
}

func New(width, height int) *Backend {
	return &Backend{
		width:  width,
		height: height,
	}
}

func (b *Backend) Size() (int, int) {
	return b.width, b.height
}

func (b *Backend) DrawPixel(x, y int, c plotter.RGBA) error {
	b.ops = append(b.ops, Pixel{X: x, Y: y, Color: c})
	return nil
}

func (b *Backend) DrawLine(x0, y0, x1, y1 int, s plotter.Stroke) error {
	b.ops = append(b.ops, Line{X0: x0, Y0: y0, X1: x1, Y1: y1, Stroke: s})
	return nil
}

func (b *Backend) DrawRect(x0, y0, x1, y1 int, st plotter.Style, filled bool) error {
	b.ops = append(b.ops, Rect{X0: x0, Y0: y0, X1: x1, Y1: y1, Style: st, Filled: filled})
	return nil
}

func (b *Backend) DrawPath(points []plotter.Pos, s plotter.Stroke) error {
	if len(points) < 2 {
		return nil
	}
	b.ops = append(b.ops, Path{Points: points, Stroke: s})
	return nil
}

func (b *Backend) DrawPolygon(points []plotter.Pos, st plotter.Style, filled bool) error {
	if len(points) < 3 {
		return nil
	}
	b.ops = append(b.ops, Polygon{Points: points, Style: st, Filled: filled})
	return nil
}

func (b *Backend) DrawText(str string, x, y int, ft plotter.Font, c plotter.RGBA, anchor plotter.Anchor) error {
	if str == "" {
		return nil
	}
	b.ops = append(b.ops, Text{Str: str, X: x, Y: y, Font: ft, Color: c, Anchor: anchor})
	return nil
}

func (b *Backend) TextSize(str string, ft plotter.Font) (int, int) {
	return plotter.ApproxTextSize(str, ft)
}

func (b *Backend) Flush() error {
	b.flushed++
	return nil
}

// Ops returns the recorded commands in issue order.
func (b *Backend) Ops() []Op {
	return b.ops
}

func (b *Backend) Len() int {
	return len(b.ops)
}

// Flushes reports how many times Flush has been called.
func (b *Backend) Flushes() int {
	return b.flushed
}

func (b *Backend) Reset() {
	b.ops = b.ops[:0]
	b.flushed = 0
}

// Replay issues the recorded commands against another backend, in order,
// stopping at the first failure.
func (b *Backend) Replay(dst plotter.Backend) error {
	for _, op := range b.ops {
		if err := op.Apply(dst); err != nil {
			return err
		}
	}
	return nil
}
