// Package raster renders the backend contract into an in-memory RGBA
// pixel buffer. Lines use a Bresenham walk, filled shapes go through the
// golang.org/x/image/vector rasterizer, and text falls back to the fixed
// basicfont face whatever family is requested.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/midbel/plotter"
)

type Backend struct {
	img  *image.RGBA
	out  io.Writer
	done bool
}

// New creates a backend over a fresh white canvas of the given size.
func New(width, height int) *Backend {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return &Backend{
		img: img,
	}
}

// NewWriter is like New but PNG-encodes the canvas to w on the first
// Flush.
func NewWriter(w io.Writer, width, height int) *Backend {
	b := New(width, height)
	b.out = w
	return b
}

// Image exposes the underlying buffer. It stays valid after Flush.
func (b *Backend) Image() *image.RGBA {
	return b.img
}

func (b *Backend) Size() (int, int) {
	r := b.img.Bounds()
	return r.Dx(), r.Dy()
}

func (b *Backend) DrawPixel(x, y int, c plotter.RGBA) error {
	b.blend(x, y, c)
	return nil
}

func (b *Backend) DrawLine(x0, y0, x1, y1 int, s plotter.Stroke) error {
	width := int(s.Width)
	if width <= 1 {
		b.line(x0, y0, x1, y1, s.Color)
		return nil
	}
	// Widen by stacking parallel single pixel lines around the spine.
	var (
		dx = x1 - x0
		dy = y1 - y0
	)
	for i := 0; i < width; i++ {
		off := i - width/2
		if abs(dy) >= abs(dx) {
			b.line(x0+off, y0, x1+off, y1, s.Color)
		} else {
			b.line(x0, y0+off, x1, y1+off, s.Color)
		}
	}
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
		r := image.Rect(x0, y0, x1, y1).Intersect(b.img.Bounds())
		if r.Empty() {
			return nil
		}
		src := image.NewUniform(nrgba(st.Fill.Color))
		draw.Draw(b.img, r, src, image.Point{}, draw.Over)
		return nil
	}
	b.line(x0, y0, x1, y0, st.Stroke.Color)
	b.line(x1, y0, x1, y1, st.Stroke.Color)
	b.line(x1, y1, x0, y1, st.Stroke.Color)
	b.line(x0, y1, x0, y0, st.Stroke.Color)
	return nil
}

func (b *Backend) DrawPath(points []plotter.Pos, s plotter.Stroke) error {
	if len(points) < 2 {
		return nil
	}
	prev := points[0]
	for _, p := range points[1:] {
		x0, y0 := prev.Round()
		x1, y1 := p.Round()
		if err := b.DrawLine(x0, y0, x1, y1, s); err != nil {
			return err
		}
		prev = p
	}
	return nil
}

func (b *Backend) DrawPolygon(points []plotter.Pos, st plotter.Style, filled bool) error {
	if len(points) < 3 {
		return nil
	}
	if !filled {
		ring := make([]plotter.Pos, 0, len(points)+1)
		ring = append(ring, points...)
		ring = append(ring, points[0])
		return b.DrawPath(ring, st.Stroke)
	}
	var (
		bounds = b.img.Bounds()
		ras    = vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	)
	ras.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		ras.LineTo(float32(p.X), float32(p.Y))
	}
	ras.ClosePath()
	src := image.NewUniform(nrgba(st.Fill.Color))
	ras.Draw(b.img, bounds, src, image.Point{})
	return nil
}

func (b *Backend) DrawText(str string, x, y int, ft plotter.Font, c plotter.RGBA, anchor plotter.Anchor) error {
	if str == "" {
		return nil
	}
	var (
		face   = basicfont.Face7x13
		w, h   = b.TextSize(str, ft)
		dx, dy = anchor.Offset(w, h)
		ascent = face.Metrics().Ascent.Ceil()
	)
	d := &font.Drawer{
		Dst:  b.img,
		Src:  image.NewUniform(nrgba(c)),
		Face: face,
		Dot:  fixed.P(x+dx, y+dy+ascent),
	}
	d.DrawString(str)
	return nil
}

func (b *Backend) TextSize(str string, ft plotter.Font) (int, int) {
	face := basicfont.Face7x13
	w := font.MeasureString(face, str).Ceil()
	h := face.Metrics().Height.Ceil()
	return w, h
}

// Flush PNG-encodes the canvas once when a writer is configured. Encoding
// failures are the only errors this backend ever reports.
func (b *Backend) Flush() error {
	if b.done || b.out == nil {
		return nil
	}
	b.done = true
	return png.Encode(b.out, b.img)
}

func (b *Backend) line(x0, y0, x1, y1 int, c plotter.RGBA) {
	x0, y0, x1, y1, ok := clipSegment(x0, y0, x1, y1, b.img.Bounds())
	if !ok {
		return
	}
	var (
		dx = abs(x1 - x0)
		dy = abs(y1 - y0)
		sx = 1
		sy = 1
	)
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		b.blend(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// blend writes a single pixel with source-over compositing; offscreen
// coordinates are dropped.
func (b *Backend) blend(x, y int, c plotter.RGBA) {
	if !(image.Point{X: x, Y: y}.In(b.img.Bounds())) {
		return
	}
	if c.A == 255 {
		b.img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		return
	}
	var (
		dst = b.img.RGBAAt(x, y)
		a   = uint32(c.A)
	)
	mix := func(s, d uint8) uint8 {
		return uint8((uint32(s)*a + uint32(d)*(255-a)) / 255)
	}
	b.img.SetRGBA(x, y, color.RGBA{
		R: mix(c.R, dst.R),
		G: mix(c.G, dst.G),
		B: mix(c.B, dst.B),
		A: 255,
	})
}

// clipSegment trims a segment to the canvas with the Liang-Barsky
// parametric clip, so that far offscreen endpoints never cost a pixel by
// pixel walk across the whole span.
func clipSegment(x0, y0, x1, y1 int, r image.Rectangle) (int, int, int, int, bool) {
	if r.Empty() {
		return 0, 0, 0, 0, false
	}
	var (
		fx = float64(x0)
		fy = float64(y0)
		dx = float64(x1 - x0)
		dy = float64(y1 - y0)
		t0 = 0.0
		t1 = 1.0
	)
	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			if t > t0 {
				t0 = t
			}
			return true
		}
		if t < t0 {
			return false
		}
		if t < t1 {
			t1 = t
		}
		return true
	}
	var (
		xmin = float64(r.Min.X)
		ymin = float64(r.Min.Y)
		xmax = float64(r.Max.X - 1)
		ymax = float64(r.Max.Y - 1)
	)
	ok := clip(-dx, fx-xmin) && clip(dx, xmax-fx) && clip(-dy, fy-ymin) && clip(dy, ymax-fy)
	if !ok {
		return 0, 0, 0, 0, false
	}
	var (
		cx0 = int(math.Round(fx + t0*dx))
		cy0 = int(math.Round(fy + t0*dy))
		cx1 = int(math.Round(fx + t1*dx))
		cy1 = int(math.Round(fy + t1*dy))
	)
	return cx0, cy0, cx1, cy1, true
}

func nrgba(c plotter.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
