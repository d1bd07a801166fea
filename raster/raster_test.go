package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midbel/plotter"
)

var (
	black = color.RGBA{A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.RGBA{R: 255, A: 255}
)

func TestCanvasStartsWhite(t *testing.T) {
	be := New(10, 10)

	assert.Equal(t, white, be.Image().RGBAAt(0, 0))
	assert.Equal(t, white, be.Image().RGBAAt(9, 9))
}

func TestDrawLine(t *testing.T) {
	be := New(20, 20)
	require.NoError(t, be.DrawLine(2, 5, 10, 5, plotter.NewStroke(plotter.Black, 1)))

	assert.Equal(t, black, be.Image().RGBAAt(2, 5))
	assert.Equal(t, black, be.Image().RGBAAt(6, 5))
	assert.Equal(t, black, be.Image().RGBAAt(10, 5))
	assert.Equal(t, white, be.Image().RGBAAt(11, 5))
	assert.Equal(t, white, be.Image().RGBAAt(6, 6))
}

func TestDrawLineOffscreen(t *testing.T) {
	be := New(10, 10)
	require.NoError(t, be.DrawLine(-5, -5, 5, 5, plotter.NewStroke(plotter.Black, 1)))

	assert.Equal(t, black, be.Image().RGBAAt(0, 0))
	assert.Equal(t, black, be.Image().RGBAAt(5, 5))
}

func TestDrawLineHugeSpan(t *testing.T) {
	be := New(10, 10)
	require.NoError(t, be.DrawLine(-1000000, 5, 1000000, 5, plotter.NewStroke(plotter.Black, 1)))

	assert.Equal(t, black, be.Image().RGBAAt(0, 5))
	assert.Equal(t, black, be.Image().RGBAAt(9, 5))
	assert.Equal(t, white, be.Image().RGBAAt(5, 4))

	// fully offscreen segments touch nothing
	require.NoError(t, be.DrawLine(-1000000, -50, 1000000, -50, plotter.NewStroke(plotter.Black, 1)))
	assert.Equal(t, white, be.Image().RGBAAt(5, 0))
}

func TestClipSegment(t *testing.T) {
	bounds := New(10, 10).Image().Bounds()

	x0, y0, x1, y1, ok := clipSegment(-5, 5, 20, 5, bounds)
	require.True(t, ok)
	assert.Equal(t, 0, x0)
	assert.Equal(t, 9, x1)
	assert.Equal(t, 5, y0)
	assert.Equal(t, 5, y1)

	_, _, _, _, ok = clipSegment(-5, -5, -1, -1, bounds)
	assert.False(t, ok)

	x0, y0, x1, y1, ok = clipSegment(2, 2, 7, 7, bounds)
	require.True(t, ok)
	assert.Equal(t, [4]int{2, 2, 7, 7}, [4]int{x0, y0, x1, y1})
}

func TestDrawRectFilled(t *testing.T) {
	be := New(10, 10)
	require.NoError(t, be.DrawRect(2, 2, 6, 6, plotter.NewStyle(plotter.Red), true))

	assert.Equal(t, red, be.Image().RGBAAt(3, 3))
	assert.Equal(t, white, be.Image().RGBAAt(7, 7))
}

func TestDrawPolygonFilled(t *testing.T) {
	be := New(40, 40)
	pts := []plotter.Pos{
		plotter.NewPos(5, 5),
		plotter.NewPos(35, 5),
		plotter.NewPos(20, 35),
	}
	require.NoError(t, be.DrawPolygon(pts, plotter.NewStyle(plotter.Red), true))

	assert.Equal(t, red, be.Image().RGBAAt(20, 10))
	assert.Equal(t, white, be.Image().RGBAAt(2, 30))
}

func TestDrawPolygonDegenerate(t *testing.T) {
	be := New(10, 10)
	pts := []plotter.Pos{
		plotter.NewPos(1, 1),
		plotter.NewPos(8, 8),
	}
	require.NoError(t, be.DrawPolygon(pts, plotter.NewStyle(plotter.Red), true))

	assert.Equal(t, white, be.Image().RGBAAt(4, 4))
}

func TestBlend(t *testing.T) {
	be := New(4, 4)
	require.NoError(t, be.DrawPixel(1, 1, plotter.NewRGBA(0, 0, 0, 127)))

	got := be.Image().RGBAAt(1, 1)
	assert.Equal(t, uint8(128), got.R)
	assert.Equal(t, uint8(128), got.G)
	assert.Equal(t, uint8(128), got.B)
	assert.Equal(t, uint8(255), got.A)
}

func TestDrawText(t *testing.T) {
	be := New(100, 30)
	require.NoError(t, be.DrawText("abc", 5, 5, plotter.NewFont(12), plotter.Black, 0))

	var inked bool
	for y := 0; y < 30 && !inked; y++ {
		for x := 0; x < 100; x++ {
			if be.Image().RGBAAt(x, y) != white {
				inked = true
				break
			}
		}
	}
	assert.True(t, inked)
}

func TestTextSize(t *testing.T) {
	be := New(10, 10)

	w, h := be.TextSize("abc", plotter.NewFont(12))
	assert.Equal(t, 21, w)
	assert.Equal(t, 13, h)
}

func TestFlushEncodesOnce(t *testing.T) {
	var buf bytes.Buffer
	be := NewWriter(&buf, 10, 10)

	require.NoError(t, be.Flush())
	n := buf.Len()
	require.NotZero(t, n)

	img, err := png.Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 10, img.Bounds().Dx())

	require.NoError(t, be.Flush())
	assert.Equal(t, n, buf.Len())
}

func TestSizeClamp(t *testing.T) {
	be := New(-3, -3)

	w, h := be.Size()
	assert.Zero(t, w)
	assert.Zero(t, h)
}
