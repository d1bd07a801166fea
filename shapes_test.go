package plotter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midbel/plotter"
	"github.com/midbel/plotter/record"
)

func TestMarkerTiny(t *testing.T) {
	be := record.New(100, 100)
	m := plotter.Marker{
		Pos:   plotter.NewPos(10, 10),
		Size:  1,
		Style: plotter.NewStyle(plotter.Red),
	}
	require.NoError(t, plotter.Root(be).Draw(m))

	require.Equal(t, 1, be.Len())
	px, ok := be.Ops()[0].(record.Pixel)
	require.True(t, ok)
	assert.Equal(t, 10, px.X)
	assert.Equal(t, 10, px.Y)
	assert.Equal(t, plotter.Red, px.Color)
}

func TestMarkerSquare(t *testing.T) {
	be := record.New(100, 100)
	m := plotter.NewMarker(plotter.NewPos(50, 50), plotter.MarkSquare, plotter.Black)
	require.NoError(t, plotter.Root(be).Draw(m))

	require.Equal(t, 1, be.Len())
	rect, ok := be.Ops()[0].(record.Rect)
	require.True(t, ok)
	assert.True(t, rect.Filled)
	assert.Equal(t, 48, rect.X0)
	assert.Equal(t, 52, rect.X1)
}

func TestMarkerDiamond(t *testing.T) {
	be := record.New(100, 100)
	m := plotter.NewMarker(plotter.NewPos(50, 50), plotter.MarkDiamond, plotter.Black)
	require.NoError(t, plotter.Root(be).Draw(m))

	require.Equal(t, 1, be.Len())
	poly, ok := be.Ops()[0].(record.Polygon)
	require.True(t, ok)
	assert.Len(t, poly.Points, 4)
	assert.True(t, poly.Filled)
}

func TestMarkerCircle(t *testing.T) {
	be := record.New(100, 100)
	m := plotter.NewMarker(plotter.NewPos(50, 50), plotter.MarkCircle, plotter.Black)
	require.NoError(t, plotter.Root(be).Draw(m))

	require.Equal(t, 1, be.Len())
	poly, ok := be.Ops()[0].(record.Polygon)
	require.True(t, ok)
	assert.Len(t, poly.Points, 32)
	assert.True(t, poly.Filled)
}

func TestPolygonOutline(t *testing.T) {
	var (
		be  = record.New(100, 100)
		pts = []plotter.Pos{
			plotter.NewPos(10, 10),
			plotter.NewPos(90, 10),
			plotter.NewPos(50, 90),
		}
	)
	hollow := plotter.NewPolygon(pts, plotter.NewStyle(plotter.Blue), false)
	require.NoError(t, plotter.Root(be).Draw(hollow))

	require.Equal(t, 1, be.Len())
	path, ok := be.Ops()[0].(record.Path)
	require.True(t, ok)
	// outline closes back on the first point
	require.Len(t, path.Points, 4)
	assert.Equal(t, path.Points[0], path.Points[3])
}

func TestPolygonDegenerate(t *testing.T) {
	var (
		be  = record.New(100, 100)
		pts = []plotter.Pos{
			plotter.NewPos(10, 10),
			plotter.NewPos(90, 10),
		}
	)
	p := plotter.NewPolygon(pts, plotter.NewStyle(plotter.Blue), true)
	require.NoError(t, plotter.Root(be).Draw(p))
	assert.Zero(t, be.Len())
}

func TestCircleShape(t *testing.T) {
	be := record.New(100, 100)
	c := plotter.NewCircle(plotter.NewPos(50, 50), 20, plotter.NewStyle(plotter.Green), true)
	require.NoError(t, plotter.Root(be).Draw(c))

	require.Equal(t, 1, be.Len())
	poly, ok := be.Ops()[0].(record.Polygon)
	require.True(t, ok)
	require.Len(t, poly.Points, 32)

	for _, pt := range poly.Points {
		var (
			dx = pt.X - 50
			dy = pt.Y - 50
		)
		assert.InDelta(t, 400, dx*dx+dy*dy, 1e-6)
	}
}

func TestCircleZeroRadius(t *testing.T) {
	be := record.New(100, 100)
	c := plotter.NewCircle(plotter.NewPos(50, 50), 0, plotter.NewStyle(plotter.Green), true)
	require.NoError(t, plotter.Root(be).Draw(c))
	assert.Zero(t, be.Len())
}

func TestLabelEmpty(t *testing.T) {
	be := record.New(100, 100)
	l := plotter.NewLabel("", plotter.NewPos(50, 50), plotter.NewFont(12), plotter.Black)
	require.NoError(t, plotter.Root(be).Draw(l))
	assert.Zero(t, be.Len())
}

func TestLabelBounds(t *testing.T) {
	var (
		be = record.New(100, 100)
		l  = plotter.Label{
			Text:   "abc",
			Pos:    plotter.NewPos(50, 50),
			Font:   plotter.NewFont(10),
			Color:  plotter.Black,
			Anchor: plotter.AnchorCenter | plotter.AnchorMiddle,
		}
	)
	box := l.Bounds(be)
	// 3 glyphs at the 0.6em estimate, centered on the position
	assert.Equal(t, plotter.NewRect(41, 44, 59, 56), box)
}
