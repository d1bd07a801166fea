package plotter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midbel/plotter"
	"github.com/midbel/plotter/record"
)

var testPad = plotter.Padding{
	Top:    40,
	Right:  40,
	Bottom: 40,
	Left:   40,
}

func TestChartBuild(t *testing.T) {
	be := record.New(800, 600)
	chart := plotter.Chart[float64, float64]{
		Padding: testPad,
		XSize:   30,
		YSize:   50,
	}
	cart, err := chart.Build(
		plotter.Root(be),
		plotter.NumberScaler(plotter.NumberDomain(0, 10), plotter.NewRange(0, 0)),
		plotter.NumberScaler(plotter.NumberDomain(0, 10), plotter.NewRange(0, 0)),
	)
	require.NoError(t, err)

	// padding, then the label strips carved off the left and bottom
	assert.Equal(t, plotter.NewRect(90, 40, 760, 530), cart.Rect())

	coord := cart.Coord()
	assert.Equal(t, 0.0, coord.X.Scale(0))
	assert.Equal(t, 670.0, coord.X.Scale(10))
	assert.Equal(t, 490.0, coord.Y.Scale(0))
	assert.Equal(t, 0.0, coord.Y.Scale(10))

	// two spines and two grid lines per axis
	require.Equal(t, 6, be.Len())
	spine, ok := be.Ops()[0].(record.Path)
	require.True(t, ok)
	assert.Equal(t, plotter.NewPos(90, 530), spine.Points[0])
	assert.Equal(t, plotter.NewPos(760, 530), spine.Points[1])
}

func TestChartTitle(t *testing.T) {
	be := record.New(800, 600)
	chart := plotter.Chart[float64, float64]{
		Title:   "Demand",
		Padding: testPad,
		XSize:   30,
		YSize:   50,
	}
	cart, err := chart.Build(
		plotter.Root(be),
		plotter.NumberScaler(plotter.NumberDomain(0, 10), plotter.NewRange(0, 0)),
		plotter.NumberScaler(plotter.NumberDomain(0, 10), plotter.NewRange(0, 0)),
	)
	require.NoError(t, err)
	require.NotZero(t, be.Len())

	txt, ok := be.Ops()[0].(record.Text)
	require.True(t, ok)
	assert.Equal(t, "Demand", txt.Str)
	assert.Equal(t, 400, txt.X)
	assert.Equal(t, 40, txt.Y)
	assert.Equal(t, plotter.AnchorCenter|plotter.AnchorTop, txt.Anchor)

	// the caption band comes off the top of the plot
	assert.Equal(t, 71, cart.Rect().Y0)
}

func TestChartZeroStrips(t *testing.T) {
	be := record.New(800, 600)
	chart := plotter.Chart[float64, float64]{
		Padding: plotter.Padding{Top: 10, Right: 10, Bottom: 10, Left: 10},
	}
	cart, err := chart.Build(
		plotter.Root(be),
		plotter.NumberScaler(plotter.NumberDomain(0, 1), plotter.NewRange(0, 0)),
		plotter.NumberScaler(plotter.NumberDomain(0, 1), plotter.NewRange(0, 0)),
	)
	require.NoError(t, err)

	assert.Equal(t, plotter.NewRect(10, 10, 790, 590), cart.Rect())
	assert.Zero(t, be.Len())
}

func TestChartNilScaler(t *testing.T) {
	be := record.New(800, 600)
	chart := plotter.Chart[float64, float64]{
		Padding: testPad,
		XSize:   30,
		YSize:   50,
	}
	_, err := chart.Build(plotter.Root(be), nil, nil)
	assert.ErrorIs(t, err, plotter.ErrNoCoordinateMapping)
}

func TestChartDrawAfterBuild(t *testing.T) {
	be := record.New(800, 600)
	chart := plotter.Chart[float64, float64]{
		Padding: testPad,
		XSize:   30,
		YSize:   50,
	}
	cart, err := chart.Build(
		plotter.Root(be),
		plotter.NumberScaler(plotter.NumberDomain(0, 10), plotter.NewRange(0, 0)),
		plotter.NumberScaler(plotter.NumberDomain(0, 10), plotter.NewRange(0, 0)),
	)
	require.NoError(t, err)

	before := be.Len()
	pts := []plotter.Point[float64, float64]{
		plotter.NumberPoint(0, 0),
		plotter.NumberPoint(10, 10),
	}
	require.NoError(t, cart.DrawSeries(plotter.LineSeries(pts, plotter.NewStroke(plotter.Black, 1))))

	require.Equal(t, before+1, be.Len())
	line, ok := be.Ops()[before].(record.Path)
	require.True(t, ok)
	// data runs bottom left to top right of the plot area
	assert.Equal(t, plotter.NewPos(90, 530), line.Points[0])
	assert.Equal(t, plotter.NewPos(760, 40), line.Points[1])
}
