package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/midbel/slices"
	"golang.org/x/sync/errgroup"

	"github.com/midbel/plotter"
	"github.com/midbel/plotter/raster"
	"github.com/midbel/plotter/svg"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
	defaultTicks  = 7
)

var defaultPad = plotter.Padding{
	Top:    40,
	Right:  40,
	Bottom: 40,
	Left:   40,
}

func main() {
	var (
		title  = flag.String("title", "", "chart title")
		width  = flag.Int("width", defaultWidth, "canvas width")
		height = flag.Int("height", defaultHeight, "canvas height")
		xcol   = flag.Int("xcol", 0, "index of x column")
		ycol   = flag.Int("ycol", 1, "index of y column")
		ticks  = flag.Int("ticks", defaultTicks, "ticks per axis")
		out    = flag.String("out", "chart", "output basename")
	)
	flag.Parse()

	points, err := readPoints(flag.Arg(0), *xcol, *ycol)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(points) == 0 {
		fmt.Fprintln(os.Stderr, "no data points")
		os.Exit(1)
	}

	var grp errgroup.Group
	grp.Go(func() error {
		w, err := os.Create(*out + ".svg")
		if err != nil {
			return err
		}
		defer w.Close()
		be := svg.New(w, *width, *height)
		return render(be, points, *title, *ticks)
	})
	grp.Go(func() error {
		w, err := os.Create(*out + ".png")
		if err != nil {
			return err
		}
		defer w.Close()
		be := raster.NewWriter(w, *width, *height)
		return render(be, points, *title, *ticks)
	})
	if err := grp.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// render runs the full pipeline on its own backend so that the two output
// targets never share mutable state.
func render(be plotter.Backend, points []plotter.Point[float64, float64], title string, ticks int) error {
	var (
		xdom, ydom = domains(points)
		root       = plotter.Root(be)
	)
	chart := plotter.Chart[float64, float64]{
		Title:   title,
		Padding: defaultPad,
		XSize:   30,
		YSize:   50,
		Bottom: plotter.Axis[float64]{
			Ticks:          ticks,
			WithInnerTicks: true,
			WithLabelTicks: true,
		},
		Left: plotter.Axis[float64]{
			Ticks:          ticks,
			WithInnerTicks: true,
			WithLabelTicks: true,
		},
	}
	plot, err := chart.Build(root, plotter.NumberScaler(xdom, plotter.NewRange(0, 0)), plotter.NumberScaler(ydom, plotter.NewRange(0, 0)))
	if err != nil {
		return err
	}
	var (
		color  = plotter.Category10.Pick(0)
		line   = plotter.LineSeries(points, plotter.NewStroke(color, 1))
		dots   = plotter.PointSeries(points, plotter.DefaultSize, plotter.NewStyle(color))
		series = plotter.Merge(line, dots)
	)
	if err := plot.DrawSeries(series); err != nil {
		return err
	}
	return root.Flush()
}

func domains(points []plotter.Point[float64, float64]) (plotter.Domain[float64], plotter.Domain[float64]) {
	var (
		xs = make([]float64, 0, len(points))
		ys = make([]float64, 0, len(points))
	)
	for _, pt := range points {
		xs = append(xs, pt.X)
		ys = append(ys, pt.Y)
	}
	sort.Float64s(xs)
	sort.Float64s(ys)
	var (
		xdom = plotter.NumberDomain(slices.Fst(xs), slices.Lst(xs))
		ydom = plotter.NumberDomain(slices.Fst(ys), slices.Lst(ys))
	)
	return xdom, ydom
}

func readPoints(file string, xcol, ycol int) ([]plotter.Point[float64, float64], error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var (
		rs     = csv.NewReader(r)
		points []plotter.Point[float64, float64]
	)
	rs.FieldsPerRecord = -1
	for {
		row, err := rs.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		if xcol >= len(row) || ycol >= len(row) {
			continue
		}
		x, err1 := strconv.ParseFloat(row[xcol], 64)
		y, err2 := strconv.ParseFloat(row[ycol], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		points = append(points, plotter.NumberPoint(x, y))
	}
	return points, nil
}
