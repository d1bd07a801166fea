package plotter

import (
	"fmt"
	"strconv"
)

// RGBA is a 4 channel color value. Alpha runs from 0 (fully transparent)
// to 255 (fully opaque).
type RGBA struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

func NewRGB(r, g, b uint8) RGBA {
	return RGBA{
		R: r,
		G: g,
		B: b,
		A: 255,
	}
}

func NewRGBA(r, g, b, a uint8) RGBA {
	return RGBA{
		R: r,
		G: g,
		B: b,
		A: a,
	}
}

func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGBA) Opacity() float64 {
	return float64(c.A) / 255
}

// Flatten composites the color against an opaque white background. Backends
// without alpha support use it before writing.
func (c RGBA) Flatten() RGBA {
	if c.A == 255 {
		return c
	}
	blend := func(v uint8) uint8 {
		f := float64(v)*c.Opacity() + 255*(1-c.Opacity())
		return uint8(f + 0.5)
	}
	return RGBA{
		R: blend(c.R),
		G: blend(c.G),
		B: blend(c.B),
		A: 255,
	}
}

var (
	Black = NewRGB(0, 0, 0)
	White = NewRGB(255, 255, 255)
	Red   = NewRGB(255, 0, 0)
	Green = NewRGB(0, 128, 0)
	Blue  = NewRGB(0, 0, 255)
	Grey  = NewRGB(128, 128, 128)
)

type Palette []RGBA

func (p Palette) Pick(i int) RGBA {
	if len(p) == 0 {
		return Black
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

var (
	Category10 Palette
	Tableau10  Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

func splitColorString(str string) Palette {
	var arr Palette
	for i := 0; i+6 <= len(str); i += 6 {
		r, _ := strconv.ParseUint(str[i:i+2], 16, 8)
		g, _ := strconv.ParseUint(str[i+2:i+4], 16, 8)
		b, _ := strconv.ParseUint(str[i+4:i+6], 16, 8)
		arr = append(arr, NewRGB(uint8(r), uint8(g), uint8(b)))
	}
	return arr
}
