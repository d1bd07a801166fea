package plotter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHex(t *testing.T) {
	assert.Equal(t, "#000000", Black.Hex())
	assert.Equal(t, "#ff0000", Red.Hex())
	assert.Equal(t, "#1f77b4", Category10[0].Hex())
}

func TestFlatten(t *testing.T) {
	got := NewRGBA(0, 0, 0, 127).Flatten()
	assert.Equal(t, uint8(255), got.A)
	assert.Equal(t, uint8(128), got.R)

	assert.Equal(t, Red, Red.Flatten())
}

func TestPalettePick(t *testing.T) {
	assert.Len(t, Category10, 10)
	assert.Len(t, Tableau10, 10)

	assert.Equal(t, Category10[0], Category10.Pick(0))
	assert.Equal(t, Category10[0], Category10.Pick(10))
	assert.Equal(t, Category10[9], Category10.Pick(-1))
	assert.Equal(t, Category10[9], Category10.Pick(-11))
	assert.Equal(t, Black, Palette(nil).Pick(3))
}
