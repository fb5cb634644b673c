package preview

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/bodgit/pixel2jack/pack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lshape = []pack.Rectangle{
	{X: 0, Y: 0, Width: 4, Height: 1, Filled: true},
	{X: 0, Y: 1, Width: 1, Height: 1, Filled: true},
}

func TestRender(t *testing.T) {
	m, err := Render(4, 2, lshape, 1)
	require.NoError(t, err)

	want := []string{
		"####",
		"#...",
	}
	for y, row := range want {
		for x, c := range row {
			assert.Equal(t, c == '#', m.ColorIndexAt(x, y) == 1, "pixel (%d, %d)", x, y)
		}
	}
}

func TestRenderScaled(t *testing.T) {
	m, err := Render(4, 2, lshape, 3)
	require.NoError(t, err)
	assert.Equal(t, 12, m.Bounds().Dx())
	assert.Equal(t, 6, m.Bounds().Dy())

	// Second source row: only the first column is filled
	for y := 3; y < 6; y++ {
		for x := 0; x < 12; x++ {
			assert.Equal(t, x < 3, m.ColorIndexAt(x, y) == 1, "pixel (%d, %d)", x, y)
		}
	}
}

func TestRenderErrors(t *testing.T) {
	_, err := Render(0, 2, nil, 1)
	assert.Error(t, err)

	_, err = Render(2, 2, nil, 0)
	assert.Error(t, err)

	_, err = Render(1, 1, nil, 1<<40)
	assert.Equal(t, errTooBig, err)

	_, err = Render(3, 2, nil, math.MaxInt/2)
	assert.Equal(t, errTooBig, err)

	_, err = Render(1<<15, 1<<14, nil, 1)
	assert.Equal(t, errTooBig, err)
}

func TestEncode(t *testing.T) {
	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, 4, 2, lshape, 2))

	m, err := png.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, 8, m.Bounds().Dx())
	assert.Equal(t, 4, m.Bounds().Dy())

	r, _, _, _ := m.At(0, 0).RGBA()
	assert.Zero(t, r)
	r, _, _, _ = m.At(7, 3).RGBA()
	assert.NotZero(t, r)
}
