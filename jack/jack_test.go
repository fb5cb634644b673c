package jack

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bodgit/pixel2jack/pack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassName(t *testing.T) {
	tables := []struct {
		path, want string
	}{
		{"smiley.bmp", "Smiley"},
		{"images/smiley.bmp", "Smiley"},
		{`C:\art\smiley.bmp`, "Smiley"},
		{"my-sprite.v2.bmp", "My_sprite_v2"},
		{"player one.bmp", "Player_one"},
		{"_hidden.bmp", "_hidden"},
		{"Already", "Already"},
		{"9lives.bmp", "9lives"},
		{"dir.d/noext", "Noext"},
		{"", ""},
	}

	for _, table := range tables {
		assert.Equal(t, table.want, ClassName(table.path), table.path)
	}
}

const want = `/**
 * Lshape - Generated pixel art class
 * Image size: 4x2 pixels
 * Black pixels: 5
 * Optimized to 2 rectangles
 */
class Lshape {

	/**
	 * Draws the pixel art at the specified offset
	 * offsetX: X coordinate of top-left corner
	 * offsetY: Y coordinate of top-left corner
	 */
	function void draw(int offsetX, int offsetY) {
		do Screen.setColor(true);
		do Screen.drawRectangle(offsetX + 0, offsetY + 0, offsetX + 3, offsetY + 0);
		do Screen.setColor(true);
		do Screen.drawRectangle(offsetX + 0, offsetY + 1, offsetX + 0, offsetY + 1);
		return;
	}

	/**
	 * Draws the pixel art at origin (0, 0)
	 */
	function void drawAtOrigin() {
		do Lshape.draw(0, 0);
		return;
	}

	/**
	 * Returns the width of the pixel art
	 */
	function int getWidth() {
		return 4;
	}

	/**
	 * Returns the height of the pixel art
	 */
	function int getHeight() {
		return 2;
	}
}
`

func TestEncode(t *testing.T) {
	c := &Class{
		Name:   "Lshape",
		Width:  4,
		Height: 2,
		Filled: 5,
		Rects: []pack.Rectangle{
			{X: 0, Y: 0, Width: 4, Height: 1, Filled: true},
			{X: 0, Y: 1, Width: 1, Height: 1, Filled: true},
		},
	}

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, c))
	assert.Equal(t, want, b.String())
}

func TestEncodeEmpty(t *testing.T) {
	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, &Class{Name: "Blank", Width: 1, Height: 1}))
	assert.Contains(t, b.String(), "\tfunction void draw(int offsetX, int offsetY) {\n\t\treturn;\n\t}\n")
	assert.NotContains(t, b.String(), "Screen.")

	assert.Error(t, Encode(b, &Class{}))
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncodeWriteError(t *testing.T) {
	rects := make([]pack.Rectangle, 1000)
	for i := range rects {
		rects[i] = pack.Rectangle{X: i, Y: 0, Width: 1, Height: 1, Filled: true}
	}
	err := Encode(failWriter{}, &Class{Name: "Big", Width: 1000, Height: 1, Filled: 1000, Rects: rects})
	assert.EqualError(t, err, "disk full")
}
