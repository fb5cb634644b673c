package pack

import (
	"math/rand"
	"testing"

	"github.com/bodgit/pixel2jack/bitmap"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(art ...string) *bitmap.Grid {
	g := bitmap.NewGrid(len(art[0]), len(art))
	for y, row := range art {
		for x, c := range row {
			g.Set(x, y, c == '#')
		}
	}
	return g
}

func random(r *rand.Rand, width, height int, density float64) *bitmap.Grid {
	g := bitmap.NewGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.Set(x, y, r.Float64() < density)
		}
	}
	return g
}

func rect(x, y, w, h int) Rectangle {
	return Rectangle{X: x, Y: y, Width: w, Height: h, Filled: true}
}

func TestOptimize(t *testing.T) {
	tables := []struct {
		name string
		grid *bitmap.Grid
		want []Rectangle
	}{
		{
			name: "full",
			grid: parse("####", "####", "####", "####"),
			want: []Rectangle{rect(0, 0, 4, 4)},
		},
		{
			name: "empty",
			grid: parse("...", "..."),
			want: nil,
		},
		{
			name: "checkerboard",
			grid: parse("#.", ".#"),
			want: []Rectangle{rect(0, 0, 1, 1), rect(1, 1, 1, 1)},
		},
		{
			name: "l shape",
			grid: parse("####", "#..."),
			want: []Rectangle{rect(0, 0, 4, 1), rect(0, 1, 1, 1)},
		},
		{
			name: "width is fixed by the top row",
			grid: parse(
				"##..",
				"####",
				"####",
			),
			want: []Rectangle{rect(0, 0, 2, 3), rect(2, 1, 2, 2)},
		},
		{
			name: "growth stops at claimed cells",
			grid: parse(
				".###",
				"####",
			),
			want: []Rectangle{rect(1, 0, 3, 2), rect(0, 1, 1, 1)},
		},
		{
			name: "hole",
			grid: parse(
				"###",
				"#.#",
				"###",
			),
			want: []Rectangle{rect(0, 0, 3, 1), rect(0, 1, 1, 2), rect(2, 1, 1, 2), rect(1, 2, 1, 1)},
		},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			got := Optimize(table.grid)
			if diff := cmp.Diff(table.want, got); diff != "" {
				t.Errorf("Optimize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOptimizeZeroSize(t *testing.T) {
	assert.Nil(t, Optimize(bitmap.NewGrid(0, 0)))
}

func TestOptimizeProperties(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		width, height := 1+r.Intn(40), 1+r.Intn(40)
		g := random(r, width, height, r.Float64())

		rects := Optimize(g)

		owner := make([]int, width*height)
		for n, rc := range rects {
			require.True(t, rc.Filled)
			require.Positive(t, rc.Width)
			require.Positive(t, rc.Height)
			require.LessOrEqual(t, rc.X+rc.Width, width)
			require.LessOrEqual(t, rc.Y+rc.Height, height)

			for y := rc.Y; y <= rc.Bottom(); y++ {
				for x := rc.X; x <= rc.Right(); x++ {
					require.True(t, g.Filled(x, y), "rectangle %v covers empty cell (%d, %d)", rc, x, y)
					require.Zero(t, owner[y*width+x], "rectangle %v overlaps rectangle %d", rc, owner[y*width+x]-1)
					owner[y*width+x] = n + 1
				}
			}
		}

		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if g.Filled(x, y) {
					assert.NotZero(t, owner[y*width+x], "filled cell (%d, %d) not covered", x, y)
				}
			}
		}

		// Each rectangle could not have grown right when it was found:
		// the next cell is out of bounds, empty, or claimed by an earlier
		// rectangle.
		for n, rc := range rects {
			next := rc.Right() + 1
			if next < width && g.Filled(next, rc.Y) {
				assert.Less(t, owner[rc.Y*width+next]-1, n, "rectangle %v could have been wider", rc)
			}
		}

		assert.Equal(t, g.CountFilled(), Area(rects))
		assert.Equal(t, rects, Optimize(g))
	}
}

func TestRectangle(t *testing.T) {
	rc := rect(2, 3, 4, 5)
	assert.Equal(t, 5, rc.Right())
	assert.Equal(t, 7, rc.Bottom())
	assert.Equal(t, 20, rc.Area())
	assert.Equal(t, 4, rc.Bounds().Dx())
	assert.Equal(t, 5, rc.Bounds().Dy())
	assert.Equal(t, 0, Area(nil))
}

func BenchmarkOptimize(b *testing.B) {
	g := random(rand.New(rand.NewSource(1)), 512, 256, 0.5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Optimize(g)
	}
}
