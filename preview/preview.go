/*
Package preview renders packed rectangles back into a PNG image so the result
of a conversion can be checked by eye.

Rectangles are drawn black on a white background, optionally scaled up by an
integer factor with nearest-neighbor sampling so individual pixels stay
sharp.
*/
package preview

import (
	"errors"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/bodgit/pixel2jack/bitmap"
	"github.com/bodgit/pixel2jack/pack"
	xdraw "golang.org/x/image/draw"
)

var (
	errBadSize  = errors.New("preview: image has no pixels")
	errBadScale = errors.New("preview: scale must be at least 1")
	errTooBig   = errors.New("preview: scaled image is too big")
)

// maxPixels limits the size of a scaled preview.
const maxPixels = 1 << 28

// Render returns a width by height paletted image with every rectangle drawn
// in, scaled up by scale.
func Render(width, height int, rects []pack.Rectangle, scale int) (*image.Paletted, error) {
	if width <= 0 || height <= 0 {
		return nil, errBadSize
	}
	if scale < 1 {
		return nil, errBadScale
	}
	if scale > math.MaxInt/width || scale > math.MaxInt/height || width*scale > maxPixels/(height*scale) {
		return nil, errTooBig
	}

	b := image.Rect(0, 0, width, height)
	m := image.NewPaletted(b, bitmap.Palette)

	black := image.NewUniform(bitmap.Palette[1])
	for _, r := range rects {
		if !r.Filled {
			continue
		}
		draw.Draw(m, r.Bounds().Intersect(b), black, image.Point{}, draw.Src)
	}

	if scale == 1 {
		return m, nil
	}

	dst := image.NewPaletted(image.Rect(0, 0, width*scale, height*scale), bitmap.Palette)
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), m, b, xdraw.Src, nil)

	return dst, nil
}

// Encode writes the rendered rectangles to w as a PNG.
func Encode(w io.Writer, width, height int, rects []pack.Rectangle, scale int) error {
	m, err := Render(width, height, rects, scale)
	if err != nil {
		return err
	}

	e := png.Encoder{CompressionLevel: png.BestCompression}

	return e.Encode(w, m)
}
