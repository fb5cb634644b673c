/*
Package pixel2jack converts monochrome bitmaps into Jack classes that redraw
the image on the Hack platform screen using as few filled rectangles as a
greedy scan finds.
*/
package pixel2jack

import (
	"log"

	"github.com/bodgit/pixel2jack/bitmap"
	"github.com/bodgit/pixel2jack/cache"
)

// Options controls a single conversion.
type Options struct {
	// OutputDir is where the generated class is written. Empty means the
	// current directory.
	OutputDir string
	// Policy selects how the bit order of the pixel data is determined.
	Policy bitmap.OrderPolicy
	// Preview, if set, is the path of a PNG rendering of the result.
	Preview string
	// Scale is the preview upscale factor.
	Scale int
}

// Converter converts bitmaps to Jack classes.
type Converter struct {
	db     *cache.DB
	logger *log.Logger
}

// New returns a Converter. db may be nil to disable caching.
func New(db *cache.DB, logger *log.Logger) *Converter {
	return &Converter{
		db:     db,
		logger: logger,
	}
}
