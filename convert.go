package pixel2jack

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/pixel2jack/bitmap"
	"github.com/bodgit/pixel2jack/cache"
	"github.com/bodgit/pixel2jack/jack"
	"github.com/bodgit/pixel2jack/pack"
	"github.com/bodgit/pixel2jack/preview"
)

var errNoClassName = errors.New("cannot derive a class name from the input filename")

// Result describes a finished conversion.
type Result struct {
	ClassName string
	Output    string
	Width     int
	Height    int
	Filled    int
	Rects     []pack.Rectangle
	Cached    bool
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &OutputError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &OutputError{Path: path, Err: cerr}
		}
	}()

	if err := write(f); err != nil {
		return &OutputError{Path: path, Err: err}
	}
	return nil
}

func (c *Converter) lookup(key string) *cache.Entry {
	if c.db == nil {
		return nil
	}
	e, err := c.db.Find(key)
	if err != nil {
		c.logger.Printf("Cache lookup failed: %v\n", err)
		return nil
	}
	return e
}

func (c *Converter) decodeAndPack(b []byte, policy bitmap.OrderPolicy) (*cache.Entry, error) {
	grid, order, err := bitmap.Decoder{Policy: policy}.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	c.logger.Printf("Decoded %dx%d image, %s bit order\n", grid.Width(), grid.Height(), order)

	return &cache.Entry{
		Width:  grid.Width(),
		Height: grid.Height(),
		Filled: grid.CountFilled(),
		Rects:  pack.Optimize(grid),
	}, nil
}

// Convert decodes the bitmap in file, packs it into rectangles and writes
// the resulting class to opts.OutputDir.
func (c *Converter) Convert(file string, opts Options) (*Result, error) {
	name := jack.ClassName(file)
	if name == "" {
		return nil, errNoClassName
	}

	b, err := os.ReadFile(file)
	if err != nil {
		return nil, &bitmap.IOError{Op: "open", Err: err}
	}
	c.logger.Printf("Read %d bytes from \"%s\"\n", len(b), file)

	key := cache.Key(b, opts.Policy.String())

	r := &Result{ClassName: name}

	e := c.lookup(key)
	if e != nil {
		c.logger.Printf("Cache hit for %s\n", key)
		r.Cached = true
	} else {
		if e, err = c.decodeAndPack(b, opts.Policy); err != nil {
			return nil, err
		}
		if c.db != nil {
			if err := c.db.Store(key, e); err != nil {
				c.logger.Printf("Cache store failed: %v\n", err)
			}
		}
	}

	r.Width, r.Height, r.Filled, r.Rects = e.Width, e.Height, e.Filled, e.Rects
	c.logger.Printf("Packed %d filled pixels into %d rectangles\n", r.Filled, len(r.Rects))

	r.Output = filepath.Join(opts.OutputDir, name+jack.Ext)
	class := &jack.Class{
		Name:   name,
		Width:  r.Width,
		Height: r.Height,
		Filled: r.Filled,
		Rects:  r.Rects,
	}
	if err := writeFile(r.Output, func(w io.Writer) error { return jack.Encode(w, class) }); err != nil {
		return nil, err
	}
	c.logger.Printf("Wrote \"%s\"\n", r.Output)

	if opts.Preview != "" {
		scale := opts.Scale
		if scale == 0 {
			scale = 1
		}
		if err := writeFile(opts.Preview, func(w io.Writer) error {
			return preview.Encode(w, r.Width, r.Height, r.Rects, scale)
		}); err != nil {
			return nil, err
		}
		c.logger.Printf("Wrote preview \"%s\"\n", opts.Preview)
	}

	return r, nil
}
