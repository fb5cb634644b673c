package bitmap

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"os"
	"strings"
)

// OrderPolicy selects how the bit order of pixel data is determined.
type OrderPolicy int

const (
	// AutoOrder runs ChooseBitOrder on the first byte of pixel data.
	AutoOrder OrderPolicy = iota
	// ForceMSB always decodes MSB-first.
	ForceMSB
	// ForceLSB always decodes LSB-first.
	ForceLSB
)

func (p OrderPolicy) String() string {
	switch p {
	case AutoOrder:
		return "auto"
	case ForceMSB:
		return "msb"
	case ForceLSB:
		return "lsb"
	default:
		return "unknown"
	}
}

// ParseOrderPolicy parses "auto", "msb" or "lsb".
func ParseOrderPolicy(s string) (OrderPolicy, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return AutoOrder, nil
	case "msb":
		return ForceMSB, nil
	case "lsb":
		return ForceLSB, nil
	}
	return AutoOrder, fmt.Errorf("bitmap: unknown bit order %q", s)
}

// fileHeader follows the two byte magic.
type fileHeader struct {
	Size       uint32
	Reserved1  uint16
	Reserved2  uint16
	DataOffset uint32
}

type infoHeader struct {
	Size            uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitCount        uint16
	Compression     uint32
	SizeImage       uint32
	XPixelsPerM     int32
	YPixelsPerM     int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

// rgbQuad is stored blue, green, red, reserved.
type rgbQuad [paletteEntry]byte

func (q rgbQuad) filled() bool { return q[2] == 0 }

func readFull(r io.Reader, data interface{}) error {
	err := binary.Read(r, binary.LittleEndian, data)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

// rowBytes returns the padded length in bytes of one stored row.
func rowBytes(width int) int {
	return (width + 31) / 32 * 4
}

type decoder struct {
	r *bytes.Reader

	magic [2]byte
	fh    fileHeader
	ih    infoHeader

	palette [paletteLen]rgbQuad
	policy  OrderPolicy
	order   BitOrder

	grid *Grid
}

func (d *decoder) readHeaders() error {
	if err := readFull(d.r, &d.magic); err != nil {
		return &IOError{Op: "read file header", Err: err}
	}
	if string(d.magic[:]) != magic {
		return FormatError("not a BMP file")
	}
	if err := readFull(d.r, &d.fh); err != nil {
		return &IOError{Op: "read file header", Err: err}
	}

	if err := readFull(d.r, &d.ih); err != nil {
		return &IOError{Op: "read info header", Err: err}
	}
	if d.ih.BitCount != 1 {
		return FormatError(fmt.Sprintf("unsupported bit depth %d, only 1-bit images are supported", d.ih.BitCount))
	}
	if d.ih.Width <= 0 || d.ih.Height <= 0 {
		return FormatError(fmt.Sprintf("unsupported dimensions %dx%d", d.ih.Width, d.ih.Height))
	}
	return nil
}

func (d *decoder) readPalette() error {
	// Larger info headers push the palette further along
	if d.ih.Size > infoHeaderLen {
		if _, err := d.r.Seek(int64(fileHeaderLen)+int64(d.ih.Size), io.SeekStart); err != nil {
			return &IOError{Op: "read palette", Err: err}
		}
	}
	for i := range d.palette {
		if err := readFull(d.r, &d.palette[i]); err != nil {
			return &IOError{Op: "read palette", Err: err}
		}
	}
	return nil
}

func (d *decoder) readPixels() error {
	width, height := int(d.ih.Width), int(d.ih.Height)
	stride := rowBytes(width)

	offset := int64(d.fh.DataOffset)
	if offset >= d.r.Size() {
		return &IOError{Op: "seek to pixel data", Err: io.ErrUnexpectedEOF}
	}
	if offset+int64(stride)*int64(height) > d.r.Size() {
		return &IOError{Op: "read pixel data", Err: io.ErrUnexpectedEOF}
	}
	if _, err := d.r.Seek(offset, io.SeekStart); err != nil {
		return &IOError{Op: "seek to pixel data", Err: err}
	}

	d.grid = NewGrid(width, height)
	row := make([]byte, stride)

	// Rows are stored bottom to top
	for i := 0; i < height; i++ {
		if _, err := io.ReadFull(d.r, row); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return &IOError{Op: fmt.Sprintf("read row %d", i), Err: err}
		}

		if i == 0 {
			switch d.policy {
			case ForceMSB:
				d.order = MSBFirst
			case ForceLSB:
				d.order = LSBFirst
			default:
				d.order = ChooseBitOrder(row[0])
			}
		}

		y := height - 1 - i
		for x := 0; x < width; x++ {
			bit := row[x/8] >> d.order.shift(x) & 1
			d.grid.pix[y*width+x] = d.palette[bit].filled()
		}
	}
	return nil
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return &IOError{Op: "read", Err: err}
	}
	d.r = bytes.NewReader(b)

	if err := d.readHeaders(); err != nil {
		return err
	}

	if configOnly {
		return nil
	}

	if err := d.readPalette(); err != nil {
		return err
	}

	return d.readPixels()
}

// Decoder decodes 1-bit BMP images. The zero value detects the bit order
// automatically.
type Decoder struct {
	Policy OrderPolicy
}

// Decode reads a 1-bit BMP image from r and returns it as a Grid along with
// the bit order that was used to decode it.
func (dec Decoder) Decode(r io.Reader) (*Grid, BitOrder, error) {
	d := decoder{policy: dec.Policy}
	if err := d.decode(r, false); err != nil {
		return nil, MSBFirst, err
	}
	return d.grid, d.order, nil
}

// Decode reads a 1-bit BMP image from r and returns it as a Grid.
func Decode(r io.Reader) (*Grid, error) {
	g, _, err := Decoder{}.Decode(r)
	return g, err
}

// DecodeConfig returns the color model and dimensions of a 1-bit BMP image
// without decoding the pixel data.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: Palette,
		Width:      int(d.ih.Width),
		Height:     int(d.ih.Height),
	}, nil
}

// DecodeFile opens the named file and decodes it.
func (dec Decoder) DecodeFile(name string) (*Grid, BitOrder, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, MSBFirst, &IOError{Op: "open", Err: err}
	}
	defer f.Close()

	return dec.Decode(f)
}
