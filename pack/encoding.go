package pack

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Rectangles is a list of filled rectangles. It implements the
// encoding.BinaryMarshaler and encoding.BinaryUnmarshaler interfaces.
//
// The encoding is a little-endian uint32 count followed by X, Y, Width and
// Height of each rectangle as uint16 values. Every rectangle is filled.
type Rectangles []Rectangle

var errTooBig = errors.New("pack: rectangle exceeds 65535")

// MarshalBinary encodes the rectangles into binary form and returns the
// result.
func (rs Rectangles) MarshalBinary() ([]byte, error) {
	if uint64(len(rs)) > math.MaxUint32 {
		return nil, fmt.Errorf("pack: more than %d rectangles", uint32(math.MaxUint32))
	}

	b := new(bytes.Buffer)
	b.Grow(4 + len(rs)*8)

	if err := binary.Write(b, binary.LittleEndian, uint32(len(rs))); err != nil {
		return nil, err
	}

	var tmp [4]uint16
	for _, r := range rs {
		for i, v := range [...]int{r.X, r.Y, r.Width, r.Height} {
			if v < 0 || v > math.MaxUint16 {
				return nil, errTooBig
			}
			tmp[i] = uint16(v)
		}
		if err := binary.Write(b, binary.LittleEndian, tmp); err != nil {
			return nil, err
		}
	}

	return b.Bytes(), nil
}

// UnmarshalBinary decodes the rectangles from binary form.
func (rs *Rectangles) UnmarshalBinary(b []byte) error {
	r := bytes.NewReader(b)

	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return errors.New("pack: insufficient data")
	}
	if uint64(r.Len()) != uint64(n)*8 {
		return fmt.Errorf("pack: expected %d bytes of rectangles, have %d", uint64(n)*8, r.Len())
	}

	out := make(Rectangles, 0, n)
	var tmp [4]uint16
	for i := uint32(0); i < n; i++ {
		if err := binary.Read(r, binary.LittleEndian, &tmp); err != nil {
			return err
		}
		out = append(out, Rectangle{
			X:      int(tmp[0]),
			Y:      int(tmp[1]),
			Width:  int(tmp[2]),
			Height: int(tmp[3]),
			Filled: true,
		})
	}

	*rs = out
	return nil
}
