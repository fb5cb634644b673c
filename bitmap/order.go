package bitmap

// BitOrder is the order in which the eight pixels of a byte are stored.
type BitOrder int

const (
	// MSBFirst stores the leftmost pixel in bit 7.
	MSBFirst BitOrder = iota
	// LSBFirst stores the leftmost pixel in bit 0.
	LSBFirst
)

func (o BitOrder) String() string {
	switch o {
	case MSBFirst:
		return "msb"
	case LSBFirst:
		return "lsb"
	default:
		return "unknown"
	}
}

// shift returns the bit position of pixel x within its byte.
func (o BitOrder) shift(x int) uint {
	if o == LSBFirst {
		return uint(x % 8)
	}
	return uint(7 - x%8)
}

// ChooseBitOrder guesses the bit order of a bitmap from the first byte of its
// first stored row. If bit 7 and bit 0 disagree about the leftmost pixel the
// data is assumed to be LSB-first.
//
// This is a best-effort guess based on a single byte and will happily pick
// the wrong order for plenty of legitimate MSB-first images. Callers that
// know the order should set Decoder.Policy instead.
func ChooseBitOrder(first byte) BitOrder {
	msb := first >> 7 & 1
	lsb := first & 1
	if msb != lsb {
		return LSBFirst
	}
	return MSBFirst
}
