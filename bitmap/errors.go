package bitmap

import "fmt"

// A FormatError reports that the input is not a supported monochrome BMP.
type FormatError string

func (e FormatError) Error() string { return "bitmap: invalid format: " + string(e) }

// An IOError reports that the input could not be read in full, either
// because the file could not be opened or because it is shorter than its
// headers say.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string { return fmt.Sprintf("bitmap: %s: %v", e.Op, e.Err) }

func (e *IOError) Unwrap() error { return e.Err }
