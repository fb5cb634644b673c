package pixel2jack

import "fmt"

// An OutputError reports that a generated file could not be written.
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

func (e *OutputError) Unwrap() error { return e.Err }
