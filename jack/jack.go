/*
Package jack writes packed rectangles as a class in the Jack language of the
Hack platform.

The generated class has a draw(offsetX, offsetY) function issuing one
Screen.setColor and one Screen.drawRectangle call per rectangle, a
drawAtOrigin() convenience function, and getWidth()/getHeight() accessors.
*/
package jack

import (
	"strings"

	"github.com/bodgit/pixel2jack/pack"
)

// Ext is the file extension of generated classes.
const Ext = ".jack"

// Class describes a generated class.
type Class struct {
	Name   string
	Width  int
	Height int
	Filled int
	Rects  []pack.Rectangle
}

func isIdent(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

// ClassName derives a class name from a file path. Any directory and the
// final extension are removed, the first character is uppercased and every
// byte that is not a letter, digit or underscore becomes an underscore.
func ClassName(path string) string {
	base := path
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}

	b := []byte(base)
	if len(b) > 0 && b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	for i, c := range b {
		if !isIdent(c) {
			b[i] = '_'
		}
	}
	return string(b)
}
