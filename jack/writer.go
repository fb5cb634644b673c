package jack

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

var errNoName = errors.New("jack: class has no name")

type encoder struct {
	w   *bufio.Writer
	err error
}

func (e *encoder) printf(format string, a ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, a...)
}

func (e *encoder) comment(indent string, lines ...string) {
	e.printf("%s/**\n", indent)
	for _, l := range lines {
		e.printf("%s * %s\n", indent, l)
	}
	e.printf("%s */\n", indent)
}

func (e *encoder) encode(c *Class) error {
	e.comment("",
		fmt.Sprintf("%s - Generated pixel art class", c.Name),
		fmt.Sprintf("Image size: %dx%d pixels", c.Width, c.Height),
		fmt.Sprintf("Black pixels: %d", c.Filled),
		fmt.Sprintf("Optimized to %d rectangles", len(c.Rects)),
	)
	e.printf("class %s {\n\n", c.Name)

	e.comment("\t",
		"Draws the pixel art at the specified offset",
		"offsetX: X coordinate of top-left corner",
		"offsetY: Y coordinate of top-left corner",
	)
	e.printf("\tfunction void draw(int offsetX, int offsetY) {\n")
	for _, r := range c.Rects {
		e.printf("\t\tdo Screen.setColor(%t);\n", r.Filled)
		e.printf("\t\tdo Screen.drawRectangle(offsetX + %d, offsetY + %d, offsetX + %d, offsetY + %d);\n",
			r.X, r.Y, r.Right(), r.Bottom())
	}
	e.printf("\t\treturn;\n\t}\n\n")

	e.comment("\t", "Draws the pixel art at origin (0, 0)")
	e.printf("\tfunction void drawAtOrigin() {\n")
	e.printf("\t\tdo %s.draw(0, 0);\n", c.Name)
	e.printf("\t\treturn;\n\t}\n\n")

	e.comment("\t", "Returns the width of the pixel art")
	e.printf("\tfunction int getWidth() {\n\t\treturn %d;\n\t}\n\n", c.Width)

	e.comment("\t", "Returns the height of the pixel art")
	e.printf("\tfunction int getHeight() {\n\t\treturn %d;\n\t}\n", c.Height)

	e.printf("}\n")

	if e.err != nil {
		return e.err
	}
	return e.w.Flush()
}

// Encode writes c to w as Jack source.
func Encode(w io.Writer, c *Class) error {
	if c.Name == "" {
		return errNoName
	}

	e := encoder{w: bufio.NewWriter(w)}

	return e.encode(c)
}
