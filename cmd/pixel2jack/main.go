package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bodgit/pixel2jack"
	"github.com/bodgit/pixel2jack/bitmap"
	"github.com/bodgit/pixel2jack/cache"
	"github.com/urfave/cli/v2"
)

var version = "1.1.0"

const description = `Converts a 1-bit (black & white) BMP image to a Jack class file.
Black pixels are considered filled; white pixels are empty.

Output: <ImageName>.jack

Tips for best results:
  - Works with 1-bit (monochrome) BMPs
  - Use pure black (#000000) for filled pixels
  - Use pure white (#FFFFFF) for empty pixels
  - Save as uncompressed BMP format`

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"v"},
		Usage:   "print the version",
	}
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Fprintf(c.App.Writer, "%s version %s\n", c.App.Name, c.App.Version)
		fmt.Fprintln(c.App.Writer, "Pixel art to Jack converter for the Hack platform")
	}
}

func convert(c *cli.Context) error {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(c.App.ErrWriter)
	}

	policy, err := bitmap.ParseOrderPolicy(c.String("bit-order"))
	if err != nil {
		return cli.Exit(err, 1)
	}

	var db *cache.DB
	if file := c.String("cache"); file != "" {
		if db, err = cache.Open(file); err != nil {
			return cli.Exit(err, 1)
		}
		defer db.Close()
	}

	file := c.Args().First()
	w := c.App.Writer

	fmt.Fprintf(w, "%s - Converting %s...\n\n", c.App.Name, file)

	r, err := pixel2jack.New(db, logger).Convert(file, pixel2jack.Options{
		OutputDir: c.String("output-dir"),
		Policy:    policy,
		Preview:   c.String("preview"),
		Scale:     c.Int("scale"),
	})
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v\n\nConversion failed.", err), 1)
	}

	fmt.Fprintf(w, "Generated: %s\n", r.Output)
	fmt.Fprintf(w, "Class: %s\n", r.ClassName)
	fmt.Fprintf(w, "Size: %dx%d pixels\n", r.Width, r.Height)
	fmt.Fprintf(w, "Rectangles: %d\n", len(r.Rects))
	fmt.Fprintf(w, "\nUsage in Jack code:\n")
	fmt.Fprintf(w, "  do %s.draw(x, y);  // Draw at position x, y\n", r.ClassName)
	fmt.Fprintf(w, "  do %s.drawAtOrigin();  // Draw at 0, 0\n", r.ClassName)

	return nil
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "pixel2jack"
	app.Usage = "Pixel art to Jack converter"
	app.Description = description
	app.ArgsUsage = "FILE"
	app.Version = version
	app.HideHelpCommand = true

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "output-dir",
			Aliases: []string{"o"},
			EnvVars: []string{"PIXEL2JACK_OUTPUT_DIR"},
			Value:   ".",
			Usage:   "directory to write the generated class to",
		},
		&cli.StringFlag{
			Name:  "bit-order",
			Value: bitmap.AutoOrder.String(),
			Usage: "bit order of pixel data: auto, msb or lsb",
		},
		&cli.StringFlag{
			Name:  "preview",
			Usage: "also write a PNG rendering of the rectangles to `FILE`",
		},
		&cli.IntFlag{
			Name:  "scale",
			Value: 1,
			Usage: "preview upscale factor",
		},
		&cli.StringFlag{
			Name:    "cache",
			EnvVars: []string{"PIXEL2JACK_CACHE"},
			Usage:   "path to conversion cache database, disabled if empty",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "increase verbosity",
		},
	}

	app.Action = func(c *cli.Context) error {
		if c.NArg() < 1 {
			cli.ShowAppHelp(c)
			return cli.Exit("", 1)
		}

		switch c.Args().First() {
		case "help":
			return cli.ShowAppHelp(c)
		case "version":
			cli.ShowVersion(c)
			return nil
		}

		return convert(c)
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
