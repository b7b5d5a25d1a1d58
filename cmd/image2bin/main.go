package main

import (
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/image2bin"
	"github.com/bodgit/image2bin/order"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

var conversionFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "order",
		Value: order.Row.String(),
		Usage: "the order the data should be sorted in (row, column or zigzag)",
	},
	&cli.BoolFlag{
		Name:  "shift",
		Usage: "shift the sprite horizontally",
	},
	&cli.BoolFlag{
		Name:  "vertical-shift",
		Usage: "shift the sprite vertically, column order only",
	},
	&cli.UintFlag{
		Name:  "threshold",
		Usage: "minimum luminance (1-255) of a set pixel, 0 reduces the image to two colors",
	},
	&cli.BoolFlag{
		Name:  "invert",
		Usage: "invert the image",
	},
	&cli.BoolFlag{
		Name:  "invert-mask",
		Usage: "invert the mask image",
	},
	&cli.StringFlag{
		Name:  "format",
		Value: image2bin.Assembler.String(),
		Usage: "output format (asm or bin)",
	},
}

func options(c *cli.Context) (image2bin.Options, error) {
	o, err := order.Parse(c.String("order"))
	if err != nil {
		return image2bin.Options{}, err
	}

	f, err := image2bin.ParseFormat(c.String("format"))
	if err != nil {
		return image2bin.Options{}, err
	}

	t := c.Uint("threshold")
	if t > 255 {
		t = 255
	}

	return image2bin.Options{
		Order:         o,
		Shift:         c.Bool("shift"),
		VerticalShift: c.Bool("vertical-shift"),
		Threshold:     uint8(t),
		Invert:        c.Bool("invert"),
		InvertMask:    c.Bool("invert-mask"),
		Format:        f,
	}, nil
}

func converter(c *cli.Context) (*image2bin.Converter, func() error, error) {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	if c.String("cache") == "" {
		return image2bin.New(nil, logger), func() error { return nil }, nil
	}

	cache, err := image2bin.NewCache(c.String("cache"))
	if err != nil {
		return nil, nil, err
	}

	return image2bin.New(cache, logger), cache.Close, nil
}

func convert(c *cli.Context) (err error) {
	opts, err := options(c)
	if err != nil {
		return err
	}

	conv, closer, err := converter(c)
	if err != nil {
		return err
	}
	defer closer()

	var w io.Writer = os.Stdout
	if output := c.String("output"); output != "" {
		f, ferr := os.Create(output)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	return conv.ConvertFile(w, c.Args().First(), c.String("mask"), opts)
}

func scan(c *cli.Context) error {
	opts, err := options(c)
	if err != nil {
		return err
	}

	conv, closer, err := converter(c)
	if err != nil {
		return err
	}
	defer closer()

	return conv.Scan(c.Args().First(), opts)
}

func main() {
	app := cli.NewApp()

	app.Name = "image2bin"
	app.Usage = "Convert 1-bit sprite images to byte tables"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "cache",
			EnvVars: []string{"IMAGE2BIN_CACHE"},
			Usage:   "path to cache database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Convert an image",
			Description: "Convert an image and optional mask into a byte table written to stdout or a file",
			ArgsUsage:   "FILE",
			Flags: append([]cli.Flag{
				&cli.StringFlag{
					Name:  "mask",
					Usage: "mask image",
				},
				&cli.StringFlag{
					Name:  "output",
					Usage: "output file",
				},
			}, conversionFlags...),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				if err := convert(c); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Convert every image in a directory",
			Description: "Walk a directory converting each image, using name-mask.ext as the mask for name.ext, and write each table alongside its image",
			ArgsUsage:   "DIRECTORY",
			Flags:       conversionFlags,
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				if err := scan(c); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
