package image2bin

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"

	"github.com/bodgit/image2bin/asm"
	"github.com/bodgit/image2bin/order"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	"golang.org/x/sync/errgroup"
)

// Decode file returning the image and the SHA1 of its contents
func decodeFile(file string) (image.Image, string, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	h := sha1.New()
	m, _, err := image.Decode(io.TeeReader(f, h))
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", file, err)
	}

	// Hash anything the decoder didn't need to read
	if _, err := io.Copy(h, f); err != nil {
		return nil, "", err
	}

	return m, fmt.Sprintf("%X", h.Sum(nil)), nil
}

func cacheKey(h asm.Header, opts Options, sums ...string) string {
	s := sha1.New()
	fmt.Fprintf(s, "%q %q %+v", h.File, h.Mask, opts)
	for _, sum := range sums {
		fmt.Fprintf(s, " %s", sum)
	}
	return fmt.Sprintf("%X", s.Sum(nil))
}

// ConvertFile decodes file and the optional mask file, converts them and
// writes the listing in the requested format to w. Nothing is written if the conversion fails.
func (c *Converter) ConvertFile(w io.Writer, file, mask string, opts Options) error {
	if err := order.Validate(opts.Order); err != nil {
		return err
	}

	if opts.Format.Ext() == "" {
		return fmt.Errorf("%w: %v", ErrUnknownFormat, opts.Format)
	}

	if opts.VerticalShift && opts.Order != order.Column {
		c.logger.Printf("Vertical shift ignored for %s order\n", opts.Order)
	}

	var (
		m, mm        image.Image
		sum, maskSum string
		g            errgroup.Group
	)
	g.Go(func() (err error) {
		m, sum, err = decodeFile(file)
		return
	})
	if mask != "" {
		g.Go(func() (err error) {
			mm, maskSum, err = decodeFile(mask)
			return
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	h := asm.Header{
		File:          file,
		Mask:          mask,
		Order:         opts.Order,
		Shift:         opts.Shift,
		VerticalShift: opts.VerticalShift,
	}

	var key string
	if c.cache != nil {
		key = cacheKey(h, opts, sum, maskSum)
		listing, err := c.cache.Get(key)
		if err != nil {
			return err
		}
		if listing != nil {
			c.logger.Printf("Cache hit for \"%s\"\n", file)
			_, err = w.Write(listing)
			return err
		}
	}

	lines, err := Convert(m, mm, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	b := new(bytes.Buffer)
	if err := opts.Format.encode(b, h, lines); err != nil {
		return err
	}

	if c.cache != nil {
		if err := c.cache.Put(key, b.Bytes()); err != nil {
			return err
		}
	}

	_, err = w.Write(b.Bytes())
	return err
}
