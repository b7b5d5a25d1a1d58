package image2bin

import (
	"errors"
	"image"

	"github.com/bodgit/image2bin/bitrow"
	"github.com/bodgit/image2bin/order"
)

// ErrSizeMismatch is returned when the mask is a different size to the image
var ErrSizeMismatch = errors.New("image2bin: mask size mismatch")

// Options controls the conversion
type Options struct {
	Order order.Order
	// Shift generates eight horizontally shifted variants
	Shift bool
	// VerticalShift pads each column, only used with column order
	VerticalShift bool
	// Threshold sets the minimum 8-bit luminance of a set pixel. If zero,
	// images with more than two colors are reduced to two
	Threshold uint8
	Invert    bool
	// InvertMask inverts the mask image
	InvertMask bool
	Format     Format
}

// Convert converts m and the optional mask into the lines of a byte table
func Convert(m, mask image.Image, opts Options) ([]order.Line, error) {
	if err := order.Validate(opts.Order); err != nil {
		return nil, err
	}

	if mask != nil && mask.Bounds().Size() != m.Bounds().Size() {
		return nil, ErrSizeMismatch
	}

	src := order.Source{
		Data: bitrow.Variants(bitrow.Extract(prepare(m, opts.Threshold, opts.Invert)), opts.Shift),
		Mask: bitrow.Variants(bitrow.Extract(prepare(mask, opts.Threshold, opts.InvertMask)), opts.Shift),
	}

	return order.Apply(opts.Order, src, opts.VerticalShift)
}
