/*
Package bitrow turns a 1-bit image into rows of bits and packs those rows into
bytes.

Each scanline of the image becomes a Row of booleans, left to right. Rows are
packed most significant bit first, eight pixels to a byte, with the last byte
zero padded on the right. Rows can also be pre-shifted into eight variants so
a sprite can be drawn at any sub-byte horizontal position without shifting at
runtime; each variant is eight bits wider than the source to absorb the
overflow.
*/
package bitrow

import (
	"image"
	"image/color"
)

const (
	// ShiftCount is the number of variants produced when shifting
	ShiftCount = 8
	groupBits  = 8
)

// Row is a single scanline, one bool per pixel
type Row []bool

// Extract returns one Row per scanline of m, top to bottom. A pixel is set if
// its palette index is non-zero or, for non-paletted images, if its luminance
// is non-zero. A nil image returns nil.
func Extract(m image.Image) []Row {
	if m == nil {
		return nil
	}

	b := m.Bounds()
	pm, _ := m.(*image.Paletted)

	rows := make([]Row, 0, b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := make(Row, 0, b.Dx())
		for x := b.Min.X; x < b.Max.X; x++ {
			if pm != nil {
				row = append(row, pm.ColorIndexAt(x, y) != 0)
				continue
			}
			row = append(row, color.Gray16Model.Convert(m.At(x, y)).(color.Gray16).Y != 0)
		}
		rows = append(rows, row)
	}

	return rows
}

// Shift returns a copy of r extended by eight clear bits with the content
// moved s positions to the right
func Shift(r Row, s int) Row {
	if s < 0 || s >= ShiftCount {
		panic("bitrow: shift out of range")
	}
	shifted := make(Row, len(r)+groupBits)
	copy(shifted[s:], r)
	return shifted
}

// Variants returns ShiftCount variants of rows, variant s being every row
// shifted by s. If shift is false the single variant returned is rows itself
// without any padding.
func Variants(rows []Row, shift bool) [][]Row {
	if rows == nil {
		return nil
	}

	if !shift {
		return [][]Row{rows}
	}

	variants := make([][]Row, ShiftCount)
	for s := range variants {
		variants[s] = make([]Row, len(rows))
		for i, r := range rows {
			variants[s][i] = Shift(r, s)
		}
	}
	return variants
}

// Groups returns the number of bytes needed to hold width bits
func Groups(width int) int {
	return (width + groupBits - 1) / groupBits
}

// Pack packs r into bytes, most significant bit first. If mask is not nil
// then each byte is preceded by the byte of mask covering the same pixels.
func Pack(r, mask Row) []byte {
	if mask != nil && len(mask) != len(r) {
		panic("bitrow: mask row length mismatch")
	}

	n := Groups(len(r))
	if mask != nil {
		n <<= 1
	}

	b := make([]byte, 0, n)
	for i := 0; i < len(r); i += groupBits {
		if mask != nil {
			b = append(b, group(mask[i:]))
		}
		b = append(b, group(r[i:]))
	}
	return b
}

// group packs up to the first eight bits of r
func group(r Row) (b byte) {
	for i := 0; i < groupBits; i++ {
		b <<= 1
		if i < len(r) && r[i] {
			b |= 1
		}
	}
	return
}

// Unpack expands b back into a Row of width bits, dropping any padding
func Unpack(b []byte, width int) Row {
	r := make(Row, width)
	for i := range r {
		r[i] = b[i/groupBits]>>(groupBits-1-i%groupBits)&1 != 0
	}
	return r
}
