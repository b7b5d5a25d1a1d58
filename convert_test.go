package image2bin

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/bodgit/image2bin/bitrow"
	"github.com/bodgit/image2bin/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSprite returns a black and white image from rows of '0' and '1'
func newSprite(rows ...string) *image.Paletted {
	w := 0
	if len(rows) > 0 {
		w = len(rows[0])
	}
	m := image.NewPaletted(image.Rect(0, 0, w, len(rows)), monochrome)
	for y, r := range rows {
		for x, c := range r {
			if c == '1' {
				m.SetColorIndex(x, y, 1)
			}
		}
	}
	return m
}

func TestConvertRow(t *testing.T) {
	lines, err := Convert(newSprite("10101010"), nil, Options{Order: order.Row})
	require.NoError(t, err)
	assert.Equal(t, []order.Line{{Index: 0, Bytes: []byte{170}}}, lines)
}

func TestConvertRowShift(t *testing.T) {
	lines, err := Convert(newSprite("10101010"), nil, Options{Order: order.Row, Shift: true})
	require.NoError(t, err)
	require.Len(t, lines, bitrow.ShiftCount)
	assert.Equal(t, []byte{85, 0}, lines[1].Bytes)
}

func TestConvertRowCount(t *testing.T) {
	m := newSprite("1100", "0110", "0011")

	lines, err := Convert(m, nil, Options{Order: order.Row})
	require.NoError(t, err)
	assert.Len(t, lines, 3)

	lines, err = Convert(m, nil, Options{Order: order.Row, Shift: true, VerticalShift: true})
	require.NoError(t, err)
	assert.Len(t, lines, 24)
}

func TestConvertColumnCount(t *testing.T) {
	m := newSprite("1100", "0110", "0011")

	tests := []struct {
		shift, vertical bool
		want            int
	}{
		{false, false, 1},
		{false, true, 2},
		{true, false, 8},
		{true, true, 9},
	}

	for _, tt := range tests {
		lines, err := Convert(m, nil, Options{Order: order.Column, Shift: tt.shift, VerticalShift: tt.vertical})
		require.NoError(t, err)
		assert.Len(t, lines, tt.want)
	}
}

func TestConvertMask(t *testing.T) {
	m := newSprite("10101010", "01010101")
	mask := newSprite("11110000", "00001111")

	plain, err := Convert(m, nil, Options{Order: order.Row})
	require.NoError(t, err)

	lines, err := Convert(m, mask, Options{Order: order.Row})
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, []byte{0xf0, 0xaa}, lines[0].Bytes)
	assert.Equal(t, []byte{0x0f, 0x55}, lines[1].Bytes)
	for i := range lines {
		assert.Len(t, lines[i].Bytes, 2*len(plain[i].Bytes))
	}
}

func TestConvertSizeMismatch(t *testing.T) {
	m := image.NewPaletted(image.Rect(0, 0, 4, 4), monochrome)
	mask := image.NewPaletted(image.Rect(0, 0, 4, 3), monochrome)

	lines, err := Convert(m, mask, Options{Order: order.Row})
	assert.Nil(t, lines)
	assert.Equal(t, ErrSizeMismatch, err)
}

func TestConvertOffsetMask(t *testing.T) {
	m := newSprite("1000")
	mask := image.NewPaletted(image.Rect(10, 10, 14, 11), monochrome)
	mask.SetColorIndex(10, 10, 1)

	lines, err := Convert(m, mask, Options{Order: order.Row})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80, 0x80}, lines[0].Bytes)
}

func TestConvertOrderErrors(t *testing.T) {
	m := newSprite("1")

	_, err := Convert(m, nil, Options{Order: order.ZigZag})
	assert.True(t, errors.Is(err, order.ErrNotImplemented))

	_, err = Convert(m, nil, Options{Order: order.Order(7)})
	assert.True(t, errors.Is(err, order.ErrUnknownOrder))

	// Order is checked before the mask
	_, err = Convert(m, newSprite("11"), Options{Order: order.ZigZag})
	assert.True(t, errors.Is(err, order.ErrNotImplemented))
}

func TestConvertThreshold(t *testing.T) {
	m := image.NewGray(image.Rect(0, 0, 4, 1))
	for x, y := range []uint8{0x00, 0x40, 0xa0, 0xc0} {
		m.SetGray(x, 0, color.Gray{Y: y})
	}

	lines, err := Convert(m, nil, Options{Order: order.Row, Threshold: 0x80})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x30}, lines[0].Bytes)
}

func TestConvertInvert(t *testing.T) {
	m := newSprite("10100000")
	mask := newSprite("11000000")

	lines, err := Convert(m, mask, Options{Order: order.Row, Invert: true})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xc0, 0x5f}, lines[0].Bytes)

	lines, err = Convert(m, mask, Options{Order: order.Row, InvertMask: true})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x3f, 0xa0}, lines[0].Bytes)
}

func TestConvertInvertLightFirstPalette(t *testing.T) {
	// Index 0 is the lighter color
	m := image.NewPaletted(image.Rect(0, 0, 8, 1), color.Palette{color.White, color.Black})
	m.SetColorIndex(0, 0, 1)

	plain, err := Convert(m, nil, Options{Order: order.Row})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80}, plain[0].Bytes)

	inverted, err := Convert(m, nil, Options{Order: order.Row, Invert: true})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x7f}, inverted[0].Bytes)
}

func TestConvertReduce(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 16, 1))
	for x := 0; x < 16; x++ {
		switch {
		case x < 6:
			m.Set(x, 0, color.Black)
		case x < 10:
			m.Set(x, 0, color.RGBA{0x20, 0x00, 0x00, 0xff})
		default:
			m.Set(x, 0, color.White)
		}
	}

	lines, err := Convert(m, nil, Options{Order: order.Row})
	require.NoError(t, err)
	require.Len(t, lines, 1)

	row := bitrow.Unpack(lines[0].Bytes, 16)
	for x := 0; x < 6; x++ {
		assert.False(t, row[x], "pixel %d", x)
	}
	for x := 10; x < 16; x++ {
		assert.True(t, row[x], "pixel %d", x)
	}
}

func TestPrepareLargePalette(t *testing.T) {
	// White is index 0 in a palette larger than two colors
	p := color.Palette{color.White, color.Black, color.RGBA{0xff, 0, 0, 0xff}}
	m := image.NewPaletted(image.Rect(0, 0, 2, 1), p)
	m.SetColorIndex(1, 0, 1)

	assert.Equal(t, []bitrow.Row{{true, false}}, bitrow.Extract(prepare(m, 0, false)))
}
