/*
Package order arranges packed sprite rows into the byte layout expected by the
target hardware.

Row order emits one line per scanline with the bytes left to right. Column
order emits one line per shift variant with the bytes grouped by column, so
that each eight pixel wide vertical strip of the sprite is contiguous; this is
what column-addressed displays and blitters expect. When vertical shifting is
requested each strip is surrounded by eight blank bytes so the sprite can be
drawn at any vertical offset by moving the start address.
*/
package order

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bodgit/image2bin/bitrow"
)

// Order is the layout of the generated byte table
type Order int

// Supported orders
const (
	Row Order = iota
	Column
	ZigZag
)

const paddingHeight = 8

var (
	// ErrUnknownOrder is returned for an order that isn't recognised
	ErrUnknownOrder = errors.New("order: unknown order")
	// ErrNotImplemented is returned for the zig-zag order
	ErrNotImplemented = errors.New("order: not implemented")
)

var names = map[Order]string{
	Row:    "row",
	Column: "column",
	ZigZag: "zigzag",
}

func (o Order) String() string {
	if s, ok := names[o]; ok {
		return s
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// Parse returns the Order named by s
func Parse(s string) (Order, error) {
	for o, name := range names {
		if name == s {
			return o, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}

// Line is one row of the output table
type Line struct {
	// Index is the position of the line in the table
	Index int
	// Padding marks the trailing blank line written in vertical shift mode
	Padding bool
	Bytes   []byte
}

// Source holds the shift variants of the image rows and, if present, the
// matching variants of the mask rows
type Source struct {
	Data [][]bitrow.Row
	Mask [][]bitrow.Row
}

func (src Source) mask(variant, row int) bitrow.Row {
	if src.Mask == nil {
		return nil
	}
	return src.Mask[variant][row]
}

// Rows returns one line per scanline of every variant, variants in order
func Rows(src Source) []Line {
	var lines []Line
	for v, rows := range src.Data {
		for i, r := range rows {
			lines = append(lines, Line{
				Index: len(lines),
				Bytes: bitrow.Pack(r, src.mask(v, i)),
			})
		}
	}
	return lines
}

func padding(masked bool) []byte {
	if masked {
		return make([]byte, paddingHeight<<1)
	}
	return make([]byte, paddingHeight)
}

func (src Source) columns(v int, vertical bool) []byte {
	rows := src.Data[v]

	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	columnCount := bitrow.Groups(width)

	// Two bytes per column when interleaving the mask
	step := 1
	if src.Mask != nil {
		step = 2
	}

	columns := make([][]byte, columnCount)
	for i, r := range rows {
		b := bitrow.Pack(r, src.mask(v, i))
		for j := range columns {
			columns[j] = append(columns[j], b[j*step:(j+1)*step]...)
		}
	}

	pad := padding(src.Mask != nil)

	var line []byte
	if vertical {
		line = append(line, pad...)
	}
	for j, c := range columns {
		line = append(line, c...)
		if vertical && j < columnCount-1 {
			line = append(line, pad...)
		}
	}
	return line
}

// Columns returns one line per variant with the bytes of each column of the
// sprite grouped together. If vertical is true the columns are separated by
// blank padding and a final padding line is appended.
func Columns(src Source, vertical bool) []Line {
	lines := make([]Line, len(src.Data))

	// Each variant is independent of the others
	var wg sync.WaitGroup
	wg.Add(len(src.Data))
	for v := range src.Data {
		go func(v int) {
			defer wg.Done()
			lines[v] = Line{
				Index: v,
				Bytes: src.columns(v, vertical),
			}
		}(v)
	}
	wg.Wait()

	if vertical {
		lines = append(lines, Line{
			Index:   len(lines),
			Padding: true,
			Bytes:   padding(src.Mask != nil),
		})
	}

	return lines
}

// ZigZagLines always fails, the traversal has not been defined
func ZigZagLines(src Source) ([]Line, error) {
	return nil, ErrNotImplemented
}

// Validate checks o can be applied
func Validate(o Order) error {
	switch o {
	case Row, Column:
		return nil
	case ZigZag:
		return ErrNotImplemented
	default:
		return fmt.Errorf("%w: %v", ErrUnknownOrder, o)
	}
}

// Apply arranges src according to o. vertical only applies to column order.
func Apply(o Order, src Source, vertical bool) ([]Line, error) {
	switch o {
	case Row:
		return Rows(src), nil
	case Column:
		return Columns(src, vertical), nil
	case ZigZag:
		return ZigZagLines(src)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownOrder, o)
	}
}
