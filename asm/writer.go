package asm

import (
	"bufio"
	"io"
	"strconv"

	"github.com/bodgit/image2bin/order"
)

type encoder struct {
	w     *bufio.Writer
	label string
}

func boolString(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func (e *encoder) header(h Header) {
	e.w.WriteString("; File - " + h.File + "\n")
	if h.Mask != "" {
		e.w.WriteString("; Mask file - " + h.Mask + "\n")
	}
	e.w.WriteString("; Order - " + h.Order.String() + "\n")
	e.w.WriteString("; Shifted - Horizontal: " + boolString(h.Shift) + " | Vertical: " + boolString(h.VerticalShift) + "\n")
}

func (e *encoder) line(l order.Line) {
	e.w.WriteString(e.label)
	if l.Padding {
		e.w.WriteString("Padding")
	} else {
		e.w.WriteString("Data" + strconv.Itoa(l.Index))
	}
	e.w.WriteString(": db ")
	for i, b := range l.Bytes {
		if i > 0 {
			e.w.WriteString(", ")
		}
		e.w.WriteString(strconv.Itoa(int(b)))
	}
	e.w.WriteByte('\n')
}

// Encode writes the header h followed by lines to w
func Encode(w io.Writer, h Header, lines []order.Line) error {
	e := encoder{
		w:     bufio.NewWriter(w),
		label: Label(h.File),
	}

	e.header(h)
	for _, l := range lines {
		e.line(l)
	}

	// Any earlier write error is sticky and reported here
	return e.w.Flush()
}
