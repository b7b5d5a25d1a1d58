package image2bin

import (
	"errors"
	"fmt"
	"io"

	"github.com/bodgit/image2bin/asm"
	"github.com/bodgit/image2bin/order"
	"github.com/bodgit/image2bin/raw"
)

// Format is the output format of a listing
type Format int

// Supported formats
const (
	Assembler Format = iota
	Binary
)

// ErrUnknownFormat is returned for a format that isn't recognised
var ErrUnknownFormat = errors.New("image2bin: unknown format")

var formats = []struct {
	name, ext string
}{
	Assembler: {"asm", ".asm"},
	Binary:    {"bin", ".bin"},
}

func (f Format) String() string {
	if f >= 0 && int(f) < len(formats) {
		return formats[f].name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Ext returns the file extension used for the format
func (f Format) Ext() string {
	if f >= 0 && int(f) < len(formats) {
		return formats[f].ext
	}
	return ""
}

// ParseFormat returns the Format named by s
func ParseFormat(s string) (Format, error) {
	for i, f := range formats {
		if f.name == s {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func (f Format) encode(w io.Writer, h asm.Header, lines []order.Line) error {
	switch f {
	case Assembler:
		return asm.Encode(w, h, lines)
	case Binary:
		return raw.Encode(w, lines)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}
