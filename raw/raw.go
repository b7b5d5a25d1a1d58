/*
Package raw writes a sprite byte table as a flat binary file.

Lines are written back to back with no header or separators, so the file can
be included directly with an assembler's incbin directive or flashed to
memory. Any padding line is written like any other.
*/
package raw

import (
	"io"

	"github.com/bodgit/image2bin/order"
)

// Encode writes the bytes of every line to w in order
func Encode(w io.Writer, lines []order.Line) error {
	for _, l := range lines {
		if _, err := w.Write(l.Bytes); err != nil {
			return err
		}
	}
	return nil
}
