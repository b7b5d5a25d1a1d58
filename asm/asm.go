/*
Package asm renders a sprite byte table as assembler source.

A short comment header describes how the table was generated, followed by one
db declaration per line of the table, each labelled with the sprite name:

	; File - ship.png
	; Order - row
	; Shifted - Horizontal: False | Vertical: False
	shipData0: db 24, 60
	shipData1: db 126, 255
*/
package asm

import (
	"path/filepath"
	"strings"

	"github.com/bodgit/image2bin/order"
)

// Header describes how the table was produced
type Header struct {
	File          string
	Mask          string
	Order         order.Order
	Shift         bool
	VerticalShift bool
}

// Label returns the label prefix for file, which is the base name without the
// extension and with any '-' removed
func Label(file string) string {
	base := filepath.Base(file)
	return strings.ReplaceAll(strings.TrimSuffix(base, filepath.Ext(base)), "-", "")
}
