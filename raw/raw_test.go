package raw

import (
	"bytes"
	"testing"

	"github.com/bodgit/image2bin/order"
	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	lines := []order.Line{
		{Index: 0, Bytes: []byte{0x01, 0x02}},
		{Index: 1, Bytes: []byte{0x03}},
		{Index: 2, Padding: true, Bytes: []byte{0x00, 0x00}},
	}

	b := new(bytes.Buffer)
	assert.NoError(t, Encode(b, lines))
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x00, 0x00}, b.Bytes())
}

func TestEncodeEmpty(t *testing.T) {
	b := new(bytes.Buffer)
	assert.NoError(t, Encode(b, nil))
	assert.Equal(t, 0, b.Len())
}
