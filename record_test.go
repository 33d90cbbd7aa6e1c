package fonttab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestFormat(t *testing.T) {
	cols := [GlyphWidth]byte{0x00, 0x3E, 0x7F, 0x49, 0x45, 0x7F, 0x3E, 0x00}
	r := Format('0', cols)

	assert.Equal(t, byte('0'), r.Code)
	assert.Equal(t, [RecordSize]byte{0x09, 0x40, 0x00, 0x3E, 0x7F, 0x49, 0x45, 0x7F, 0x3E, 0x00, 0x00}, r.Bytes)
	assert.Equal(t, cols, r.Columns())
	assert.Equal(t, []byte{0x40, 0x00, 0x3E, 0x7F, 0x49, 0x45, 0x7F, 0x3E, 0x00}, r.Payload())
	assert.Len(t, r.Payload(), 9, "control byte announces 9 bytes")
}

func TestRecordComment(t *testing.T) {
	tests := []struct {
		name string
		code byte
		cs   *charmap.Charmap
		want string
	}{
		{"printable", 'A', nil, "'A' 65 = 0x41"},
		{"space", 0x20, nil, "' ' 32 = 0x20"},
		{"control shows space", 0x07, nil, "' ' 7 = 0x07"},
		{"nul shows space", 0x00, nil, "' ' 0 = 0x00"},
		{"latin1 high", 0xE9, charmap.ISO8859_1, "'é' 233 = 0xE9"},
		{"cp437 block", 0xDB, charmap.CodePage437, "'█' 219 = 0xDB"},
		{"cp437 control stays space", 0x01, charmap.CodePage437, "' ' 1 = 0x01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Format(tt.code, [GlyphWidth]byte{})
			assert.Equal(t, tt.want, r.Comment(tt.cs))
		})
	}
}

func TestRecordLine(t *testing.T) {
	r := Format('!', [GlyphWidth]byte{0x00, 0x00, 0x06, 0x5F, 0x5F, 0x06, 0x00, 0x00})

	assert.Equal(t,
		"        db      $09,$40,$00,$00,$06,$5F,$5F,$06,$00,$00,$00 ; '!' 33 = 0x21",
		r.Line("db", "$", nil))
	assert.Equal(t,
		"        .byte      0x09,0x40,0x00,0x00,0x06,0x5F,0x5F,0x06,0x00,0x00,0x00 ; '!' 33 = 0x21",
		r.Line(".byte", "0x", nil))
}

func TestLookupCharset(t *testing.T) {
	cs, err := LookupCharset("CP437")
	require.NoError(t, err)
	assert.Equal(t, charmap.CodePage437, cs)

	cs, err = LookupCharset("latin1")
	require.NoError(t, err)
	assert.Equal(t, charmap.ISO8859_1, cs)

	_, err = LookupCharset("ebcdic")
	assert.ErrorContains(t, err, `unknown charset "ebcdic"`)
}
