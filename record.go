package fonttab

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Record layout, as consumed by the display driver's command interpreter.
const (
	RecordSize = 11 // Bytes per record

	cmdWrite    = 0x09 // Write the next 9 bytes to I2C
	ctrlData    = 0x40 // Co=0 (continuous), D/C#=1 (next bytes are data)
	endOfAction = 0x00

	firstPrintable = 0x20
)

// Record is the command sequence drawing one glyph:
// 0x09, 0x40, 8 column bytes, 0x00.
type Record struct {
	Code  byte
	Bytes [RecordSize]byte
}

// Format builds the record for code from its column bytes.
func Format(code byte, cols [GlyphWidth]byte) Record {
	r := Record{Code: code}
	r.Bytes[0] = cmdWrite
	r.Bytes[1] = ctrlData
	copy(r.Bytes[2:], cols[:])
	r.Bytes[RecordSize-1] = endOfAction
	return r
}

// Columns returns the column bytes of r.
func (r Record) Columns() [GlyphWidth]byte {
	var cols [GlyphWidth]byte
	copy(cols[:], r.Bytes[2:2+GlyphWidth])
	return cols
}

// Payload returns the bytes of the I2C write announced by the first byte:
// the control byte followed by the column bytes.
func (r Record) Payload() []byte {
	return r.Bytes[1 : 1+int(r.Bytes[0])]
}

// DisplayChar returns the character shown for r in listings. Control codes
// below 0x20 show as a space; other codes are mapped through cs, which
// defaults to ISO 8859-1 when nil.
func (r Record) DisplayChar(cs *charmap.Charmap) rune {
	if r.Code < firstPrintable {
		return ' '
	}
	if cs == nil {
		cs = charmap.ISO8859_1
	}
	return cs.DecodeByte(r.Code)
}

// Comment returns the trailing listing comment, e.g. 'A' 65 = 0x41.
func (r Record) Comment(cs *charmap.Charmap) string {
	return fmt.Sprintf("'%c' %d = 0x%02X", r.DisplayChar(cs), r.Code, r.Code)
}

// Line renders r as one assembler data directive with its comment.
func (r Record) Line(directive, hexPrefix string, cs *charmap.Charmap) string {
	var b strings.Builder
	b.WriteString("        ")
	b.WriteString(directive)
	b.WriteString("      ")
	for i, v := range r.Bytes {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%s%02X", hexPrefix, v)
	}
	b.WriteString(" ; ")
	b.WriteString(r.Comment(cs))
	return b.String()
}

// Charsets maps the names accepted by LookupCharset to 8-bit code pages.
var Charsets = map[string]*charmap.Charmap{
	"iso8859-1":    charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
	"iso8859-15":   charmap.ISO8859_15,
	"cp437":        charmap.CodePage437,
	"cp850":        charmap.CodePage850,
	"windows-1252": charmap.Windows1252,
}

// LookupCharset returns the code page registered under name.
func LookupCharset(name string) (*charmap.Charmap, error) {
	if cs, ok := Charsets[strings.ToLower(name)]; ok {
		return cs, nil
	}
	names := make([]string, 0, len(Charsets))
	for n := range Charsets {
		names = append(names, n)
	}
	sort.Strings(names)
	return nil, fmt.Errorf("fonttab: unknown charset %q (known: %s)", name, strings.Join(names, ", "))
}
