package fonttab

import (
	"errors"
	"fmt"
)

var (
	// ErrCodeRange is returned when a character code does not fit in a byte.
	ErrCodeRange = errors.New("fonttab: character code out of range 0-255")
	// ErrDuplicateCode is returned when a table already holds a glyph for a code.
	ErrDuplicateCode = errors.New("fonttab: duplicate character code")
)

// MalformedGlyphError reports a glyph grid that is not exactly 8x8.
type MalformedGlyphError struct {
	Rows  int // Number of rows found
	Row   int // Offending row index, -1 when the row count is wrong
	Cells int // Number of cells in the offending row
}

func (e *MalformedGlyphError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("fonttab: malformed glyph: %d rows, want %d", e.Rows, GlyphHeight)
	}
	return fmt.Sprintf("fonttab: malformed glyph: row %d has %d cells, want %d", e.Row, e.Cells, GlyphWidth)
}

// IOError reports an unreadable input or unwritable output.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("fonttab: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// SyntaxError reports a visual table line that could not be parsed.
type SyntaxError struct {
	Line int
	Msg  string
	Err  error // Underlying sentinel, if any
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("fonttab: line %d: %s", e.Line, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
