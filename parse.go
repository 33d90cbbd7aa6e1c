package fonttab

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Decode reads a visual glyph table.
//
// Each glyph starts with a header line holding its code in brackets, as a
// decimal number, a 0x prefixed hex number or a quoted character mapped to a
// byte through cs (ISO 8859-1 when nil):
//
//	[65]
//	[0x41]
//	['A']
//
// The header is followed by the glyph rows, each enclosed in '|' so trailing
// spaces survive editing:
//
//	|   XX   |
//	|  X  X  |
//
// Blank lines and lines starting with '#' are ignored. Row counts and widths
// are not checked here; Encode reports malformed glyphs.
func Decode(r io.Reader, cs *charmap.Charmap) (*Table, error) {
	if cs == nil {
		cs = charmap.ISO8859_1
	}
	t := NewTable()
	var (
		cur    Glyph
		code   int
		open   bool
		header int
	)
	flush := func() error {
		if !open {
			return nil
		}
		if err := t.Add(code, cur); err != nil {
			msg := fmt.Sprintf("character code %d already defined", code)
			if errors.Is(err, ErrCodeRange) {
				msg = fmt.Sprintf("character code %d out of range 0-255", code)
			}
			return &SyntaxError{Line: header, Msg: msg, Err: errors.Unwrap(err)}
		}
		return nil
	}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		trimmed := strings.TrimSpace(text)

		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
			continue

		case strings.HasPrefix(trimmed, "["):
			if err := flush(); err != nil {
				return nil, err
			}
			c, err := parseCode(trimmed, cs)
			if err != nil {
				return nil, &SyntaxError{Line: line, Msg: err.Error()}
			}
			code, cur, open, header = c, Glyph{}, true, line

		case strings.HasPrefix(trimmed, "|"):
			if !open {
				return nil, &SyntaxError{Line: line, Msg: "glyph row before any [code] header"}
			}
			row := strings.TrimLeft(text, " \t")
			end := strings.LastIndexByte(row, '|')
			if end == 0 {
				return nil, &SyntaxError{Line: line, Msg: "unterminated glyph row"}
			}
			cur = append(cur, row[1:end])

		default:
			return nil, &SyntaxError{Line: line, Msg: fmt.Sprintf("unexpected %q", trimmed)}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &IOError{Op: "read", Path: "table", Err: err}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return t, nil
}

// parseCode parses a [code] header.
func parseCode(h string, cs *charmap.Charmap) (int, error) {
	if !strings.HasSuffix(h, "]") || len(h) < 3 {
		return 0, fmt.Errorf("malformed header %q", h)
	}
	s := h[1 : len(h)-1]

	if len(s) >= 3 && s[0] == '\'' && s[len(s)-1] == '\'' {
		lit := s[1 : len(s)-1]
		r, size := utf8.DecodeRuneInString(lit)
		if r == utf8.RuneError || size != len(lit) {
			return 0, fmt.Errorf("header %q must quote exactly one character", h)
		}
		b, ok := cs.EncodeRune(r)
		if !ok {
			return 0, fmt.Errorf("character %q has no code in %s", r, cs)
		}
		return int(b), nil
	}

	var (
		n   int64
		err error
	)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		n, err = strconv.ParseInt(s[2:], 16, 32)
	} else {
		n, err = strconv.ParseInt(s, 10, 32)
	}
	if err != nil {
		return 0, fmt.Errorf("bad character code %q", s)
	}
	return int(n), nil
}

// ReadFile reads the visual glyph table stored at path.
func ReadFile(path string, cs *charmap.Charmap) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()
	t, err := Decode(f, cs)
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		ioErr.Path = path
	}
	return t, err
}
