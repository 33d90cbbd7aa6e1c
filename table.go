package fonttab

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Entry is one glyph of a Table with its character code.
type Entry struct {
	Code  byte
	Glyph Glyph
}

// Table is an ordered mapping from character code to glyph. Iteration order
// is insertion order, not code order.
type Table struct {
	entries []Entry
	index   map[byte]int
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{index: map[byte]int{}}
}

// Add appends g under code. The glyph grid is not checked here; malformed
// glyphs are reported when the table is encoded.
func (t *Table) Add(code int, g Glyph) error {
	if code < 0 || code > 0xFF {
		return fmt.Errorf("%w: %d", ErrCodeRange, code)
	}
	if t.index == nil {
		t.index = map[byte]int{}
	}
	c := byte(code)
	if _, ok := t.index[c]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateCode, code)
	}
	t.index[c] = len(t.entries)
	t.entries = append(t.entries, Entry{Code: c, Glyph: g})
	return nil
}

// Len returns the number of glyphs in t.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns the glyphs of t in table order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Lookup returns the glyph stored under code.
func (t *Table) Lookup(code byte) (Glyph, bool) {
	i, ok := t.index[code]
	if !ok {
		return nil, false
	}
	return t.entries[i].Glyph, true
}

// Records encodes and formats every glyph of t. Glyphs are encoded
// concurrently by up to workers goroutines (GOMAXPROCS when workers <= 0);
// the result is always in table order. The first malformed glyph cancels
// the remaining work and its error is returned.
func (t *Table) Records(ctx context.Context, workers int) ([]Record, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	recs := make([]Record, len(t.entries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, e := range t.entries {
		i, e := i, e
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cols, err := Encode(e.Glyph)
			if err != nil {
				return fmt.Errorf("fonttab: glyph %d (0x%02X): %w", e.Code, e.Code, err)
			}
			recs[i] = Format(e.Code, cols)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return recs, nil
}

// Font indexes records by character code.
func Font(recs []Record) map[byte]Record {
	m := make(map[byte]Record, len(recs))
	for _, r := range recs {
		m[r.Code] = r
	}
	return m
}
