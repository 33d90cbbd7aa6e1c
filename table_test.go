package fonttab

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filled() Glyph {
	g := make(Glyph, GlyphHeight)
	for i := range g {
		g[i] = "XXXXXXXX"
	}
	return g
}

func TestTableAdd(t *testing.T) {
	tab := NewTable()
	require.NoError(t, tab.Add('B', blank()))
	require.NoError(t, tab.Add('A', filled()))

	err := tab.Add('B', filled())
	assert.ErrorIs(t, err, ErrDuplicateCode)

	for _, code := range []int{-1, 256, 1000} {
		err := tab.Add(code, blank())
		assert.ErrorIs(t, err, ErrCodeRange, "code %d", code)
	}

	assert.Equal(t, 2, tab.Len())
	entries := tab.Entries()
	assert.Equal(t, byte('B'), entries[0].Code)
	assert.Equal(t, byte('A'), entries[1].Code)

	g, ok := tab.Lookup('A')
	assert.True(t, ok)
	assert.Equal(t, filled(), g)
	_, ok = tab.Lookup('C')
	assert.False(t, ok)
}

func TestTableZeroValue(t *testing.T) {
	var tab Table
	require.NoError(t, tab.Add(0x20, blank()))
	assert.Equal(t, 1, tab.Len())
}

func TestTableRecordsOrder(t *testing.T) {
	tab := NewTable()
	// Descending codes: output must follow table order, not code order.
	codes := []int{'z', 'm', 'a', '!', 0x05}
	for i, c := range codes {
		g := blank()
		row := []byte(g[0])
		row[i] = 'X'
		g[0] = string(row)
		require.NoError(t, tab.Add(c, g))
	}

	for _, workers := range []int{0, 1, 3, 16} {
		recs, err := tab.Records(context.Background(), workers)
		require.NoError(t, err)
		require.Len(t, recs, len(codes))
		for i, r := range recs {
			assert.Equal(t, byte(codes[i]), r.Code, "workers=%d record %d", workers, i)
			assert.Equal(t, byte(0x01), r.Columns()[i], "workers=%d record %d", workers, i)
		}
	}
}

func TestTableRecordsMalformed(t *testing.T) {
	tab := NewTable()
	require.NoError(t, tab.Add('A', filled()))
	require.NoError(t, tab.Add('B', blank()[:7]))
	require.NoError(t, tab.Add('C', blank()))

	recs, err := tab.Records(context.Background(), 2)
	assert.Nil(t, recs)

	var mErr *MalformedGlyphError
	require.True(t, errors.As(err, &mErr), "error %v", err)
	assert.Equal(t, 7, mErr.Rows)
	assert.Contains(t, err.Error(), "glyph 66 (0x42)")
}

func TestTableRecordsCanceled(t *testing.T) {
	tab := NewTable()
	require.NoError(t, tab.Add('A', filled()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := tab.Records(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFont(t *testing.T) {
	recs := []Record{
		Format('A', [GlyphWidth]byte{1}),
		Format('B', [GlyphWidth]byte{2}),
	}
	f := Font(recs)
	assert.Len(t, f, 2)
	assert.Equal(t, byte(2), f['B'].Columns()[0])
}
