package specimen

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flavioheleno/fonttab"
)

func table(t *testing.T) *fonttab.Table {
	t.Helper()
	tab := fonttab.NewTable()
	require.NoError(t, tab.Add('A', fonttab.Glyph{
		"  XX    ",
		" XXXX   ",
		"XX  XX  ",
		"XX  XX  ",
		"XXXXXX  ",
		"XX  XX  ",
		"XX  XX  ",
		"        ",
	}))
	require.NoError(t, tab.Add('.', fonttab.Glyph{
		"        ", "        ", "        ", "        ",
		"        ", "        ", "   XX   ", "   XX   ",
	}))
	require.NoError(t, tab.Add(' ', fonttab.Glyph{
		"        ", "        ", "        ", "        ",
		"        ", "        ", "        ", "        ",
	}))
	return tab
}

func TestSheet(t *testing.T) {
	sheet, err := Sheet(context.Background(), table(t), &Opts{Columns: 2})
	require.NoError(t, err)

	// 2 columns, 2 rows of 9px cells plus the outer gutter
	assert.Equal(t, 19, sheet.Bounds().Dx())
	assert.Equal(t, 19, sheet.Bounds().Dy())

	// 'A' top row: pixels 2 and 3 lit, offset by the gutter
	assert.Equal(t, uint8(0x00), sheet.GrayAt(1+1, 1).Y)
	assert.Equal(t, uint8(0xFF), sheet.GrayAt(1+2, 1).Y)
	assert.Equal(t, uint8(0xFF), sheet.GrayAt(1+3, 1).Y)

	// '.' is the second cell of the first row
	assert.Equal(t, uint8(0xFF), sheet.GrayAt(10+3, 1+7).Y)
	assert.Equal(t, uint8(0x00), sheet.GrayAt(10+3, 1+5).Y)

	// Gutters stay dark
	for x := 0; x < sheet.Bounds().Dx(); x++ {
		assert.Equal(t, uint8(0), sheet.GrayAt(x, 0).Y)
		assert.Equal(t, uint8(0), sheet.GrayAt(x, 9).Y)
	}
}

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PNG(context.Background(), &buf, table(t), &Opts{Columns: 16, Scale: 3}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, (16*9+1)*3, img.Bounds().Dx())
	assert.Equal(t, (1*9+1)*3, img.Bounds().Dy())

	// Lit pixel (1+2, 1) of the sheet covers a 3x3 block
	r, _, _, _ := img.At(3*3+2, 3+2).RGBA()
	assert.Equal(t, uint32(0xFFFF), r)
	r, _, _, _ = img.At(3*3-1, 3).RGBA()
	assert.Equal(t, uint32(0), r)
}

func TestPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PDF(context.Background(), &buf, table(t), nil))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))

	buf.Reset()
	require.NoError(t, PDF(context.Background(), &buf, fonttab.NewTable(), nil))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestMalformed(t *testing.T) {
	tab := table(t)
	require.NoError(t, tab.Add('x', fonttab.Glyph{"X"}))

	var buf bytes.Buffer
	var mErr *fonttab.MalformedGlyphError

	err := PNG(context.Background(), &buf, tab, nil)
	assert.True(t, errors.As(err, &mErr))
	err = PDF(context.Background(), &buf, tab, nil)
	assert.True(t, errors.As(err, &mErr))
	assert.Zero(t, buf.Len())
}
