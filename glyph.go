package fonttab

import (
	"image"
	"unicode/utf8"

	"github.com/flavioheleno/fonttab/image1bit"
)

const (
	GlyphWidth  = 8
	GlyphHeight = 8
)

// Glyph is the visual form of one character: GlyphHeight rows of GlyphWidth
// cells each, top row first. A cell lights its pixel unless it holds a space.
// Cells are counted in runes, so marks such as '█' are a single cell.
type Glyph []string

// Validate reports a *MalformedGlyphError unless g is exactly 8x8.
func (g Glyph) Validate() error {
	if len(g) != GlyphHeight {
		return &MalformedGlyphError{Rows: len(g), Row: -1}
	}
	for j, row := range g {
		if n := utf8.RuneCountInString(row); n != GlyphWidth {
			return &MalformedGlyphError{Rows: len(g), Row: j, Cells: n}
		}
	}
	return nil
}

// pixels returns the on/off grid indexed [row][column].
func (g Glyph) pixels() (px [GlyphHeight][GlyphWidth]bool, err error) {
	if err = g.Validate(); err != nil {
		return px, err
	}
	for j, row := range g {
		i := 0
		for _, r := range row {
			px[j][i] = r != ' '
			i++
		}
	}
	return px, nil
}

// Encode packs g into one byte per column, left to right. Bit j of a column
// byte is the pixel in row j, so the top row lands in the LSB and the bottom
// row in the MSB.
func Encode(g Glyph) ([GlyphWidth]byte, error) {
	var cols [GlyphWidth]byte
	px, err := g.pixels()
	if err != nil {
		return cols, err
	}
	for i := 0; i < GlyphWidth; i++ {
		var b byte
		for j := 0; j < GlyphHeight; j++ {
			if px[j][i] {
				b |= 1 << uint(j)
			}
		}
		cols[i] = b
	}
	return cols, nil
}

// DecodeColumns turns column bytes back into a glyph, drawing lit pixels
// with on.
func DecodeColumns(cols [GlyphWidth]byte, on rune) Glyph {
	g := make(Glyph, GlyphHeight)
	for j := range g {
		row := make([]rune, GlyphWidth)
		for i, b := range cols {
			row[i] = ' '
			if b&(1<<uint(j)) != 0 {
				row[i] = on
			}
		}
		g[j] = string(row)
	}
	return g
}

// Image returns g as an 8x8 page image. Its Pix holds the same bytes as
// Encode.
func (g Glyph) Image() (*image1bit.VerticalLSB, error) {
	px, err := g.pixels()
	if err != nil {
		return nil, err
	}
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, GlyphWidth, GlyphHeight))
	for j := range px {
		for i, on := range px[j] {
			img.SetBit(i, j, image1bit.Bit(on))
		}
	}
	return img, nil
}
