// Package image1bit provides a 1-bit image format in SSD1306 page layout.
//
// Pixels are stored in vertical bytes: each byte holds 8 vertically stacked
// pixels of one column, the top pixel in the least significant bit.
package image1bit

import (
	"image"
	"image/color"
)

// Bit represents a monochrome pixel, either lit or dark.
type Bit bool

const (
	Off Bit = false
	On  Bit = true
)

// RGBA converts the Bit to standard RGBA. On is white, Off is black.
func (c Bit) RGBA() (r, g, b, a uint32) {
	if c {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (c Bit) String() string {
	if c {
		return "On"
	}
	return "Off"
}

// toBit converts any color.Color to Bit.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	// Same luma weights as the grayscale conversion, thresholded at half scale
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// VerticalLSB is a 1-bit image stored in 8 pixel high pages.
// Each byte contains one column of a page: bit 0 = top pixel, bit 7 = bottom pixel.
type VerticalLSB struct {
	Pix    []byte          // Pixel data (8 pixels per byte, vertically)
	Stride int             // Bytes per page (equals the width)
	Rect   image.Rectangle // Image bounds
}

// NewVerticalLSB creates a new VerticalLSB image with the specified bounds.
// The height is rounded up to a whole number of pages.
func NewVerticalLSB(r image.Rectangle) *VerticalLSB {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &VerticalLSB{Rect: r}
	}
	pages := (h + 7) / 8
	return &VerticalLSB{
		Pix:    make([]byte, w*pages),
		Stride: w,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *VerticalLSB) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (p *VerticalLSB) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *VerticalLSB) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit of the pixel at (x, y).
func (p *VerticalLSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, mask := p.pixOffset(x, y)
	return Bit(p.Pix[offset]&mask != 0)
}

// Set sets the color of the pixel at (x, y).
func (p *VerticalLSB) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the Bit of the pixel at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (p *VerticalLSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.pixOffset(x, y)
	if b {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
}

// Page returns the bytes of page n (rows 8n to 8n+7), one per column.
// The returned slice aliases Pix.
func (p *VerticalLSB) Page(n int) []byte {
	start := n * p.Stride
	if n < 0 || start >= len(p.Pix) {
		return nil
	}
	return p.Pix[start : start+p.Stride]
}

// pixOffset returns the byte offset and bit mask for the pixel at (x, y).
// Memory layout: each byte contains 8 pixels vertically.
// Bit 0 = row 8n of the page, bit 7 = row 8n+7
func (p *VerticalLSB) pixOffset(x, y int) (offset int, mask byte) {
	dy := y - p.Rect.Min.Y
	offset = (dy/8)*p.Stride + (x - p.Rect.Min.X)
	mask = 1 << uint(dy&7)
	return
}
