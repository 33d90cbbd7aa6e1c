// Package image1bit provides a 1-bit image format in the page layout used by
// SSD1306-class OLED controllers.
//
// The controller RAM is split into pages of 8 rows. Each byte covers one
// column of one page: bit 0 is the topmost pixel of the page and bit 7 the
// bottom one (vertical LSB).
//
// Memory layout example for an 8x8 image (a single page):
//
//	Column:   0     1     2  ...
//	Byte:     Pix[0] Pix[1] Pix[2]
//	Row 0  -> bit 0
//	Row 7  -> bit 7
//
// A pixel lit at (0, 0) gives Pix[0] == 0x01, one lit at (3, 7) gives
// Pix[3] == 0x80.
//
// This package provides:
//
// - Bit: a color type that is either on or off
// - BitModel: a color model converting standard Go colors to Bit
// - VerticalLSB: an image.Image implementation in page layout
//
// Example usage:
//
//	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 8, 8))
//	img.SetBit(3, 7, image1bit.On)
//	fmt.Printf("0x%02X\n", img.Pix[3]) // Output: 0x80
package image1bit
