// Package fonttab turns a visual 8x8 glyph table into an assembly font table
// for SSD1306-class OLED controllers.
//
// Glyphs are drawn as text: every cell that is not a space lights a pixel.
// Each glyph is packed into 8 column bytes, left to right, with the top row
// in bit 0 and the bottom row in bit 7, which is the page layout of the
// controller RAM. The column bytes are wrapped in an 11 byte record that the
// display firmware forwards to the controller as is.
//
// # Record Layout
//
//	0x09        Write the next 9 bytes to I2C
//	0x40        Co=0 (continuous), D/C#=1 (next bytes are data)
//	c0 .. c7    Column bytes, leftmost first (LSB: top, MSB: bottom)
//	0x00        End of action
//
// Records are emitted in table order, so the firmware finds the record of a
// character at label + index*11.
//
// # Visual Table Format
//
//	# digits
//	[0x30]
//	|  XXXX  |
//	| XX  XX |
//	| XX XXX |
//	| XXX XX |
//	| XX  XX |
//	| XX  XX |
//	|  XXXX  |
//	|        |
//
// Codes can be written in decimal, as 0x prefixed hex or as a quoted
// character ('0'), which is mapped to a byte through the configured charset.
//
// # Basic Usage
//
//	t, err := fonttab.ReadFile("font_8x8.txt", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = fonttab.WriteFile(ctx, "fonttab.inc", t, &fonttab.Opts{
//		Label:  "fonttab",
//		Source: "font_8x8.txt",
//	})
//
// The listing is written atomically: a malformed glyph or an I/O failure
// leaves no output file behind.
//
// # Previewing on Hardware
//
// Encoded records can be sent to an SSD1306 over I2C:
//
//	dev, _ := fonttab.NewI2C(bus, fonttab.DefaultAddr, nil)
//	recs, _ := t.Records(ctx, 0)
//	dev.DrawText(0, 0, []byte("Hello"), fonttab.Font(recs))
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
package fonttab
