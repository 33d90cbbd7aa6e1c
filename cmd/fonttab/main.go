// Command fonttab converts a visual 8x8 glyph table into an assembly font
// table for SSD1306-class displays, renders proof sheets of it and previews
// it on a real display.
//
// Usage:
//
//	fonttab asm -o fonttab.inc font_8x8.txt
//	fonttab specimen --png font.png --pdf font.pdf font_8x8.txt
//	fonttab upload --bus /dev/i2c-1 --text "Hello" font_8x8.txt
//
// Every flag can also be set through a FONTTAB_* environment variable, or in
// a .env file named by --env-file.
package main

import "os"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.WithError(err).Fatal("fonttab failed")
	}
}
