package fonttab

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
)

// I2C control bytes preceding every transaction.
const (
	ctrlCommand = 0x00 // Co=0, D/C#=0: the following bytes are commands
)

// DefaultAddr is the usual I2C address of SSD1306 modules (SA0 low).
const DefaultAddr = 0x3C

// DevOpts is the configuration of the preview display.
type DevOpts struct {
	// Display dimensions in pixels
	W int // Width (default: 128, must be ≤128)
	H int // Height (default: 64, must be 32 or 64)

	Rotated bool // 180° rotation
}

// Dev is an SSD1306 display driven over I2C, used to preview encoded glyph
// records on real hardware.
type Dev struct {
	c conn.Conn

	w, h   int
	halted bool
}

// NewI2C returns a Dev talking to the SSD1306 at addr on bus b and sends the
// initialization sequence. The panel is left on and cleared.
//
// opts can be nil to use defaults (128x64 display).
func NewI2C(b i2c.Bus, addr uint16, opts *DevOpts) (*Dev, error) {
	if opts == nil {
		opts = &DevOpts{W: 128, H: 64}
	}
	if opts.W <= 0 || opts.W > 128 {
		return nil, errors.New("fonttab: width must be between 1 and 128")
	}
	if opts.H != 32 && opts.H != 64 {
		return nil, errors.New("fonttab: height must be 32 or 64")
	}
	d := &Dev{
		c: &i2c.Dev{Bus: b, Addr: addr},
		w: opts.W,
		h: opts.H,
	}
	if err := d.sendCommands(initCommands(opts)); err != nil {
		return nil, fmt.Errorf("fonttab: init: %w", err)
	}
	if err := d.Clear(); err != nil {
		return nil, err
	}
	if err := d.sendCommand(0xAF); err != nil { // Display ON
		return nil, err
	}
	return d, nil
}

// initCommands returns the power-up command sequence for opts.
func initCommands(opts *DevOpts) []byte {
	comPins := byte(0x12) // Alternative COM pin configuration
	if opts.H == 32 {
		comPins = 0x02
	}
	segRemap, comScan := byte(0xA1), byte(0xC8)
	if opts.Rotated {
		segRemap, comScan = 0xA0, 0xC0
	}
	return []byte{
		0xAE,       // Display OFF
		0xD5, 0x80, // Clock divider and oscillator frequency
		0xA8, byte(opts.H - 1), // MUX ratio
		0xD3, 0x00, // Display offset
		0x40,       // Start line 0
		0x8D, 0x14, // Charge pump on
		0x20, 0x00, // Horizontal addressing mode
		segRemap,
		comScan,
		0xDA, comPins,
		0x81, 0xCF, // Contrast
		0xD9, 0xF1, // Pre-charge period
		0xDB, 0x40, // VCOMH deselect level
		0xA4, // Resume to RAM content
		0xA6, // Normal display mode
	}
}

// sendCommand sends a single command byte.
func (d *Dev) sendCommand(cmd byte) error {
	return d.sendCommands([]byte{cmd})
}

// sendCommands sends command bytes in one transaction.
func (d *Dev) sendCommands(cmds []byte) error {
	return d.c.Tx(append([]byte{ctrlCommand}, cmds...), nil)
}

// sendData sends a transaction already carrying its control byte.
func (d *Dev) sendData(payload []byte) error {
	return d.c.Tx(payload, nil)
}

// window restricts RAM writes to columns [col, col+w) of page.
func (d *Dev) window(col, page, w int) error {
	return d.sendCommands([]byte{
		0x21, byte(col), byte(col + w - 1), // Column address
		0x22, byte(page), byte(page), // Page address
	})
}

// Clear blanks the display RAM.
func (d *Dev) Clear() error {
	if d.halted {
		return errors.New("fonttab: halted")
	}
	zeros := make([]byte, d.w)
	for page := 0; page < d.h/8; page++ {
		if err := d.window(0, page, d.w); err != nil {
			return err
		}
		if err := d.sendData(append([]byte{ctrlData}, zeros...)); err != nil {
			return err
		}
	}
	return nil
}

// WriteRecord draws r with its left column at col on page (8 pixel rows).
// The record payload is sent as is: the control byte then the column bytes.
func (d *Dev) WriteRecord(col, page int, r Record) error {
	if d.halted {
		return errors.New("fonttab: halted")
	}
	if col < 0 || col+GlyphWidth > d.w || page < 0 || page >= d.h/8 {
		return errors.New("fonttab: glyph position out of range")
	}
	if err := d.window(col, page, GlyphWidth); err != nil {
		return err
	}
	return d.sendData(r.Payload())
}

// DrawText draws text starting at col on page using the records of font,
// wrapping to the next page at the right edge.
func (d *Dev) DrawText(col, page int, text []byte, font map[byte]Record) error {
	for _, c := range text {
		r, ok := font[c]
		if !ok {
			return fmt.Errorf("fonttab: no glyph for 0x%02X", c)
		}
		if col+GlyphWidth > d.w {
			col, page = 0, page+1
		}
		if err := d.WriteRecord(col, page, r); err != nil {
			return err
		}
		col += GlyphWidth
	}
	return nil
}

// Halt powers off the display.
// After calling Halt, the display will not respond to further commands
// until the device is re-initialized.
func (d *Dev) Halt() error {
	d.halted = true
	return d.sendCommand(0xAE) // Display OFF
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("fonttab.Dev{%dx%d}", d.w, d.h)
}
