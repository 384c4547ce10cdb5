// Package ssd1306 provides a driver for the SSD1306 128x64 monochrome OLED
// over I2C, page-addressed.
//
// The framebuffer lives in RAM and is organised as 8 pages of 8-pixel-tall
// rows: one byte is one page-column, bit N = pixel row N within the page.
// Mutations (PutGlyph, PutText, Clear) touch only the local buffer; Flush
// retransmits every page unconditionally. With a ten-minute duty cycle the
// wasted bus bandwidth is irrelevant and there is no dirty tracking to get
// wrong.
package ssd1306

import (
	"time"

	"tinygo.org/x/drivers"
)

// Device wraps an I2C connection to an SSD1306 panel and owns the
// framebuffer.
type Device struct {
	bus     drivers.I2C
	Address uint16

	buf [Width * Pages]byte

	// Scratch for command writes and the per-page data burst
	// (control byte + payload).
	w [Width + 1]byte
}

// New creates a new SSD1306 connection. The I2C bus must already be
// configured.
func New(bus drivers.I2C) *Device {
	return &Device{
		bus:     bus,
		Address: AddressDefault,
	}
}

// Configure issues the panel initialisation sequence, then clears and
// flushes so the display comes up blank rather than with RAM noise.
func (d *Device) Configure() error {
	time.Sleep(100 * time.Millisecond) // panel VDD settle after power-on

	seq := []byte{
		cmdDisplayOff,
		cmdMemoryMode, 0x00, // horizontal addressing
		cmdPageStartBase,
		cmdComScanDec,
		cmdColumnLowBase,
		cmdColumnHighBase,
		cmdStartLineBase,
		cmdContrast, 0x7F,
		cmdSegmentRemap,
		cmdNormalDisplay,
		cmdMultiplexRatio, 0x3F,
		cmdResumeFromRAM,
		cmdDisplayOffset, 0x00,
		cmdClockDivide, 0x80,
		cmdPrecharge, 0xF1,
		cmdComPinsConfig, 0x12,
		cmdVcomhDeselect, 0x40,
		cmdChargePump, 0x14,
		cmdDisplayOn,
	}
	for _, c := range seq {
		if err := d.command(c); err != nil {
			return err
		}
	}

	d.Clear()
	return d.Flush()
}

// Clear zeroes the whole framebuffer. Local only; call Flush to blank the
// panel.
func (d *Device) Clear() {
	for i := range d.buf {
		d.buf[i] = 0
	}
}

// PutGlyph draws one symbol at pixel column col within page row page.
// Out-of-range coordinates are a silent no-op: placement is caller-
// controlled and known valid in normal use. Each of the 6 cell bytes is
// bounds-checked independently, so a glyph straddling the right edge is
// clipped per column instead of dropped.
func (d *Device) PutGlyph(col, page int, sym byte) {
	if col < 0 || col >= Width || page < 0 || page >= Pages {
		return
	}
	g := lookupGlyph(sym)
	base := page*Width + col
	for i := 0; i < glyphWidth; i++ {
		if base+i < len(d.buf) {
			d.buf[base+i] = g[i]
		}
	}
	if base+glyphWidth < len(d.buf) {
		d.buf[base+glyphWidth] = 0 // spacing column
	}
}

// PutText draws a string left to right from pixel column col on page row
// page, advancing one 6-column cell per symbol. Drawing stops before a cell
// would start past Width-6; text never wraps onto the next page.
func (d *Device) PutText(col, page int, s string) {
	for i := 0; i < len(s) && col < Width-cellWidth; i++ {
		d.PutGlyph(col, page, s[i])
		col += cellWidth
	}
}

// Flush transmits the full framebuffer: for each page it programs the page
// and column-start registers, then sends the page's Width data bytes as one
// burst. Required after any mutation for the change to become visible.
func (d *Device) Flush() error {
	for page := 0; page < Pages; page++ {
		if err := d.command(cmdPageStartBase | byte(page)); err != nil {
			return err
		}
		if err := d.command(cmdColumnLowBase); err != nil {
			return err
		}
		if err := d.command(cmdColumnHighBase); err != nil {
			return err
		}
		d.w[0] = ctrlData
		copy(d.w[1:], d.buf[page*Width:(page+1)*Width])
		if err := d.bus.Tx(d.Address, d.w[:Width+1], nil); err != nil {
			return err
		}
	}
	return nil
}

// Buffer exposes the framebuffer bytes for tests and host-side rendering.
func (d *Device) Buffer() []byte { return d.buf[:] }

func (d *Device) command(c byte) error {
	d.w[0] = ctrlCommand
	d.w[1] = c
	return d.bus.Tx(d.Address, d.w[:2], nil)
}
