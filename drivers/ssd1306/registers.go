// Package ssd1306 command bytes and framebuffer geometry.
package ssd1306

const (
	// 7-bit I2C address.
	AddressDefault = 0x3C

	// Control bytes selecting the command or data register.
	ctrlCommand = 0x00
	ctrlData    = 0x40

	// --- Command bytes (SSD1306 datasheet, section 9) ---

	cmdDisplayOff      = 0xAE
	cmdDisplayOn       = 0xAF
	cmdMemoryMode      = 0x20 // + mode byte; 0x00 = horizontal addressing
	cmdPageStartBase   = 0xB0 // | page number
	cmdComScanDec      = 0xC8
	cmdColumnLowBase   = 0x00 // | low nibble of column start
	cmdColumnHighBase  = 0x10 // | high nibble of column start
	cmdStartLineBase   = 0x40
	cmdContrast        = 0x81 // + level byte
	cmdSegmentRemap    = 0xA1
	cmdNormalDisplay   = 0xA6
	cmdMultiplexRatio  = 0xA8 // + ratio byte
	cmdResumeFromRAM   = 0xA4
	cmdDisplayOffset   = 0xD3 // + offset byte
	cmdClockDivide     = 0xD5 // + divide byte
	cmdPrecharge       = 0xD9 // + period byte
	cmdComPinsConfig   = 0xDA // + config byte
	cmdVcomhDeselect   = 0xDB // + level byte
	cmdChargePump      = 0x8D // + 0x14 = enable

	// --- Panel geometry ---

	Width  = 128
	Height = 64
	Pages  = Height / 8

	// Glyph cell: 5 font columns plus 1 blank spacing column.
	glyphWidth = 5
	cellWidth  = glyphWidth + 1
)
