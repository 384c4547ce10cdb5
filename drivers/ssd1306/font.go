package ssd1306

// Degree is the byte the font maps to the degree mark. The readout unit
// strings use it, e.g. string([]byte{Degree}) + "C".
const Degree = 0x7F

// glyph is one 5x7 symbol, column-major, bit 0 = top row.
type glyph [glyphWidth]byte

// placeholder is rendered for any byte the table does not cover.
var placeholder = glyph{0x02, 0x01, 0x51, 0x09, 0x06} // '?'

// font covers only the symbols the readout needs: digits, punctuation and
// the unit suffix letters. Adding a symbol is a table entry, not code.
var font = map[byte]glyph{
	' ': {0x00, 0x00, 0x00, 0x00, 0x00},
	'%': {0x23, 0x13, 0x08, 0x64, 0x62},
	'-': {0x08, 0x08, 0x08, 0x08, 0x08},
	'.': {0x00, 0x60, 0x60, 0x00, 0x00},
	'0': {0x3E, 0x51, 0x49, 0x45, 0x3E},
	'1': {0x00, 0x42, 0x7F, 0x40, 0x00},
	'2': {0x42, 0x61, 0x51, 0x49, 0x46},
	'3': {0x21, 0x41, 0x45, 0x4B, 0x31},
	'4': {0x18, 0x14, 0x12, 0x7F, 0x10},
	'5': {0x27, 0x45, 0x45, 0x45, 0x39},
	'6': {0x3C, 0x4A, 0x49, 0x49, 0x30},
	'7': {0x01, 0x71, 0x09, 0x05, 0x03},
	'8': {0x36, 0x49, 0x49, 0x49, 0x36},
	'9': {0x06, 0x49, 0x49, 0x29, 0x1E},
	'?': placeholder,
	'C': {0x3E, 0x41, 0x41, 0x41, 0x22},
	'P': {0x7F, 0x09, 0x09, 0x09, 0x06},
	'R': {0x7F, 0x09, 0x19, 0x29, 0x46},
	'a': {0x20, 0x54, 0x54, 0x54, 0x78},
	'h': {0x7F, 0x08, 0x04, 0x04, 0x78},

	Degree: {0x06, 0x09, 0x09, 0x06, 0x00},
}

// lookupGlyph substitutes the placeholder for unsupported symbols rather
// than dropping them, so a bad format string stays visible on the panel.
func lookupGlyph(sym byte) glyph {
	if g, ok := font[sym]; ok {
		return g
	}
	return placeholder
}
