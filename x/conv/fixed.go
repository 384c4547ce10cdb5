package conv

import "envmon-go/x/mathx"

// FormatFixed renders an integer/hundredths reading pair as
// [-]<digits>.<two digits><unit> into dst and returns the used sub-slice.
//
// The sign is emitted when either part is negative: compensation splits a
// value with truncation toward zero, so -0.25 °C arrives as (0, -25) and the
// sign would otherwise be lost. No leading zeros on the integer part; the
// fraction is always exactly two digits; unit is appended verbatim.
//
// Writes never pass len(dst). When dst is too small the output is truncated
// at the bound, never overrun.
func FormatFixed(dst []byte, integer, fraction int16, unit string) []byte {
	n := 0
	put := func(b byte) {
		if n < len(dst) {
			dst[n] = b
			n++
		}
	}

	if integer < 0 || fraction < 0 {
		put('-')
	}
	var tmp [6]byte
	for _, b := range Itoa(tmp[:], int64(mathx.Abs(integer))) {
		put(b)
	}
	put('.')
	f := mathx.Clamp(mathx.Abs(fraction), 0, 99)
	put('0' + byte(f/10))
	put('0' + byte(f%10))
	for i := 0; i < len(unit); i++ {
		put(unit[i])
	}
	return dst[:n]
}
