// Package conv holds allocation-free numeric-to-text helpers. Nothing here
// depends on fmt or strconv, so it links small on MCU targets.
package conv

// Itoa writes the base-10 representation of n into buf and returns the used
// tail slice. buf must be large enough for the digits plus a sign; when it
// is not, the most significant digits are dropped.
func Itoa(buf []byte, n int64) []byte {
	if len(buf) == 0 {
		return buf
	}
	u := uint64(n)
	if n < 0 {
		u = uint64(-n)
	}
	i := len(buf)
	for {
		i--
		buf[i] = byte('0' + u%10)
		u /= 10
		if u == 0 || i == 0 {
			break
		}
	}
	if n < 0 && i > 0 {
		i--
		buf[i] = '-'
	}
	return buf[i:]
}

// U32Hex writes n as 8 uppercase hex digits, zero-padded, no 0x prefix.
// Returns buf[:0] if buf is shorter than 8 bytes.
func U32Hex(buf []byte, n uint32) []byte {
	const digits = "0123456789ABCDEF"
	if len(buf) < 8 {
		return buf[:0]
	}
	for i := 7; i >= 0; i-- {
		buf[i] = digits[n&0xF]
		n >>= 4
	}
	return buf[:8]
}
