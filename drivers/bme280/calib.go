package bme280

// Calibration holds the factory-programmed compensation coefficients.
// It is decoded once after the chip-ID check and never mutated afterwards.
type Calibration struct {
	T1     uint16
	T2, T3 int16

	P1                             uint16
	P2, P3, P4, P5, P6, P7, P8, P9 int16

	H1, H3     uint8
	H2, H4, H5 int16
	H6         int8
}

// decodeCalibration parses the 0x88 (26-byte) and 0xE1 (7-byte) blocks.
// All 16-bit words are little-endian except H4/H5, which share the nibbles
// of c2[4]: H4 takes its low nibble, H5 its high nibble. Swapping the two
// nibbles corrupts only humidity, so the layout gets its own test.
func decodeCalibration(c1, c2 []byte) Calibration {
	u16 := func(b []byte) uint16 { return uint16(b[1])<<8 | uint16(b[0]) }
	s16 := func(b []byte) int16 { return int16(u16(b)) }

	return Calibration{
		T1: u16(c1[0:]),
		T2: s16(c1[2:]),
		T3: s16(c1[4:]),

		P1: u16(c1[6:]),
		P2: s16(c1[8:]),
		P3: s16(c1[10:]),
		P4: s16(c1[12:]),
		P5: s16(c1[14:]),
		P6: s16(c1[16:]),
		P7: s16(c1[18:]),
		P8: s16(c1[20:]),
		P9: s16(c1[22:]),

		H1: c1[25],
		H2: s16(c2[0:]),
		H3: c2[2],
		H4: int16(c2[3])<<4 | int16(c2[4]&0x0F),
		H5: int16(c2[5])<<4 | int16(c2[4]>>4),
		H6: int8(c2[6]),
	}
}
