package bme280

import "testing"

// Blocks encoding T1=27504 T2=26435 T3=-1000, P1=36477 P2=-10685 P3=3024
// P4=2855 P5=140 P6=-7 P7=15500 P8=-14600 P9=6000, H1=75 H2=353 H3=0
// H4=340 H5=0 H6=30.
var (
	testCalib1 = [26]byte{
		0x70, 0x6B, 0x43, 0x67, 0x18, 0xFC, 0x7D, 0x8E, 0x43, 0xD6,
		0xD0, 0x0B, 0x27, 0x0B, 0x8C, 0x00, 0xF9, 0xFF, 0x8C, 0x3C,
		0xF8, 0xC6, 0x70, 0x17, 0x00, 0x4B,
	}
	testCalib2 = [7]byte{0x61, 0x01, 0x00, 0x15, 0x04, 0x00, 0x1E}
)

func testCal() Calibration {
	return decodeCalibration(testCalib1[:], testCalib2[:])
}

func TestDecodeCalibration(t *testing.T) {
	cal := testCal()

	if cal.T1 != 27504 || cal.T2 != 26435 || cal.T3 != -1000 {
		t.Fatalf("temperature coefficients: %+v", cal)
	}
	if cal.P1 != 36477 || cal.P2 != -10685 || cal.P3 != 3024 || cal.P4 != 2855 ||
		cal.P5 != 140 || cal.P6 != -7 || cal.P7 != 15500 || cal.P8 != -14600 || cal.P9 != 6000 {
		t.Fatalf("pressure coefficients: %+v", cal)
	}
	if cal.H1 != 75 || cal.H2 != 353 || cal.H3 != 0 || cal.H6 != 30 {
		t.Fatalf("humidity coefficients: %+v", cal)
	}
}

// H4 and H5 share the nibbles of byte 4 of the second block. Getting the
// order wrong corrupts only humidity and nothing else, so the packing gets
// its own test with asymmetric nibbles.
func TestDecodeCalibrationNibblePacking(t *testing.T) {
	c2 := testCalib2
	c2[3] = 0xAB // H4 high byte
	c2[4] = 0x5C // high nibble 5 -> H5, low nibble C -> H4
	c2[5] = 0xDE // H5 high byte

	cal := decodeCalibration(testCalib1[:], c2[:])

	if got, want := cal.H4, int16(0xAB<<4|0x0C); got != want {
		t.Fatalf("H4 = %d, want %d", got, want)
	}
	if got, want := cal.H5, int16(0xDE<<4|0x05); got != want {
		t.Fatalf("H5 = %d, want %d", got, want)
	}
}

func TestDecodeCalibrationSignedCoefficients(t *testing.T) {
	cal := testCal()

	// T3, P2, P6, P8 are negative in the reference set; a u16 decode by
	// mistake would flip them to large positives.
	if cal.T3 >= 0 || cal.P2 >= 0 || cal.P6 >= 0 || cal.P8 >= 0 {
		t.Fatalf("signed coefficients decoded unsigned: %+v", cal)
	}

	// H6 is a plain signed byte.
	c2 := testCalib2
	c2[6] = 0xF0
	if got := decodeCalibration(testCalib1[:], c2[:]).H6; got != -16 {
		t.Fatalf("H6 = %d, want -16", got)
	}
}
