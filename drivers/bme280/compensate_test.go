package bme280

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Golden vectors computed with the reference integer formulas over the
// coefficient set from calib_test.go. Compensation is deterministic integer
// arithmetic, so every comparison is bit-for-bit; there are no tolerance
// windows.
func TestCompensateGoldenVectors(t *testing.T) {
	cal := testCal()

	tests := []struct {
		name string
		raw  RawSample
		want Reading
	}{
		{
			name: "datasheet room conditions",
			raw:  RawSample{Press: 415148, Temp: 519888, Hum: 30000},
			want: Reading{TempInt: 25, TempFrac: 8, PressInt: 806, PressFrac: 53, HumInt: 45, HumFrac: 11},
		},
		{
			name: "warm and drier",
			raw:  RawSample{Press: 395000, Temp: 530000, Hum: 28000},
			want: Reading{TempInt: 28, TempFrac: 25, PressInt: 846, PressFrac: 39, HumInt: 34, HumFrac: 45},
		},
		{
			name: "deep cold",
			raw:  RawSample{Press: 436000, Temp: 260000, Hum: 22000},
			want: Reading{TempInt: -57, TempFrac: -11, PressInt: 652, PressFrac: 77, HumInt: 1, HumFrac: 7},
		},
		{
			// Truncation toward zero keeps the sign only in the fraction
			// here; the render path re-derives it from either field.
			name: "negative near zero",
			raw:  RawSample{Press: 415148, Temp: 439256, Hum: 30000},
			want: Reading{TempInt: 0, TempFrac: -25, PressInt: 767, PressFrac: 82, HumInt: 42, HumFrac: 57},
		},
		{
			name: "just below freezing",
			raw:  RawSample{Press: 415148, Temp: 423464, Hum: 30000},
			want: Reading{TempInt: -5, TempFrac: -23, PressInt: 760, PressFrac: 30, HumInt: 42, HumFrac: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compensate(tt.raw, &cal)
			assert.Equal(t, tt.want, got)
		})
	}
}

// When the first pressure correction term is exactly zero the formula would
// divide by it; the defined fallback is a 0/0 reading, not an error.
func TestCompensatePressureZeroGuard(t *testing.T) {
	cal := testCal()
	cal.P1 = 0 // forces var1 == 0 regardless of the other coefficients

	got := Compensate(RawSample{Press: 415148, Temp: 519888, Hum: 30000}, &cal)

	assert.Equal(t, int16(0), got.PressInt)
	assert.Equal(t, int16(0), got.PressFrac)
	// Temperature and humidity are unaffected by the guard.
	assert.Equal(t, int16(25), got.TempInt)
	assert.Equal(t, int16(45), got.HumInt)
}

func TestCompensateHumidityClamp(t *testing.T) {
	cal := testCal()

	// Saturated ADC word drives the internal value past the ceiling; the
	// clamp lands exactly on the maximum before the hundredths conversion.
	got := Compensate(RawSample{Press: 415148, Temp: 519888, Hum: 0xFFFF}, &cal)
	require.Equal(t, int16(100), got.HumInt)
	require.Equal(t, int16(0), got.HumFrac)

	// An oversized H2 pushes the expression negative; the lower clamp
	// reports dry air, never a negative percentage.
	cal.H2 = 30000
	got = Compensate(RawSample{Press: 415148, Temp: 519888, Hum: 0xFFFF}, &cal)
	require.Equal(t, int16(0), got.HumInt)
	require.Equal(t, int16(0), got.HumFrac)
}

// Whatever the humidity word, the split output stays inside the displayable
// range and the fraction inside [0, 99].
func TestCompensateHumidityRange(t *testing.T) {
	cal := testCal()
	for adcH := uint32(0); adcH <= 0xFFFF; adcH += 1021 {
		got := Compensate(RawSample{Press: 415148, Temp: 519888, Hum: adcH}, &cal)
		require.GreaterOrEqual(t, got.HumInt, int16(0), "adcH=%d", adcH)
		require.LessOrEqual(t, got.HumInt, int16(102), "adcH=%d", adcH)
		require.GreaterOrEqual(t, got.HumFrac, int16(0), "adcH=%d", adcH)
		require.LessOrEqual(t, got.HumFrac, int16(99), "adcH=%d", adcH)
	}
}

func TestDecodeRaw(t *testing.T) {
	buf := []byte{0x65, 0x5A, 0xC0, 0x7E, 0xED, 0x00, 0x75, 0x30}
	got := decodeRaw(buf)
	assert.Equal(t, RawSample{Press: 415148, Temp: 519888, Hum: 30000}, got)
}
