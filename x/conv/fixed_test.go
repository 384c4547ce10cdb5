package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFixed(t *testing.T) {
	degC := string([]byte{0x7F}) + "C"
	cases := []struct {
		name     string
		integer  int16
		fraction int16
		unit     string
		want     string
	}{
		{"positive", 25, 8, degC, "25.08\x7fC"},
		{"negative both parts", -5, -25, degC, "-5.25\x7fC"},
		{"negative fraction only", 0, -25, degC, "-0.25\x7fC"},
		{"pressure", 806, 53, "hPa", "806.53hPa"},
		{"humidity", 45, 11, "%R", "45.11%R"},
		{"zero", 0, 0, "", "0.00"},
		{"single digit fraction pads", 7, 5, "", "7.05"},
		{"fraction clamped to two digits", 1, 123, "", "1.99"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf [16]byte
			got := FormatFixed(buf[:], tc.integer, tc.fraction, tc.unit)
			assert.Equal(t, tc.want, string(got))
		})
	}
}

func TestFormatFixedRespectsBound(t *testing.T) {
	for size := 0; size <= 10; size++ {
		buf := make([]byte, size)
		got := FormatFixed(buf, -123, 45, "hPa")
		assert.LessOrEqual(t, len(got), size, "size %d", size)
		full := "-123.45hPa"
		assert.Equal(t, full[:len(got)], string(got), "size %d", size)
	}
}
