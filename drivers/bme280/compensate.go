package bme280

import "envmon-go/x/mathx"

// Fixed-point compensation per the Bosch datasheet (section 4.2.3), integer
// revision. Shift amounts and operand widths are the datasheet's scaling
// contract; do not rearrange them.

const (
	// Station/sensor offset subtracted from the integer hPa part only.
	pressureOffsetHPa = 200

	// Humidity ceiling in the internal unit: 100 %RH in Q22 (100 << 22).
	humidityRawMax = 419430400
)

// RawSample holds the unsigned ADC words from one 0xF7 burst read.
// Pressure and temperature are 20-bit, humidity 16-bit.
type RawSample struct {
	Press uint32
	Temp  uint32
	Hum   uint32
}

// decodeRaw splits an 8-byte burst at the datasheet bit offsets. The bottom
// nibble of the third byte in each 20-bit field is shifted out.
func decodeRaw(buf []byte) RawSample {
	return RawSample{
		Press: uint32(buf[0])<<12 | uint32(buf[1])<<4 | uint32(buf[2])>>4,
		Temp:  uint32(buf[3])<<12 | uint32(buf[4])<<4 | uint32(buf[5])>>4,
		Hum:   uint32(buf[6])<<8 | uint32(buf[7]),
	}
}

// Reading is one compensated measurement, integer and fractional parts kept
// separate so the render path never needs floating point. Fractions are in
// hundredths and carry no sign of their own; the temperature sign lives in
// both fields (truncation toward zero, matching C integer division).
type Reading struct {
	TempInt, TempFrac   int16 // °C
	PressInt, PressFrac int16 // hPa, offset already subtracted
	HumInt, HumFrac     int16 // %RH
}

// Compensate converts one raw sample into physical values. Pure integer
// arithmetic, no error outcomes. The t_fine intermediate is computed from the
// temperature word first and consumed by the pressure and humidity stages; it
// never outlives the call.
func Compensate(raw RawSample, cal *Calibration) Reading {
	var r Reading

	// Temperature: two-stage polynomial -> t_fine, then °C x100.
	adcT := int32(raw.Temp)
	var1 := (((adcT >> 3) - (int32(cal.T1) << 1)) * int32(cal.T2)) >> 11
	var2 := (((((adcT >> 4) - int32(cal.T1)) * ((adcT >> 4) - int32(cal.T1))) >> 12) *
		int32(cal.T3)) >> 14
	tFine := var1 + var2
	t := (tFine*5 + 128) >> 8
	r.TempInt = int16(t / 100)
	r.TempFrac = int16(t % 100)

	// Pressure: 64-bit pipeline in Pa/256, with the var1 == 0 divide guard.
	pv1 := int64(tFine) - 128000
	pv2 := pv1 * pv1 * int64(cal.P6)
	pv2 += (pv1 * int64(cal.P5)) << 17
	pv2 += int64(cal.P4) << 35
	pv1 = ((pv1 * pv1 * int64(cal.P3)) >> 8) + ((pv1 * int64(cal.P2)) << 12)
	pv1 = ((int64(1) << 47) + pv1) * int64(cal.P1) >> 33
	if pv1 == 0 {
		r.PressInt = 0
		r.PressFrac = 0
	} else {
		p := int64(1048576) - int64(raw.Press)
		p = ((p << 31) - pv2) * 3125 / pv1
		pv1 = (int64(cal.P9) * (p >> 13) * (p >> 13)) >> 25
		pv2 = (int64(cal.P8) * p) >> 19
		p = ((p + pv1 + pv2) >> 8) + (int64(cal.P7) << 4)
		pa := int32(p / 256)
		r.PressInt = int16(pa/100) - pressureOffsetHPa
		r.PressFrac = int16(pa % 100)
	}

	// Humidity: nested int32 expression in 1024ths of %RH << 12, clamped to
	// [0, 100%] before the split into percent and hundredths.
	h := tFine - 76800
	h = (((int32(raw.Hum)<<14 - int32(cal.H4)<<20 - int32(cal.H5)*h) + 16384) >> 15) *
		(((((((h*int32(cal.H6))>>10)*(((h*int32(cal.H3))>>11)+32768))>>10)+2097152)*
			int32(cal.H2) + 8192) >> 14)
	h -= ((((h >> 15) * (h >> 15)) >> 7) * int32(cal.H1)) >> 4
	h = mathx.Clamp(h, 0, humidityRawMax)
	hum := h >> 12 // 1024ths of %RH
	r.HumInt = int16(hum / 1024)
	r.HumFrac = int16((hum % 1024) * 100 / 1024)

	return r
}
