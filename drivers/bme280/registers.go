// Package bme280 register addresses, command bytes and fixed block layouts
// for the Bosch BME280 environmental sensor.
package bme280

const (
	// 7-bit I2C address (SDO low). 0x77 when SDO is pulled high.
	AddressDefault = 0x76

	// chip_id register value for a genuine BME280.
	chipID = 0x60

	// --- Register sub-addresses ---

	regCalib1   = 0x88 // 26-byte block: T1..T3, P1..P9, reserved, H1
	regChipID   = 0xD0 // R
	regReset    = 0xE0 // W, accepts cmdReset only
	regCalib2   = 0xE1 // 7-byte block: H2..H6 (H4/H5 nibble-packed)
	regCtrlHum  = 0xF2 // R/W, osrs_h
	regCtrlMeas = 0xF4 // R/W, osrs_t | osrs_p | mode
	regConfig   = 0xF5 // R/W, t_sb | filter
	regData     = 0xF7 // 8-byte burst: press[3] temp[3] hum[2], MSB first

	// --- Command / configuration bytes ---

	cmdReset = 0xB6

	ctrlHumOversample4 = 0x03 // osrs_h = 011 (x4)
	configFilter16     = 0x10 // filter = 100 (coeff 16), t_sb = 000 (0.5 ms)
	ctrlMeasNormal     = 0x57 // osrs_t = 010 (x2), osrs_p = 101 (x16), mode = 11

	// --- Block sizes ---

	calib1Len = 26
	calib2Len = 7
	dataLen   = 8
)
