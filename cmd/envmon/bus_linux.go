//go:build linux && !rp2040 && !rp2350

package main

import (
	"envmon-go/drivers/smbusio"

	"tinygo.org/x/drivers"
)

// The Pi-class default adapter.
const i2cAdapter = 1

// openBus opens /dev/i2c-1 through the smbusio shim.
func openBus() (drivers.I2C, error) {
	return smbusio.Open(i2cAdapter)
}
