//go:build !linux && !rp2040 && !rp2350

package main

import (
	"errors"

	"tinygo.org/x/drivers"
)

// openBus has no backend on this platform; use cmd/hostsim for development.
func openBus() (drivers.I2C, error) {
	return nil, errors.New("no I2C backend on this platform")
}
