//go:build rp2040 || rp2350

package main

import (
	"machine"

	"tinygo.org/x/drivers"
)

// openBus configures the board's primary I2C at 400 kHz fast mode.
func openBus() (drivers.I2C, error) {
	i2c := machine.I2C0
	err := i2c.Configure(machine.I2CConfig{
		Frequency: 400_000,
		SDA:       machine.I2C0_SDA_PIN,
		SCL:       machine.I2C0_SCL_PIN,
	})
	if err != nil {
		return nil, err
	}
	return i2c, nil
}
