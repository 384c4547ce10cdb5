//go:build linux && !rp2040 && !rp2350

// Package smbusio adapts a Linux /dev/i2c adapter (via go-daq/smbus) to the
// tinygo drivers.I2C transaction shape, so the bme280 and ssd1306 drivers
// run unchanged on a Pi-class host.
package smbusio

import (
	"errors"

	"github.com/go-daq/smbus"
)

var errEmptyTx = errors.New("smbusio: empty transaction")

// SMBus block transfer payload limit.
const blockMax = 32

// Bus implements drivers.I2C on top of an open SMBus connection.
type Bus struct {
	conn *smbus.Conn
}

// Open opens /dev/i2c-<n>.
func Open(n int) (*Bus, error) {
	conn, err := smbus.OpenFile(n)
	if err != nil {
		return nil, err
	}
	return &Bus{conn: conn}, nil
}

func (b *Bus) Close() error { return b.conn.Close() }

// Tx performs a register-style transaction: the drivers in this repo always
// send a one-byte register address, optionally followed by one data byte,
// and read into r when it is non-empty. That maps directly onto the SMBus
// block operations.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	switch {
	case len(w) > 0 && len(r) > 0:
		return b.conn.ReadBlockData(uint8(addr), w[0], r)
	case len(w) > 1:
		// SMBus block writes carry at most 32 payload bytes; the display
		// data bursts are longer, so chunk under the same register byte.
		for p := w[1:]; len(p) > 0; {
			n := len(p)
			if n > blockMax {
				n = blockMax
			}
			if err := b.conn.WriteBlockData(uint8(addr), w[0], p[:n]); err != nil {
				return err
			}
			p = p[n:]
		}
		return nil
	case len(w) == 1:
		if err := b.conn.SetAddr(uint8(addr)); err != nil {
			return err
		}
		_, err := b.conn.WriteByte(w[0])
		return err
	default:
		return errEmptyTx
	}
}
