package main

import (
	"errors"
	"sync"

	"envmon-go/rtc"
)

// simBus emulates the board's I2C bus with both devices attached: a BME280
// at 0x76 serving registers from canned data, and an SSD1306 at 0x3C
// capturing page writes. It implements drivers.I2C.
type simBus struct {
	mu sync.Mutex

	// Sensor state.
	samples []RawWords
	cycle   int

	// Display state.
	page  int
	frame [8][128]byte
	col   int
}

// Calibration blocks matching the golden-vector coefficient set
// (T1=27504 T2=26435 T3=-1000, P1=36477 ... P9=6000, H1=75 H2=353 H3=0
// H4=340 H5=0 H6=30).
var (
	simCalib1 = [26]byte{
		0x70, 0x6B, 0x43, 0x67, 0x18, 0xFC, 0x7D, 0x8E, 0x43, 0xD6,
		0xD0, 0x0B, 0x27, 0x0B, 0x8C, 0x00, 0xF9, 0xFF, 0x8C, 0x3C,
		0xF8, 0xC6, 0x70, 0x17, 0x00, 0x4B,
	}
	simCalib2 = [7]byte{0x61, 0x01, 0x00, 0x15, 0x04, 0x00, 0x1E}
)

const (
	simSensorAddr  = 0x76
	simDisplayAddr = 0x3C
)

func newSimBus(samples []RawWords) *simBus {
	return &simBus{samples: samples}
}

// NextCycle moves the sensor on to the next canned sample.
func (s *simBus) NextCycle() {
	s.mu.Lock()
	s.cycle++
	s.mu.Unlock()
}

// Frame returns a copy of the captured display RAM.
func (s *simBus) Frame() [8][128]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame
}

func (s *simBus) Tx(addr uint16, w, r []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch addr {
	case simSensorAddr:
		return s.sensorTx(w, r)
	case simDisplayAddr:
		return s.displayTx(w)
	default:
		return errors.New("sim: no device at address")
	}
}

func (s *simBus) sensorTx(w, r []byte) error {
	if len(w) == 0 {
		return errors.New("sim: sensor read without register")
	}
	reg := w[0]
	if len(w) > 1 {
		return nil // control/reset writes accepted, not modelled
	}
	raw := s.samples[s.cycle%len(s.samples)]
	switch {
	case reg == 0xD0:
		r[0] = 0x60
	case reg == 0x88:
		copy(r, simCalib1[:])
	case reg == 0xE1:
		copy(r, simCalib2[:])
	case reg == 0xF7:
		burst := [8]byte{
			byte(raw.Press >> 12), byte(raw.Press >> 4), byte(raw.Press&0xF) << 4,
			byte(raw.Temp >> 12), byte(raw.Temp >> 4), byte(raw.Temp&0xF) << 4,
			byte(raw.Hum >> 8), byte(raw.Hum),
		}
		copy(r, burst[:])
	default:
		return errors.New("sim: unmodelled sensor register")
	}
	return nil
}

func (s *simBus) displayTx(w []byte) error {
	if len(w) == 0 {
		return errors.New("sim: empty display write")
	}
	switch w[0] {
	case 0x00: // command
		if len(w) < 2 {
			return errors.New("sim: short command write")
		}
		c := w[1]
		switch {
		case c >= 0xB0 && c <= 0xB7:
			s.page = int(c & 0x07)
			s.col = 0
		case c <= 0x0F: // column start, low nibble
			s.col = (s.col & 0xF0) | int(c)
		case c >= 0x10 && c <= 0x1F: // column start, high nibble
			s.col = (s.col & 0x0F) | int(c&0x0F)<<4
		}
		// Other configuration commands change nothing the sim observes.
	case 0x40: // data burst at the current page/column
		for _, b := range w[1:] {
			if s.col < 128 {
				s.frame[s.page][s.col] = b
				s.col++
			}
		}
	default:
		return errors.New("sim: unknown display control byte")
	}
	return nil
}

// simClock is the host stand-in for the hardware RTC: reading it returns
// the simulated wall time, and programming the alarm jumps the clock
// forward to the alarm instant, the way the sleeping device experiences it.
type simClock struct {
	mu        sync.Mutex
	t         rtc.Time
	scheduled []rtc.Time
}

func newSimClock(t rtc.Time) *simClock { return &simClock{t: t} }

func (c *simClock) Now() (rtc.Time, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t, nil
}

func (c *simClock) Schedule(at rtc.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scheduled = append(c.scheduled, at)
	c.t = at
	return nil
}

func (c *simClock) Scheduled() []rtc.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]rtc.Time, len(c.scheduled))
	copy(out, c.scheduled)
	return out
}
