// Package monitor runs the measurement/readout cycle. One wake event means
// exactly one cycle: read the sensor, render the three readout lines, flush
// the panel, publish the reading on the bus, rearm the RTC alarm. The cycle
// is a single synchronous handler; nothing in it suspends, and the platform
// cannot deliver a second wake while one is running, so there is no locking
// on the service state. Bus transactions bound the handler's worst-case
// duration; any of them failing is fatal for the cycle.
package monitor

import (
	"context"

	"envmon-go/bus"
	"envmon-go/drivers/bme280"
	"envmon-go/drivers/ssd1306"
	"envmon-go/errcode"
	"envmon-go/rtc"
	"envmon-go/types"
	"envmon-go/x/conv"
	"envmon-go/x/timex"
)

const (
	topicConfig  = "config/monitor"
	topicReading = "reading/env"

	// Alarm rearm offset when the config does not say otherwise.
	defaultWakeMinutes = 10

	// Readout placement: one quantity per page, column 0.
	pageTemp     = 0
	pageHumidity = 1
	pagePressure = 2
)

// Unit suffixes appended verbatim after the fraction.
var (
	unitTemp     = string([]byte{ssd1306.Degree, 'C'})
	unitHumidity = "%R"
	unitPressure = "hPa"
)

// Sensor is the slice of the bme280 driver the cycle needs.
type Sensor interface {
	Read() (bme280.Reading, error)
}

// Display is the slice of the ssd1306 driver the cycle needs.
type Display interface {
	Clear()
	PutText(col, page int, s string)
	Flush() error
}

type Service struct {
	sensor  Sensor
	display Display
	clock   rtc.Clock

	wakeMinutes uint8
	line        [16]byte // readout format scratch, sized for the widest line
}

func New(sensor Sensor, display Display, clock rtc.Clock) *Service {
	return &Service{
		sensor:      sensor,
		display:     display,
		clock:       clock,
		wakeMinutes: defaultWakeMinutes,
	}
}

// Start runs the service loop: an immediate first cycle (so the panel shows
// data right after boot, not after the first alarm), then one cycle per wake
// event. Retained config is applied before the first cycle when present.
// The loop stops on context cancellation or on the first fatal error.
func (s *Service) Start(ctx context.Context, conn *bus.Connection, wake <-chan struct{}) error {
	cfgSub := conn.Subscribe(topicConfig)
	defer conn.Unsubscribe(cfgSub)

	select {
	case msg := <-cfgSub.Channel():
		s.applyConfig(msg.Payload)
	default:
	}

	if err := s.RunCycle(conn); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			println("Info: monitor stopping")
			return nil
		case msg := <-cfgSub.Channel():
			s.applyConfig(msg.Payload)
		case <-wake:
			if err := s.RunCycle(conn); err != nil {
				return err
			}
		}
	}
}

// RunCycle is the wake handler body. Exported so entry points without a
// loop (host tools, tests) can drive single cycles.
func (s *Service) RunCycle(conn *bus.Connection) error {
	reading, err := s.sensor.Read()
	if err != nil {
		return errcode.Wrap(errcode.BusError, "sensor read", err)
	}

	s.render(reading)
	if err := s.display.Flush(); err != nil {
		return errcode.Wrap(errcode.BusError, "display flush", err)
	}

	if conn != nil {
		conn.Publish(&bus.Message{
			Topic:    topicReading,
			Retained: true,
			Payload: types.EnvReading{
				TempInt:   reading.TempInt,
				TempFrac:  reading.TempFrac,
				PressInt:  reading.PressInt,
				PressFrac: reading.PressFrac,
				HumInt:    reading.HumInt,
				HumFrac:   reading.HumFrac,
				TS:        timex.NowMs(),
			},
		})
	}

	return s.reschedule()
}

// render draws the three readout lines into the framebuffer. Local memory
// only; the caller flushes.
func (s *Service) render(r bme280.Reading) {
	s.display.Clear()
	s.display.PutText(0, pageTemp, string(conv.FormatFixed(s.line[:], r.TempInt, r.TempFrac, unitTemp)))
	s.display.PutText(0, pageHumidity, string(conv.FormatFixed(s.line[:], r.HumInt, r.HumFrac, unitHumidity)))
	s.display.PutText(0, pagePressure, string(conv.FormatFixed(s.line[:], r.PressInt, r.PressFrac, unitPressure)))
}

// reschedule rearms the one-shot alarm wakeMinutes ahead of the current
// RTC time.
func (s *Service) reschedule() error {
	now, err := s.clock.Now()
	if err != nil {
		return errcode.Wrap(errcode.BusError, "clock read", err)
	}
	next := rtc.NextAlarm(now, s.wakeMinutes)
	if err := s.clock.Schedule(next); err != nil {
		return errcode.Wrap(errcode.BusError, "alarm program", err)
	}
	return nil
}

// applyConfig picks this service's fields out of a config payload
// (map[string]any from the config service's JSON decode). Unknown or
// malformed fields keep their current values.
func (s *Service) applyConfig(payload any) {
	m, ok := payload.(map[string]any)
	if !ok {
		return
	}
	if v, ok := numField(m, "wake_minutes"); ok && v > 0 && v < 255 {
		s.wakeMinutes = uint8(v)
		println("Info: monitor wake period set to", s.wakeMinutes, "minutes")
	}
}

func numField(m map[string]any, key string) (int64, bool) {
	switch v := m[key].(type) {
	case float64:
		return int64(v), true
	case int:
		return int64(v), true
	case int64:
		return v, true
	default:
		return 0, false
	}
}
