package main

import (
	"time"

	"envmon-go/rtc"
)

// timerClock backs the rtc.Clock collaborator with the runtime clock: Now
// projects the wall time onto the RTC's h/m/s shape, Schedule arms a
// one-shot timer for the next occurrence of the given wall-clock instant
// (wrapping past midnight). On MCU targets the runtime clock counts from
// boot, which is fine: the alarm arithmetic only ever deals in offsets.
type timerClock struct {
	wake chan struct{}
}

func newTimerClock() *timerClock {
	return &timerClock{wake: make(chan struct{}, 1)}
}

// Wake is the channel the monitor loop blocks on.
func (c *timerClock) Wake() <-chan struct{} { return c.wake }

func (c *timerClock) Now() (rtc.Time, error) {
	t := time.Now()
	return rtc.Time{
		Hours:   uint8(t.Hour()),
		Minutes: uint8(t.Minute()),
		Seconds: uint8(t.Second()),
	}, nil
}

func (c *timerClock) Schedule(at rtc.Time) error {
	now := time.Now()
	cur := now.Hour()*3600 + now.Minute()*60 + now.Second()
	tgt := int(at.Hours)*3600 + int(at.Minutes)*60 + int(at.Seconds)
	d := tgt - cur
	if d <= 0 {
		d += 24 * 3600
	}
	time.AfterFunc(time.Duration(d)*time.Second, func() {
		select {
		case c.wake <- struct{}{}:
		default:
		}
	})
	return nil
}
