// Package rtc models the wall-clock time kept by the hardware RTC and the
// wake-alarm rearming arithmetic.
package rtc

// Time is a wall-clock instant as the RTC stores it. No date: the alarm
// logic only ever looks at most ten minutes ahead.
type Time struct {
	Hours   uint8 // 0..23
	Minutes uint8 // 0..59
	Seconds uint8 // 0..59
}

// Clock is the platform clock/alarm collaborator. Schedule programs a
// one-shot alarm; the wake handler reprograms it every cycle, so no repeat
// flag is needed.
type Clock interface {
	Now() (Time, error)
	Schedule(Time) error
}

// NextAlarm returns the alarm time offsetMinutes after now. One second of
// margin is added first so the alarm always fires strictly after, never
// exactly at, a boundary coinciding with clock-read latency. Minute overflow
// carries into hours modulo 24; the date is deliberately not tracked. A
// wake scheduled across midnight still fires at the right wall-clock time,
// the RTC's date register is simply left alone.
func NextAlarm(now Time, offsetMinutes uint8) Time {
	sec := int(now.Seconds) + 1
	min := int(now.Minutes) + int(offsetMinutes) + sec/60
	sec %= 60
	hr := (int(now.Hours) + min/60) % 24
	min %= 60
	return Time{Hours: uint8(hr), Minutes: uint8(min), Seconds: uint8(sec)}
}
