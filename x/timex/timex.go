// Package timex wraps the few host-clock operations the services need.
package timex

import "time"

// NowMs returns the current time as Unix milliseconds. Used to stamp bus
// payloads; readers only compare stamps, so the epoch does not matter on
// MCU targets where the clock starts at boot.
func NowMs() int64 { return time.Now().UnixMilli() }
