// Package types holds the payload structs shared across services and the
// message bus. Keeping them here avoids import cycles between the monitor
// service and anything observing its readings.
package types

// EnvReading is the compensated measurement the monitor publishes after
// every wake cycle (retained). Integer and fractional parts stay separate;
// nothing downstream needs floating point.
type EnvReading struct {
	TempInt   int16 `json:"temp_int"`   // °C
	TempFrac  int16 `json:"temp_frac"`  // hundredths, sign follows truncation
	PressInt  int16 `json:"press_int"`  // hPa, station offset applied
	PressFrac int16 `json:"press_frac"` // hundredths
	HumInt    int16 `json:"hum_int"`    // %RH
	HumFrac   int16 `json:"hum_frac"`   // hundredths
	TS        int64 `json:"ts_ms"`
}
