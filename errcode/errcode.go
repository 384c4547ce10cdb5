// Package errcode defines the stable error identifiers the firmware
// publishes and logs. A Code is a string newtype: comparable,
// allocation-free, and an error in its own right.
package errcode

type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes. The set is deliberately small: every failure in this
// system is either fatal (sensor absent, bus dead) or not an error at all
// (clipped render coordinates, the pressure divide guard).
const (
	OK             Code = "ok"
	DeviceNotFound Code = "device_not_found"
	BusError       Code = "bus_error"
	Timeout        Code = "timeout"
	InvalidConfig  Code = "invalid_config"

	Error Code = "error" // generic fallback
)

// E keeps a code together with the operation that failed and its cause.
type E struct {
	C   Code
	Op  string
	Err error
}

func (e *E) Error() string {
	if e.Op != "" {
		return string(e.C) + ": " + e.Op
	}
	return string(e.C)
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Wrap attaches a code and operation name to err. Returns nil for nil err.
func Wrap(c Code, op string, err error) error {
	if err == nil {
		return nil
	}
	return &E{C: c, Op: op, Err: err}
}

// Of extracts the Code carried by err, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}
