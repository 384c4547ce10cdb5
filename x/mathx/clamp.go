// Package mathx holds tiny generic integer helpers shared by the drivers
// and the readout formatter.
package mathx

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]. Callers pass ordered bounds.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}

// Abs returns the magnitude of a signed integer.
func Abs[T ~int | ~int8 | ~int16 | ~int32 | ~int64](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if b < a {
		return b
	}
	return a
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if b > a {
		return b
	}
	return a
}
