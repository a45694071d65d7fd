package conv

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"fortio.org/safecast"
)

var (
	// ErrSignLoss is returned when a negative value is converted to an unsigned type.
	ErrSignLoss = errors.New("sign loss")

	// ErrOutOfRange is returned when a value does not fit the destination range.
	ErrOutOfRange = safecast.ErrOutOfRange

	// ErrPrecisionLoss is returned when a value is in range but cannot be
	// represented exactly (fractional part, or too many significant bits).
	ErrPrecisionLoss = errors.New("precision loss")
)

// Domain describes the numeric class of a Go type.
type Domain struct {
	Name     string
	Float    bool
	Unsigned bool
	Bits     int
}

// DomainOf returns the domain of T.
func DomainOf[T safecast.Number]() Domain {
	t := reflect.TypeFor[T]()
	d := Domain{Name: t.String(), Bits: t.Bits()}

	switch t.Kind() { //nolint:exhaustive // T is constrained to numbers
	case reflect.Float32, reflect.Float64:
		d.Float = true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		d.Unsigned = true
	}

	return d
}

// Contains reports whether f lies inside the value range of d.
// NaN belongs to the float domains only.
func (d Domain) Contains(f float64) bool {
	if math.IsNaN(f) {
		return d.Float
	}

	switch {
	case d.Float && d.Bits == 32:
		return math.IsInf(f, 0) || math.Abs(f) <= math.MaxFloat32
	case d.Float:
		return true
	case d.Unsigned:
		return f >= 0 && f < math.Ldexp(1, d.Bits)
	default:
		bound := math.Ldexp(1, d.Bits-1)
		return f >= -bound && f < bound
	}
}

func (d Domain) String() string {
	return d.Name
}

// Cast converts v to Dest and returns an error if the result is not
// numerically equal to v. Checks run in order: sign loss, range, precision.
func Cast[Dest, Src safecast.Number](v Src) (Dest, error) {
	src, dst := DomainOf[Src](), DomainOf[Dest]()

	if v < 0 && dst.Unsigned {
		return 0, fmt.Errorf("%w: %v (%s) cannot be converted to %s", ErrSignLoss, v, src, dst)
	}

	if !src.Float && !dst.Float {
		out := Dest(v)
		if (v < 0) != (out < 0) || Src(out) != v {
			return 0, fmt.Errorf("%w: %v (%s) cannot be converted to %s", ErrOutOfRange, v, src, dst)
		}
		return out, nil
	}

	// Out-of-range float to int conversions are implementation-defined (amd64
	// wraps, arm64 saturates), so the range has to be settled first.
	if !dst.Contains(float64(v)) {
		return 0, fmt.Errorf("%w: %v (%s) cannot be converted to %s", ErrOutOfRange, v, src, dst)
	}

	out, err := safecast.Convert[Dest](v)
	if err != nil {
		return 0, fmt.Errorf("%w: %v (%s) cannot be represented exactly as %s", ErrPrecisionLoss, v, src, dst)
	}

	return out, nil
}
