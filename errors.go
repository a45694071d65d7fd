package guard

import (
	"errors"
	"fmt"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind classifies a contract violation.
type Kind int

const (
	_ Kind = iota // zero value is not a valid Kind

	// NonPositiveValue is reported by PositiveOrDie.
	NonPositiveValue
	// NullPointer is reported for nil pointers.
	NullPointer
	// EmptyContainer is reported by the NonEmpty checkers.
	EmptyContainer
	// ContainerTooLarge is reported by the SizeLessThan checkers.
	ContainerTooLarge
	// SignLossOverflow is reported when a negative value is cast to an unsigned type.
	SignLossOverflow
	// RangeOverflow is reported when a value does not fit the destination range.
	RangeOverflow
	// PrecisionLoss is reported when a float conversion is in range but inexact.
	PrecisionLoss
)

// IsOverflow reports whether k stems from an inexact numeric conversion.
func (k Kind) IsOverflow() bool {
	switch k {
	case SignLossOverflow, RangeOverflow, PrecisionLoss:
		return true
	default:
		return false
	}
}

// ErrViolation matches every *Violation via errors.Is.
var ErrViolation = errors.New("guard: contract violation")

// Violation is the panic value of every failed check.
//
// The underlying cause (if any) can be accessed via errors.Unwrap.
type Violation struct {
	Kind  Kind
	Msg   string
	cause error
}

func (v *Violation) Error() string {
	return v.Msg
}

func (v *Violation) Unwrap() error { return v.cause }

// Is makes errors.Is(v, ErrViolation) hold for any violation.
func (v *Violation) Is(target error) bool { return target == ErrViolation }

func violation(kind Kind, cause error, format string, args ...any) *Violation {
	return &Violation{
		Kind:  kind,
		Msg:   fmt.Sprintf(format, args...),
		cause: cause,
	}
}
