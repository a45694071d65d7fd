package guard

import (
	"errors"

	"fortio.org/safecast"

	"github.com/hupe1980/guard/internal/conv"
)

type (
	// Number is any integer or floating-point type.
	Number = safecast.Number
	// Integer is any signed or unsigned integer type.
	Integer = safecast.Integer
	// Float is float32 or float64.
	Float = safecast.Float
)

// overflowDiagnostic prefixes every SafeCast and Pow2 failure.
const overflowDiagnostic = "Check failed: safe cast overflow"

// SafeCast converts v to Dest and panics unless the result is numerically
// equal to v.
//
// Failures are checked in order: sign loss (SignLossOverflow), range
// (RangeOverflow), and for pairs involving a float, exact representability
// (PrecisionLoss). All of them carry the same overflow diagnostic, and the
// Violation unwraps to conv's sentinel errors.
//
// Dest comes first so that Src can be inferred:
//
//	small := guard.SafeCast[int8](int64(42))
func SafeCast[Dest, Src Number](v Src) Dest {
	out, err := conv.Cast[Dest](v)
	if err != nil {
		panic(violation(castKind(err), err, "%s: %v", overflowDiagnostic, err))
	}
	return out
}

func castKind(err error) Kind {
	switch {
	case errors.Is(err, conv.ErrSignLoss):
		return SignLossOverflow
	case errors.Is(err, conv.ErrPrecisionLoss):
		return PrecisionLoss
	default:
		return RangeOverflow
	}
}
