package guard

import "github.com/hupe1980/guard/internal/conv"

// Pow2 returns 2^exp in the domain of T.
//
// Signed and unsigned domains differ by one bit: Pow2[int64](63) panics while
// Pow2[uint64](63) does not. Negative exponents and results that do not fit T
// panic with RangeOverflow, exactly like SafeCast.
func Pow2[T Integer](exp T) T {
	if exp < 0 {
		panic(violation(RangeOverflow, conv.ErrOutOfRange,
			"%s: %v: negative exponent %d", overflowDiagnostic, conv.ErrOutOfRange, exp))
	}
	if uint64(exp) >= 64 {
		panic(violation(RangeOverflow, conv.ErrOutOfRange,
			"%s: %v: 2^%d does not fit %s", overflowDiagnostic, conv.ErrOutOfRange, exp, conv.DomainOf[T]()))
	}
	return SafeCast[T](uint64(1) << uint64(exp))
}
