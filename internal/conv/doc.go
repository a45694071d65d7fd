// Package conv classifies numeric conversions.
//
// Cast converts between any two integer or floating-point types and reports
// why a conversion is inexact instead of silently wrapping or rounding:
//
//   - ErrSignLoss: a negative value headed for an unsigned type
//   - ErrOutOfRange: the value lies outside the destination's range
//   - ErrPrecisionLoss: the value is in range but not exactly representable
//
// Integer pairs are checked with a sign-and-round-trip comparison that never
// needs a wider intermediate type. Pairs involving a float go through
// fortio.org/safecast, which rejects any conversion whose round trip is not
// bit-for-bit equal to the input.
//
// The guard package turns these errors into fatal violations; use conv
// directly only where the caller wants to branch on the outcome.
package conv
