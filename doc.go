// Package guard provides fail-fast invariant checks and exact numeric
// conversions for numerical code.
//
// Every check either returns its input unchanged or panics with a
// *Violation. Violations mark bugs in the caller, not bad input: the
// package never recovers them and never offers a way to downgrade them.
//
// # Quick Start
//
//	n := guard.PositiveOrDie(populationSize)
//	xs := guard.NonEmptyOrDie(features)
//	ops := guard.SizeLessThanOrDie(program, maxOps)
//	small := guard.SafeCast[int8](int64(42))
//	size := guard.Pow2[uint64](10)
//
// # Diagnostics
//
// Each failure carries a Kind and a message with a stable prefix:
//
//	NonPositiveValue    "Found non-positive."
//	NullPointer         "Found null."
//	EmptyContainer      "Found empty."
//	ContainerTooLarge   "Too large."
//	SignLossOverflow    "Check failed: safe cast overflow"
//	RangeOverflow       "Check failed: safe cast overflow"
//	PrecisionLoss       "Check failed: safe cast overflow"
//
// # Containers
//
// Slices are views, so a single slice-typed checker serves both mutable and
// read-only callers and hands back the same backing array. Pointers to
// slices, maps and any type with a Len method have their own entry points:
//
//	guard.NonEmptyOrDie(xs)        // []T in, same []T out
//	guard.NonEmptyPtrOrDie(&xs)    // *[]T in, same pointer out
//	guard.NonEmptyMapOrDie(m)      // map[K]V
//	guard.NonEmptySizedOrDie(list) // anything with Len() int
//
// # Seed Streams
//
// CustomHashMix advances a caller-owned 64-bit seed. SeedStream bundles the
// seed and the current position for convenience:
//
//	s := guard.NewSeedStream(20)
//	a, b := s.Next(), s.Next()
//
// # Concurrency
//
// All functions are pure and safe for concurrent use.
package guard
