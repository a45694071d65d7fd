// Package testutil provides testing utilities for numeric code guarded by
// the guard package.
//
// This package is intended for use in tests and benchmarks only.
//
// # Tolerant Vector Comparison
//
//	ok := testutil.VectorEq(observed, []float64{1, 2, 3})
//
//	c := testutil.NewComparator(testutil.WithTolerance(1e-3))
//	ok = c.VectorEq(observed, expected)
//
// A size mismatch is logged and reported as false; it never panics.
//
// # Violations
//
//	testutil.RequireViolation(t, guard.EmptyContainer, "Found empty.", func() {
//	    guard.NonEmptyOrDie([]int{})
//	})
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	vec := rng.UniformVector(128) // uniform [0, 1)
//	child := rng.Fork()           // independent, reproducible stream
package testutil
