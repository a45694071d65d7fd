// Package distance provides the vector arithmetic behind tolerant comparisons.
//
// # Functions
//
//   - Dot: inner product
//   - SquaredL2 / L2: (squared) Euclidean distance between two vectors
//   - Norm: Euclidean length of one vector
//   - NormalizeInPlace / NormalizeCopy: scale to unit length
//
// Operands may mix float32 and float64. Two-operand functions require equal
// lengths and panic with *ErrDimensionMismatch otherwise.
//
// # Usage
//
//	d := distance.L2(observed, expected)
//	n := distance.Norm(v)
//	unit, ok := distance.NormalizeCopy(v)
package distance
