package distance

import (
	"fmt"
	"math"
	"slices"

	"fortio.org/safecast"
)

// ErrDimensionMismatch indicates two operands of different lengths.
// It is the panic value of the two-operand functions.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func sameLength(a, b int) {
	if a != b {
		panic(&ErrDimensionMismatch{Expected: a, Actual: b})
	}
}

// Dot calculates the dot product of two vectors.
// Panics with *ErrDimensionMismatch if the lengths differ.
func Dot[A, B safecast.Float](a []A, b []B) float64 {
	sameLength(len(a), len(b))

	var ret float64
	for i := range a {
		ret += float64(a[i]) * float64(b[i])
	}

	return ret
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
// Panics with *ErrDimensionMismatch if the lengths differ.
func SquaredL2[A, B safecast.Float](a []A, b []B) float64 {
	sameLength(len(a), len(b))

	var distance float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		distance += d * d
	}

	return distance
}

// L2 calculates the Euclidean distance, i.e. the norm of a - b.
func L2[A, B safecast.Float](a []A, b []B) float64 {
	return math.Sqrt(SquaredL2(a, b))
}

// Norm returns the Euclidean norm of v.
func Norm[F safecast.Float](v []F) float64 {
	return math.Sqrt(Dot(v, v))
}

// NormalizeInPlace L2-normalizes v in place.
// Returns false if v has zero L2 norm.
func NormalizeInPlace[F safecast.Float](v []F) bool {
	if len(v) == 0 {
		return false
	}
	norm := Norm(v)
	if norm == 0 {
		return false
	}
	inv := 1 / norm
	for i := range v {
		v[i] = F(float64(v[i]) * inv)
	}
	return true
}

// NormalizeCopy returns a normalized copy of src.
// Returns false if src has zero L2 norm.
func NormalizeCopy[F safecast.Float](src []F) ([]F, bool) {
	dst := slices.Clone(src)
	if !NormalizeInPlace(dst) {
		return nil, false
	}
	return dst, true
}
