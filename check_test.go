package guard_test

import (
	"container/list"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/guard"
	"github.com/hupe1980/guard/testutil"
)

type IntegerT = int64

func TestPositiveOrDie(t *testing.T) {
	t.Run("IntegerT", func(t *testing.T) {
		const one, ten, zero IntegerT = 1, 10, 0

		assert.Equal(t, one, guard.PositiveOrDie(one))
		assert.Equal(t, ten, guard.PositiveOrDie(ten))

		for _, v := range []IntegerT{zero, -one, -ten, math.MinInt64} {
			testutil.RequireViolation(t, guard.NonPositiveValue, "Found non-positive.", func() {
				guard.PositiveOrDie(v)
			})
		}
	})

	t.Run("Double", func(t *testing.T) {
		const onePointTwo, tenPointThree = 1.2, 10.3

		assert.Equal(t, onePointTwo, guard.PositiveOrDie(onePointTwo))
		assert.Equal(t, tenPointThree, guard.PositiveOrDie(tenPointThree))
		assert.Equal(t, math.SmallestNonzeroFloat64, guard.PositiveOrDie(math.SmallestNonzeroFloat64))

		for _, v := range []float64{0, math.Copysign(0, -1), -onePointTwo, -tenPointThree, math.Inf(-1), math.NaN()} {
			testutil.RequireViolation(t, guard.NonPositiveValue, "Found non-positive.", func() {
				guard.PositiveOrDie(v)
			})
		}
	})

	t.Run("Unsigned", func(t *testing.T) {
		assert.Equal(t, uint8(1), guard.PositiveOrDie(uint8(1)))
		testutil.RequireViolation(t, guard.NonPositiveValue, "Found non-positive.", func() {
			guard.PositiveOrDie(uint(0))
		})
	})

	t.Run("Diagnostic", func(t *testing.T) {
		v := testutil.RequireViolation(t, guard.NonPositiveValue, "Found non-positive.", func() {
			guard.PositiveOrDie(int32(-7))
		})
		assert.Equal(t, "Found non-positive. value=-7 (int32)", v.Error())
	})
}

func TestNotNullOrDie(t *testing.T) {
	value := IntegerT(0)
	notNull := &value
	var null *IntegerT

	assert.Same(t, notNull, guard.NotNullOrDie(notNull))
	testutil.RequireViolation(t, guard.NullPointer, "Found null.", func() {
		guard.NotNullOrDie(null)
	})
}

func TestNonEmptyOrDie(t *testing.T) {
	t.Run("Slice", func(t *testing.T) {
		var empty []IntegerT
		nonEmpty := []IntegerT{0, 1, 2}

		got := guard.NonEmptyOrDie(nonEmpty)
		assert.Equal(t, []IntegerT{0, 1, 2}, got)
		assert.Same(t, &nonEmpty[0], &got[0])

		testutil.RequireViolation(t, guard.EmptyContainer, "Found empty.", func() {
			guard.NonEmptyOrDie(empty)
		})
		testutil.RequireViolation(t, guard.EmptyContainer, "Found empty.", func() {
			guard.NonEmptyOrDie([]IntegerT{})
		})
	})

	t.Run("NamedSlice", func(t *testing.T) {
		type program []string
		p := program{"add", "mul"}

		var got program = guard.NonEmptyOrDie(p)
		assert.Equal(t, p, got)
	})

	t.Run("Pointer", func(t *testing.T) {
		var empty []IntegerT
		nonEmpty := []IntegerT{0, 1, 2}

		assert.Same(t, &nonEmpty, guard.NonEmptyPtrOrDie(&nonEmpty))
		testutil.RequireViolation(t, guard.EmptyContainer, "Found empty.", func() {
			guard.NonEmptyPtrOrDie(&empty)
		})
		testutil.RequireViolation(t, guard.NullPointer, "Found null.", func() {
			guard.NonEmptyPtrOrDie[[]IntegerT](nil)
		})
	})

	t.Run("Map", func(t *testing.T) {
		m := map[string]int{"a": 1}

		got := guard.NonEmptyMapOrDie(m)
		got["b"] = 2
		assert.Equal(t, 2, m["b"])

		testutil.RequireViolation(t, guard.EmptyContainer, "Found empty.", func() {
			guard.NonEmptyMapOrDie(map[string]int{})
		})
	})

	t.Run("Sized", func(t *testing.T) {
		l := list.New()
		l.PushBack(1)

		assert.Same(t, l, guard.NonEmptySizedOrDie(l))
		testutil.RequireViolation(t, guard.EmptyContainer, "Found empty.", func() {
			guard.NonEmptySizedOrDie(list.New())
		})
	})
}

func TestSizeLessThanOrDie(t *testing.T) {
	t.Run("Slice", func(t *testing.T) {
		small := []IntegerT{0, 1}
		large := []IntegerT{0, 1, 2, 3, 4}

		assert.Equal(t, []IntegerT{0, 1}, guard.SizeLessThanOrDie(small, 3))
		testutil.RequireViolation(t, guard.ContainerTooLarge, "Too large.", func() {
			guard.SizeLessThanOrDie(large, 3)
		})
	})

	t.Run("Boundary", func(t *testing.T) {
		three := []IntegerT{0, 1, 2}

		assert.Len(t, guard.SizeLessThanOrDie(three, 4), 3)
		v := testutil.RequireViolation(t, guard.ContainerTooLarge, "Too large.", func() {
			guard.SizeLessThanOrDie(three, 3)
		})
		assert.Contains(t, v.Error(), "size=3 max=3")

		testutil.RequireViolation(t, guard.ContainerTooLarge, "Too large.", func() {
			guard.SizeLessThanOrDie([]IntegerT{}, 0)
		})
	})

	t.Run("Pointer", func(t *testing.T) {
		small := []IntegerT{0, 1}
		large := []IntegerT{0, 1, 2, 3, 4}

		assert.Same(t, &small, guard.SizeLessThanPtrOrDie(&small, 3))
		testutil.RequireViolation(t, guard.ContainerTooLarge, "Too large.", func() {
			guard.SizeLessThanPtrOrDie(&large, 3)
		})
		testutil.RequireViolation(t, guard.NullPointer, "Found null.", func() {
			guard.SizeLessThanPtrOrDie[[]IntegerT](nil, 3)
		})
	})

	t.Run("Map", func(t *testing.T) {
		m := map[int]bool{1: true, 2: true}

		assert.Len(t, guard.SizeLessThanMapOrDie(m, 3), 2)
		testutil.RequireViolation(t, guard.ContainerTooLarge, "Too large.", func() {
			guard.SizeLessThanMapOrDie(m, 2)
		})
	})

	t.Run("Sized", func(t *testing.T) {
		l := list.New()
		l.PushBack(1)
		l.PushBack(2)

		assert.Same(t, l, guard.SizeLessThanSizedOrDie(l, 3))
		testutil.RequireViolation(t, guard.ContainerTooLarge, "Too large.", func() {
			guard.SizeLessThanSizedOrDie(l, 1)
		})
	})
}
