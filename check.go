package guard

// Sized is implemented by containers that report their element count.
type Sized interface {
	Len() int
}

// PositiveOrDie returns v if v > 0 and panics with NonPositiveValue otherwise.
// NaN is not positive.
func PositiveOrDie[T Number](v T) T {
	if v > 0 {
		return v
	}
	panic(violation(NonPositiveValue, nil, "Found non-positive. value=%v (%T)", v, v))
}

// NotNullOrDie returns p if it is non-nil and panics with NullPointer otherwise.
func NotNullOrDie[T any](p *T) *T {
	if p != nil {
		return p
	}
	panic(violation(NullPointer, nil, "Found null. pointer=%T", p))
}

// NonEmptyOrDie returns s if it has at least one element.
func NonEmptyOrDie[S ~[]E, E any](s S) S {
	if len(s) > 0 {
		return s
	}
	panic(emptyContainer(s))
}

// NonEmptyPtrOrDie is the pointer form of NonEmptyOrDie. A nil p panics
// with NullPointer.
func NonEmptyPtrOrDie[S ~[]E, E any](p *S) *S {
	if len(*NotNullOrDie(p)) > 0 {
		return p
	}
	panic(emptyContainer(p))
}

// NonEmptyMapOrDie returns m if it has at least one entry.
func NonEmptyMapOrDie[M ~map[K]V, K comparable, V any](m M) M {
	if len(m) > 0 {
		return m
	}
	panic(emptyContainer(m))
}

// NonEmptySizedOrDie returns c if c.Len() > 0.
func NonEmptySizedOrDie[C Sized](c C) C {
	if c.Len() > 0 {
		return c
	}
	panic(emptyContainer(c))
}

// SizeLessThanOrDie returns s if len(s) < maxSize and panics with
// ContainerTooLarge otherwise.
func SizeLessThanOrDie[S ~[]E, E any](s S, maxSize int) S {
	if len(s) < maxSize {
		return s
	}
	panic(tooLarge(s, len(s), maxSize))
}

// SizeLessThanPtrOrDie is the pointer form of SizeLessThanOrDie. A nil p
// panics with NullPointer.
func SizeLessThanPtrOrDie[S ~[]E, E any](p *S, maxSize int) *S {
	if n := len(*NotNullOrDie(p)); n >= maxSize {
		panic(tooLarge(p, n, maxSize))
	}
	return p
}

// SizeLessThanMapOrDie returns m if len(m) < maxSize.
func SizeLessThanMapOrDie[M ~map[K]V, K comparable, V any](m M, maxSize int) M {
	if len(m) < maxSize {
		return m
	}
	panic(tooLarge(m, len(m), maxSize))
}

// SizeLessThanSizedOrDie returns c if c.Len() < maxSize.
func SizeLessThanSizedOrDie[C Sized](c C, maxSize int) C {
	if n := c.Len(); n >= maxSize {
		panic(tooLarge(c, n, maxSize))
	}
	return c
}

func emptyContainer(c any) *Violation {
	return violation(EmptyContainer, nil, "Found empty. container=%T", c)
}

func tooLarge(c any, size, maxSize int) *Violation {
	return violation(ContainerTooLarge, nil, "Too large. container=%T size=%d max=%d", c, size, maxSize)
}
