package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/guard"
)

// RequireViolation runs fn and fails the test unless fn panics with a
// *guard.Violation of the given kind whose message contains substr.
// It returns the violation for further inspection.
func RequireViolation(t testing.TB, kind guard.Kind, substr string, fn func()) *guard.Violation {
	t.Helper()

	recovered := catch(fn)
	require.NotNil(t, recovered, "expected a %s violation", kind)

	v, ok := recovered.(*guard.Violation)
	require.Truef(t, ok, "panic value %v (%T) is not a *guard.Violation", recovered, recovered)
	require.Equal(t, kind, v.Kind, "violation: %s", v)
	require.Contains(t, v.Error(), substr)

	return v
}

// AssertVectorEq asserts that VectorEq(observed, expected) holds.
func AssertVectorEq[F guard.Float](t testing.TB, observed []F, expected []float64, msgAndArgs ...any) bool {
	t.Helper()

	if len(msgAndArgs) == 0 {
		msgAndArgs = []any{"vectors differ: observed %v, expected %v", observed, expected}
	}
	return assert.True(t, VectorEq(observed, expected), msgAndArgs...)
}

func catch(fn func()) (recovered any) {
	defer func() {
		recovered = recover()
	}()
	fn()
	return nil
}
