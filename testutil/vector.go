package testutil

import (
	"context"
	"sync"

	"github.com/hupe1980/guard"
	"github.com/hupe1980/guard/distance"
)

// VectorEqTolerance is the default bound on the Euclidean distance between
// vectors that VectorEq considers equal.
const VectorEqTolerance = 1e-6

type options struct {
	tolerance float64
	logger    *guard.Logger
}

// Option configures a Comparator.
type Option func(*options)

// WithTolerance sets the exclusive upper bound on the L2 distance.
// The tolerance must be positive.
func WithTolerance(tolerance float64) Option {
	return func(o *options) {
		o.tolerance = tolerance
	}
}

// WithLogger sets the logger that receives mismatch diagnostics.
//
// If nil is passed, a text logger to stderr is used.
func WithLogger(l *guard.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Comparator compares vectors within a tolerance. It is immutable and safe
// for concurrent use.
type Comparator struct {
	tolerance float64
	logger    *guard.Logger
}

// NewComparator returns a Comparator. Without options it uses
// VectorEqTolerance and logs to stderr.
func NewComparator(optFns ...Option) *Comparator {
	opts := options{
		tolerance: VectorEqTolerance,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.logger == nil {
		opts.logger = guard.NewLogger(nil)
	}

	return &Comparator{
		tolerance: guard.PositiveOrDie(opts.tolerance),
		logger:    opts.logger,
	}
}

// Tolerance returns the configured tolerance.
func (c *Comparator) Tolerance() float64 {
	return c.tolerance
}

// VectorEq reports whether observed and expected have the same dimension
// and lie within the comparator's tolerance of each other.
func (c *Comparator) VectorEq(observed, expected []float64) bool {
	return vectorEq(c, observed, expected)
}

var defaultComparator = sync.OnceValue(func() *Comparator {
	return NewComparator()
})

// VectorEq reports whether the Euclidean distance between observed and
// expected is strictly less than VectorEqTolerance.
//
// The dimension is len(observed). A differently sized expected slice is a
// reported mismatch, not a failure: VectorEq logs both sizes and returns
// false.
func VectorEq[F guard.Float](observed []F, expected []float64) bool {
	return vectorEq(defaultComparator(), observed, expected)
}

func vectorEq[F guard.Float](c *Comparator, observed []F, expected []float64) bool {
	ctx := context.Background()

	if len(expected) != len(observed) {
		c.logger.LogSizeMismatch(ctx, len(observed), len(expected))
		return false
	}

	dist := distance.L2(observed, expected)
	if dist < c.tolerance {
		return true
	}

	c.logger.WithDimension(len(observed)).LogToleranceExceeded(ctx, dist, c.tolerance)
	return false
}
