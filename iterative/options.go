package iterative

import (
	"math"
	"slices"
)

// Defaults (single source of truth).
const (
	// DefaultTolerance is the stopping threshold on the L∞ norm of the update step.
	DefaultTolerance = 1e-3

	// DefaultMaxIterations caps the number of sweeps.
	DefaultMaxIterations = 1000
)

const (
	panicToleranceInvalid = "iterative: WithTolerance: tol must be finite and > 0"
	panicMaxIterInvalid   = "iterative: WithMaxIterations: n must be >= 1"
)

// Option configures a Solver.
type Option func(*Options)

// Options holds the effective solver configuration.
type Options struct {
	tol     float64   // > 0
	maxIter int       // >= 1
	initial []float64 // nil means the zero vector
}

// WithTolerance sets the stopping threshold. Iteration stops once the update
// step is strictly below tol. Panics on NaN, ±Inf or tol <= 0.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIterations caps the number of sweeps. Panics when n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithInitialGuess starts the iteration from x0 instead of the zero vector.
// The slice is copied; its length is validated by NewSolver.
func WithInitialGuess(x0 []float64) Option {
	cp := slices.Clone(x0)

	return func(o *Options) { o.initial = cp }
}

func defaultOptions() Options {
	return Options{
		tol:     DefaultTolerance,
		maxIter: DefaultMaxIterations,
	}
}

func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
