// SPDX-License-Identifier: MIT

package iterative

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/katalvlaran/linsolve/matrix"
)

// Solver holds a private copy of one linear system and its configuration.
// It is immutable after construction; Steps and Solve may be called any number
// of times and always restart from the initial guess.
type Solver struct {
	method   Method
	n        int
	a        []float64 // row-major copy of A (n*n)
	b        []float64 // copy of the right-hand side
	opts     Options
	dominant bool
}

// NewSolver validates the system and copies it into a Solver.
//
// Implementation:
//   - Stage 1: method known; A non-nil and square; len(b) == n; b finite; no zero diagonal.
//   - Stage 2: copy A row-major and b; apply options; validate the initial guess.
//   - Stage 3: run the diagonal-dominance check once and remember the verdict.
//
// Errors:
//   - ErrUnknownMethod, ErrNilVector, matrix.ErrNilMatrix, matrix.ErrNonSquare,
//     matrix.ErrDimensionMismatch (b or initial guess), matrix.ErrNaNInf (b or
//     initial guess), matrix.ErrZeroDiagonal.
//
// A non-dominant system is accepted here; it yields Unsolvable from Solve.
func NewSolver(method Method, a matrix.Matrix, b []float64, opts ...Option) (*Solver, error) {
	if !method.valid() {
		return nil, fmt.Errorf("NewSolver: %v: %w", method, ErrUnknownMethod)
	}
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, fmt.Errorf("NewSolver: %w", err)
	}
	if b == nil {
		return nil, fmt.Errorf("NewSolver: %w", ErrNilVector)
	}
	n := a.Rows()
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return nil, fmt.Errorf("NewSolver: b: %w", err)
	}
	if err := matrix.ValidateFiniteVec(b); err != nil {
		return nil, fmt.Errorf("NewSolver: b: %w", err)
	}
	if err := matrix.ValidateNonZeroDiagonal(a); err != nil {
		return nil, fmt.Errorf("NewSolver: %w", err)
	}

	flat := make([]float64, n*n)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, fmt.Errorf("NewSolver: At(%d,%d): %w", i, j, err)
			}
			flat[i*n+j] = v
		}
	}

	o := gatherOptions(opts...)
	if o.initial != nil {
		if err = matrix.ValidateVecLen(o.initial, n); err != nil {
			return nil, fmt.Errorf("NewSolver: initial guess: %w", err)
		}
		if err = matrix.ValidateFiniteVec(o.initial); err != nil {
			return nil, fmt.Errorf("NewSolver: initial guess: %w", err)
		}
	}

	return &Solver{
		method:   method,
		n:        n,
		a:        flat,
		b:        slices.Clone(b),
		opts:     o,
		dominant: matrix.IsDiagonallyDominant(a),
	}, nil
}

// Method returns the configured update rule.
func (s *Solver) Method() Method { return s.method }

// Dominant reports the verdict of the diagonal-dominance check.
func (s *Solver) Dominant() bool { return s.dominant }

// Tolerance returns the effective stopping threshold.
func (s *Solver) Tolerance() float64 { return s.opts.tol }

// MaxIterations returns the effective sweep cap.
func (s *Solver) MaxIterations() int { return s.opts.maxIter }

// Steps returns the lazy sequence of iteration records.
//
// The first record (Index 0) is the initial guess; each further record is one
// sweep. The sequence ends after the first sweep whose error is below the
// tolerance, or after MaxIterations sweeps. For a non-dominant system the
// sequence is empty. Breaking out of a range loop stops the computation.
//
// Iteration.X aliases the engine's working vector and is overwritten on the
// next sweep.
func (s *Solver) Steps() iter.Seq[Iteration] {
	return func(yield func(Iteration) bool) {
		if !s.dominant {
			return
		}
		n := s.n
		x := make([]float64, n)
		if s.opts.initial != nil {
			copy(x, s.opts.initial)
		}
		prev := make([]float64, n)

		if !yield(Iteration{Index: 0, X: x, Error: math.Inf(1)}) {
			return
		}
		var (
			k, i int
			e    float64
		)
		for k = 1; k <= s.opts.maxIter; k++ {
			copy(prev, x)
			for i = 0; i < n; i++ {
				if s.method == MethodJacobi {
					x[i] = s.update(i, prev)
				} else {
					x[i] = s.update(i, x)
				}
			}
			e = stepNorm(x, prev)
			converged := e < s.opts.tol
			if !yield(Iteration{Index: k, X: x, Error: e, Converged: converged}) {
				return
			}
			if converged {
				return
			}
		}
	}
}

// update computes (b[i] - Σ_{j≠i} A[i,j]·src[j]) / A[i,i].
// Passing the previous iterate gives Jacobi; passing the live vector gives
// Gauss-Seidel, because src[j] for j < i was already refreshed in this sweep.
func (s *Solver) update(i int, src []float64) float64 {
	row := s.a[i*s.n : (i+1)*s.n]
	sigma := 0.0
	for j, aij := range row {
		if j != i {
			sigma += aij * src[j]
		}
	}

	return (s.b[i] - sigma) / row[i]
}

// stepNorm returns max_i |x[i] - prev[i]|, or NaN as soon as one difference is NaN.
func stepNorm(x, prev []float64) float64 {
	e := 0.0
	for i := range x {
		d := math.Abs(x[i] - prev[i])
		if math.IsNaN(d) {
			return math.NaN()
		}
		if d > e {
			e = d
		}
	}

	return e
}

// Solve runs the sweeps to completion and returns the tagged result.
// Only the last record is kept; the returned X is an independent copy.
func (s *Solver) Solve() Result {
	if !s.dominant {
		return Result{Status: Unsolvable}
	}
	var last Iteration
	for it := range s.Steps() {
		last = it
	}

	return ResultOf(last)
}

// Solve builds a Solver for method and runs it.
func Solve(method Method, a matrix.Matrix, b []float64, opts ...Option) (Result, error) {
	s, err := NewSolver(method, a, b, opts...)
	if err != nil {
		return Result{}, err
	}

	return s.Solve(), nil
}

// SolveJacobi solves A·x = b with the Jacobi method.
func SolveJacobi(a matrix.Matrix, b []float64, opts ...Option) (Result, error) {
	return Solve(MethodJacobi, a, b, opts...)
}

// SolveGaussSeidel solves A·x = b with the Gauss-Seidel method.
func SolveGaussSeidel(a matrix.Matrix, b []float64, opts ...Option) (Result, error) {
	return Solve(MethodGaussSeidel, a, b, opts...)
}
