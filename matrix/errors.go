// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.
// Panics are reserved for nonsensical option values (programmer errors).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap these sentinels with an operation
// tag via matrixErrorf; callers still match them with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/ragged -> dimension mismatch -> numeric (NaN/Inf, zero diagonal)
// -> algebraic (singular).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) and row primitives MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or a vector whose length differs from n.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set, ScaleRow, ...).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrRagged signals row slices of unequal length passed to NewDenseFromRows.
	ErrRagged = errors.New("matrix: rows have unequal length")

	// ErrSingular is returned by the Gauss-Jordan inverter when a pivot column has
	// no nonzero candidate in any remaining row, and by BackwardSubstitution on a
	// zero diagonal entry of U.
	ErrSingular = errors.New("matrix: matrix is singular and cannot be inverted")

	// ErrZeroDiagonal signals a zero entry on the main diagonal where the caller
	// divides by it (iterative sweeps).
	ErrZeroDiagonal = errors.New("matrix: zero entry on the main diagonal")
)
