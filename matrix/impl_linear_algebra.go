// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication, matrix-vector products, infinity norms, Gauss-Jordan
// inversion, condition numbers and the diagonal-dominance predicate.
// All functions perform strict fail-fast validation and return wrapped
// sentinels on misuse. Inputs are never mutated.
//
// Notes:
//   - Each kernel has a fast path for *Dense (flat-slice loops) and a generic
//     At/Set fallback with the same loop order, so both paths agree bit-for-bit.
//   - All kernels use central validators and wrap via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for dot products and substitutions.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in Inverse/LU routines.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opInfNorm   = "InfNorm"
	opResidual  = "Residual"
	opInverse   = "Inverse"
	opCondition = "ConditionNumber"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// C[i][j] = Σ_k A[i][k]·B[k][j].
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides;
//     otherwise use i→j→k with a fixed order.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop; k innermost but accumulated in
	// the same k order as the fast path.
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// InfNorm returns ‖m‖∞, the maximum over rows of the sum of absolute values.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(1).
func InfNorm(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return NormZero, matrixErrorf(opInfNorm, err)
	}
	var (
		i, j     int
		sum, max float64
		v        float64
		err      error
	)
	max = NormZero
	if d, ok := m.(*Dense); ok {
		for i = 0; i < d.r; i++ {
			sum = ZeroSum
			for _, v = range d.data[i*d.c : (i+1)*d.c] {
				sum += math.Abs(v)
			}
			if sum > max {
				max = sum
			}
		}

		return max, nil
	}

	rows, cols := m.Rows(), m.Cols()
	for i = 0; i < rows; i++ {
		sum = ZeroSum
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return NormZero, matrixErrorf(opInfNorm, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			sum += math.Abs(v)
		}
		if sum > max {
			max = sum
		}
	}

	return max, nil
}

// VecInfNorm returns max_i |x[i]| (0 for an empty vector).
// Complexity: O(n).
func VecInfNorm(x []float64) float64 {
	max := NormZero
	for _, v := range x {
		if a := math.Abs(v); a > max {
			max = a
		}
	}

	return max
}

// Residual returns ‖A·x − b‖∞, the worst equation violation of x.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != A.Cols or len(b) != A.Rows).
// Complexity: Time O(r*c), Space O(r).
func Residual(a Matrix, x, b []float64) (float64, error) {
	ax, err := MatVec(a, x)
	if err != nil {
		return NormZero, matrixErrorf(opResidual, err)
	}
	if err = ValidateVecLen(b, len(ax)); err != nil {
		return NormZero, matrixErrorf(opResidual, err)
	}
	worst := NormZero
	for i := range ax {
		if d := math.Abs(ax[i] - b[i]); d > worst {
			worst = d
		}
	}

	return worst, nil
}

// Inverse computes A^{-1} by Gauss-Jordan elimination on the augmented matrix [A | I].
// The input is never mutated: the augmented matrix is a fresh working copy.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m) and ValidateSquare(m). Build aug = Augment(m, I_n).
//   - Stage 2: For each pivot column col = 0..n-1:
//   - If aug[col,col] == 0, swap in the first row below with a nonzero entry in
//     that column; if there is none, fail with ErrSingular.
//   - ScaleRow(col, 1/aug[col,col]) so the pivot becomes 1.
//   - AddScaledRow(col, row, -aug[row,col]) for every other row.
//   - Stage 3: Copy out the right half via Induced.
//
// Behavior highlights:
//   - Pivoting only avoids exact zeros; it does not pick the largest candidate.
//   - Fully deterministic: identical inputs produce bit-identical inverses.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the augmented working copy.
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := m.Rows()
	I, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	aug, err := Augment(m, I)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	w := aug.c // 2n
	var col, row int
	for col = 0; col < n; col++ {
		// Zero-avoiding pivot search: first nonzero below the diagonal.
		if aug.data[col*w+col] == ZeroPivot {
			swapped := false
			for row = col + 1; row < n; row++ {
				if aug.data[row*w+col] != ZeroPivot {
					if err = aug.SwapRows(col, row); err != nil {
						return nil, matrixErrorf(opInverse, err)
					}
					swapped = true
					break
				}
			}
			if !swapped {
				return nil, matrixErrorf(opInverse, fmt.Errorf("column %d: %w", col, ErrSingular))
			}
		}

		// Normalize the pivot row.
		if err = aug.ScaleRow(col, 1/aug.data[col*w+col]); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}

		// Eliminate the pivot column from every other row.
		for row = 0; row < n; row++ {
			if row == col {
				continue
			}
			if err = aug.AddScaledRow(col, row, -aug.data[row*w+col]); err != nil {
				return nil, matrixErrorf(opInverse, err)
			}
		}
	}

	inv, err := aug.Induced(span(0, n), span(n, 2*n))
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}

// ConditionNumber returns κ∞(A) = ‖A‖∞ · ‖A⁻¹‖∞.
// For an invertible matrix the result is ≥ 1 (up to rounding).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (propagated from Inverse).
//
// Complexity:
//   - Time O(n^3) (dominated by Inverse), Space O(n^2).
func ConditionNumber(m Matrix) (float64, error) {
	inv, err := Inverse(m)
	if err != nil {
		return NormZero, matrixErrorf(opCondition, err)
	}
	normA, err := InfNorm(m)
	if err != nil {
		return NormZero, matrixErrorf(opCondition, err)
	}
	normInv, err := InfNorm(inv)
	if err != nil {
		return NormZero, matrixErrorf(opCondition, err)
	}

	return normA * normInv, nil
}

// IsDiagonallyDominant reports whether |A[i,i]| > Σ_{j≠i} |A[i,j]| holds for
// every row i (strict row dominance). It stops at the first violating row.
//
// A nil or non-square matrix is never dominant, and neither is a row whose
// diagonal or off-diagonal sum is NaN. The predicate is pure.
//
// Complexity: Time O(n^2), Space O(1).
func IsDiagonallyDominant(m Matrix) bool {
	if ValidateSquareNonNil(m) != nil {
		return false
	}
	n := m.Rows()
	var (
		i, j      int
		diag, off float64
		v         float64
		err       error
	)
	if d, ok := m.(*Dense); ok {
		for i = 0; i < n; i++ {
			off = ZeroSum
			for j = 0; j < n; j++ {
				if j != i {
					off += math.Abs(d.data[i*n+j])
				}
			}
			if !(math.Abs(d.data[i*n+i]) > off) {
				return false
			}
		}

		return true
	}

	for i = 0; i < n; i++ {
		off = ZeroSum
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return false
			}
			if j == i {
				diag = math.Abs(v)
			} else {
				off += math.Abs(v)
			}
		}
		if !(diag > off) {
			return false
		}
	}

	return true
}
