// SPDX-License-Identifier: MIT

// Package matrix - direct solve via Doolittle LU and triangular substitution.
//
// Numeric policy:
//   - LU does NOT pivot. An exactly-zero U[i,i] met while computing column i
//     of L is replaced by a small epsilon (DefaultEpsilon, see WithEpsilon).
//     This keeps the factorization defined for every input but gives no
//     stability guarantee: a substituted pivot typically yields huge entries.
//   - BackwardSubstitution does not substitute; a zero U[i,i] is ErrSingular.

package matrix

import "fmt"

const (
	opLU       = "LU"
	opForward  = "ForwardSubstitution"
	opBackward = "BackwardSubstitution"
	opSolveLU  = "SolveLU"
)

// LU computes the Doolittle factorization A = L*U with unit diagonal on L.
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); allocate Dense L,U; set diag(L)=1.
//   - Stage 2: For i=0..n-1:
//   - U[i,j] = A[i,j] - Σ_{k<i} L[i,k]·U[k,j]  for j ≥ i.
//   - if U[i,i] == 0 and rows remain below, U[i,i] = eps.
//   - L[j,i] = (A[j,i] - Σ_{k<i} L[j,k]·U[k,i]) / U[i,i]  for j > i.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf (reading a non-Dense input fails).
//
// Determinism:
//   - Fixed i→{j≥i} for U, then {j>i}→i for L.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix, opts ...Option) (*Dense, *Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)

	// Work on a Dense copy so the loops below only see flat slices.
	a, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	n := a.r
	L, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	var (
		i, j, k      int
		sum          float64
		baseI, baseJ int
	)
	for i = 0; i < n; i++ {
		baseI = i * n
		// Row i of U.
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[baseI+k] * U.data[k*n+j]
			}
			U.data[baseI+j] = a.data[baseI+j] - sum
		}

		// Column i of L.
		for j = i + 1; j < n; j++ {
			if U.data[baseI+i] == ZeroPivot {
				U.data[baseI+i] = o.eps
			}
			sum = ZeroSum
			baseJ = j * n
			for k = 0; k < i; k++ {
				sum += L.data[baseJ+k] * U.data[k*n+i]
			}
			L.data[baseJ+i] = (a.data[baseJ+i] - sum) / U.data[baseI+i]
		}
	}

	return L, U, nil
}

// ForwardSubstitution solves L·y = b for unit lower-triangular L.
// Only the strict lower triangle of L is read; the diagonal is taken as 1.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (len(b) != n).
//
// Complexity: Time O(n^2), Space O(n).
func ForwardSubstitution(L Matrix, b []float64) ([]float64, error) {
	if err := ValidateSquareNonNil(L); err != nil {
		return nil, matrixErrorf(opForward, err)
	}
	n := L.Rows()
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opForward, err)
	}

	y := make([]float64, n)
	var (
		i, j int
		sum  float64
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		sum = ZeroSum
		for j = 0; j < i; j++ {
			if v, err = L.At(i, j); err != nil {
				return nil, matrixErrorf(opForward, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			sum += v * y[j]
		}
		y[i] = b[i] - sum
	}

	return y, nil
}

// BackwardSubstitution solves U·x = y for upper-triangular U, bottom-up.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrSingular (U[i,i] == 0).
//
// Complexity: Time O(n^2), Space O(n).
func BackwardSubstitution(U Matrix, y []float64) ([]float64, error) {
	if err := ValidateSquareNonNil(U); err != nil {
		return nil, matrixErrorf(opBackward, err)
	}
	n := U.Rows()
	if err := ValidateVecLen(y, n); err != nil {
		return nil, matrixErrorf(opBackward, err)
	}

	x := make([]float64, n)
	var (
		i, j         int
		sum, v, diag float64
		err          error
	)
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		for j = i + 1; j < n; j++ {
			if v, err = U.At(i, j); err != nil {
				return nil, matrixErrorf(opBackward, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			sum += v * x[j]
		}
		if diag, err = U.At(i, i); err != nil {
			return nil, matrixErrorf(opBackward, fmt.Errorf("At(%d,%d): %w", i, i, err))
		}
		if diag == ZeroPivot {
			return nil, matrixErrorf(opBackward, fmt.Errorf("row %d: %w", i, ErrSingular))
		}
		x[i] = (y[i] - sum) / diag
	}

	return x, nil
}

// SolveLU solves A·x = b with LU followed by forward and backward substitution.
// Options are forwarded to LU (e.g. WithEpsilon).
//
// Errors: any error of LU, ForwardSubstitution or BackwardSubstitution.
// Complexity: Time O(n^3), Space O(n^2).
func SolveLU(a Matrix, b []float64, opts ...Option) ([]float64, error) {
	L, U, err := LU(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}
	y, err := ForwardSubstitution(L, b)
	if err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}
	x, err := BackwardSubstitution(U, y)
	if err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}

	return x, nil
}
