// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations & horizontal augmentation.
//
// Ownership:
//   - SwapRows, ScaleRow and AddScaledRow mutate the receiver in place. They are
//     defined on *Dense only, so the caller always holds the concrete matrix it
//     is allowed to mutate. Kernels in this package invoke them exclusively on
//     working copies created by Augment or toDense; caller data is never touched.
//   - Augment is the explicit clone boundary: it allocates a fresh [A | B].
//
// Complexity quicksheet:
//   - SwapRows: O(c); ScaleRow: O(c); AddScaledRow: O(c); Augment: O(r*(ca+cb)).

package matrix

import "fmt"

const (
	opSwapRows     = "SwapRows"
	opScaleRow     = "ScaleRow"
	opAddScaledRow = "AddScaledRow"
	opAugment      = "Augment"
)

// rowInRange reports whether i addresses an existing row.
func (m *Dense) rowInRange(i int) bool { return i >= 0 && i < m.r }

// SwapRows exchanges rows i and j in place. Swapping a row with itself is a no-op.
//
// Errors:
//   - ErrNilMatrix (nil receiver), ErrOutOfRange (bad index).
//
// Complexity: Time O(c), Space O(1).
func (m *Dense) SwapRows(i, j int) error {
	if m == nil {
		return matrixErrorf(opSwapRows, ErrNilMatrix)
	}
	if !m.rowInRange(i) || !m.rowInRange(j) {
		return matrixErrorf(opSwapRows, fmt.Errorf("rows (%d,%d): %w", i, j, ErrOutOfRange))
	}
	if i == j {
		return nil
	}
	ri := m.data[i*m.c : (i+1)*m.c]
	rj := m.data[j*m.c : (j+1)*m.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}

	return nil
}

// ScaleRow multiplies every entry of row i by alpha in place.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange, ErrNaNInf (non-finite alpha under the numeric policy).
//
// Complexity: Time O(c), Space O(1).
func (m *Dense) ScaleRow(i int, alpha float64) error {
	if m == nil {
		return matrixErrorf(opScaleRow, ErrNilMatrix)
	}
	if !m.rowInRange(i) {
		return matrixErrorf(opScaleRow, fmt.Errorf("row %d: %w", i, ErrOutOfRange))
	}
	if m.validateNaNInf && isNonFinite(alpha) {
		return matrixErrorf(opScaleRow, fmt.Errorf("alpha %v: %w", alpha, ErrNaNInf))
	}
	row := m.data[i*m.c : (i+1)*m.c]
	for k := range row {
		row[k] *= alpha
	}

	return nil
}

// AddScaledRow performs row[dst] += alpha * row[src] in place.
// src == dst is permitted and yields (1+alpha) * row.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange, ErrNaNInf (non-finite alpha under the numeric policy).
//
// Complexity: Time O(c), Space O(1).
func (m *Dense) AddScaledRow(src, dst int, alpha float64) error {
	if m == nil {
		return matrixErrorf(opAddScaledRow, ErrNilMatrix)
	}
	if !m.rowInRange(src) || !m.rowInRange(dst) {
		return matrixErrorf(opAddScaledRow, fmt.Errorf("rows (%d,%d): %w", src, dst, ErrOutOfRange))
	}
	if m.validateNaNInf && isNonFinite(alpha) {
		return matrixErrorf(opAddScaledRow, fmt.Errorf("alpha %v: %w", alpha, ErrNaNInf))
	}
	if alpha == 0 {
		return nil
	}
	rs := m.data[src*m.c : (src+1)*m.c]
	rd := m.data[dst*m.c : (dst+1)*m.c]
	for k := range rd {
		rd[k] += alpha * rs[k]
	}

	return nil
}

// Augment returns a new Dense [A | B] of shape r×(ca+cb). Neither operand is
// mutated or aliased.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (row counts differ).
//
// Complexity: Time O(r*(ca+cb)), Space O(r*(ca+cb)).
func Augment(a, b Matrix) (*Dense, error) {
	if err := ValidateSameRows(a, b); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	rows, ca, cb := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(rows, ca+cb)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}

	if err = copyBlock(res, a, 0); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if err = copyBlock(res, b, ca); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}

	return res, nil
}

// copyBlock writes src into dst starting at column offset col0.
// dst must have at least src.Rows() rows and col0+src.Cols() columns.
func copyBlock(dst *Dense, src Matrix, col0 int) error {
	rows, cols := src.Rows(), src.Cols()
	// Fast-path: contiguous row copies from a *Dense source.
	if ds, ok := src.(*Dense); ok {
		for i := 0; i < rows; i++ {
			copy(dst.data[i*dst.c+col0:i*dst.c+col0+cols], ds.data[i*cols:(i+1)*cols])
		}

		return nil
	}

	// Fallback: generic interface loop.
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = src.At(i, j); err != nil {
				return fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			dst.data[i*dst.c+col0+j] = v
		}
	}

	return nil
}
