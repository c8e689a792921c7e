// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the kernel tests.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/matrix"
)

// Fixtures used across the kernel tests.
var (
	// invertible3 has the integer inverse inverse3 and ‖·‖∞ = 10.
	invertible3 = [][]float64{{1, -1, -2}, {2, -3, -5}, {-1, 3, 5}}
	inverse3    = [][]float64{{0, 1, 1}, {5, -3, -1}, {-3, 2, 1}}

	// dominant3 is strictly diagonally dominant; solution (1, 2, -1) for rhs3.
	dominant3 = [][]float64{{9, 1, 1}, {2, 10, 3}, {3, 4, 11}}
	rhs3      = []float64{10, 19, 0}

	// luSystem3 needs no pivoting; solution (0.05, 0.35, 0.15) for ones3.
	luSystem3 = [][]float64{{1, 4, -3}, {-2, 1, 5}, {3, 2, 1}}
	ones3     = []float64{1, 1, 1}
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the At/Set fallback paths of the kernels.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustFromRows builds a *Dense from a literal or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustSet writes (i,j) or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v))
}

// requireAllClose asserts |m[i,j] - want[i][j]| <= tol for every entry.
func requireAllClose(t *testing.T, want [][]float64, m matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "row count")
	require.Equal(t, len(want[0]), m.Cols(), "col count")
	for i := range want {
		for j := range want[i] {
			got := MustAt(t, m, i, j)
			require.LessOrEqualf(t, math.Abs(got-want[i][j]), tol,
				"entry [%d,%d]: got %v want %v", i, j, got, want[i][j])
		}
	}
}

// requireBitEqual asserts that a and b hold identical float64 bit patterns.
func requireBitEqual(t *testing.T, a, b matrix.Matrix) {
	t.Helper()
	require.Equal(t, a.Rows(), b.Rows())
	require.Equal(t, a.Cols(), b.Cols())
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			require.Equalf(t, math.Float64bits(MustAt(t, a, i, j)), math.Float64bits(MustAt(t, b, i, j)),
				"entry [%d,%d]", i, j)
		}
	}
}
