// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/matrix"
)

func TestLUFactorization(t *testing.T) {
	t.Parallel()
	a := MustFromRows(t, luSystem3)
	L, U, err := matrix.LU(a)
	require.NoError(t, err)

	requireAllClose(t, [][]float64{{1, 0, 0}, {-2, 1, 0}, {3, -10.0 / 9, 1}}, L, 1e-12)
	requireAllClose(t, [][]float64{{1, 4, -3}, {0, 9, -1}, {0, 0, 80.0 / 9}}, U, 1e-12)

	// L·U reproduces A.
	prod, err := matrix.Mul(L, U)
	require.NoError(t, err)
	requireAllClose(t, luSystem3, prod, 1e-12)

	// Fallback input gives the same factors.
	L2, U2, err := matrix.LU(hide{a})
	require.NoError(t, err)
	requireBitEqual(t, L, L2)
	requireBitEqual(t, U, U2)
}

func TestLUEpsilonSubstitution(t *testing.T) {
	t.Parallel()
	a := MustFromRows(t, [][]float64{{0, 1}, {1, 1}})

	L, U, err := matrix.LU(a)
	require.NoError(t, err)
	assert.Equal(t, matrix.DefaultEpsilon, MustAt(t, U, 0, 0))
	assert.InEpsilon(t, 1/matrix.DefaultEpsilon, MustAt(t, L, 1, 0), 1e-12)

	_, U, err = matrix.LU(a, matrix.WithEpsilon(1e-3))
	require.NoError(t, err)
	assert.Equal(t, 1e-3, MustAt(t, U, 0, 0))

	// The input is never modified by the substitution.
	assert.Zero(t, MustAt(t, a, 0, 0))
}

func TestLULastPivotNotSubstituted(t *testing.T) {
	t.Parallel()
	a := MustFromRows(t, [][]float64{{1, 1}, {1, 1}})
	_, U, err := matrix.LU(a)
	require.NoError(t, err)
	assert.Zero(t, MustAt(t, U, 1, 1))

	_, err = matrix.SolveLU(a, []float64{1, 1})
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestSubstitution(t *testing.T) {
	t.Parallel()
	L := MustFromRows(t, [][]float64{{1, 0}, {2, 1}})
	y, err := matrix.ForwardSubstitution(L, []float64{3, 8})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 2}, y)

	U := MustFromRows(t, [][]float64{{2, 1}, {0, 4}})
	x, err := matrix.BackwardSubstitution(U, []float64{5, 8})
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2}, x)

	_, err = matrix.ForwardSubstitution(L, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.BackwardSubstitution(MustDense(t, 2, 3), []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.BackwardSubstitution(MustFromRows(t, [][]float64{{1, 1}, {0, 0}}), []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestSolveLU(t *testing.T) {
	t.Parallel()
	a := MustFromRows(t, luSystem3)
	x, err := matrix.SolveLU(a, ones3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.05, 0.35, 0.15}, x, 1e-12)

	r, err := matrix.Residual(a, x, ones3)
	require.NoError(t, err)
	assert.Less(t, r, 1e-12)

	_, err = matrix.SolveLU(nil, ones3)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
