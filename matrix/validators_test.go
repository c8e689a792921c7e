// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/matrix"
)

func TestValidators(t *testing.T) {
	t.Parallel()
	sq := MustDense(t, 2, 2)
	rect := MustDense(t, 2, 3)
	var typedNil *matrix.Dense

	require.NoError(t, matrix.ValidateNotNil(sq))
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateSquareNonNil(sq))
	require.ErrorIs(t, matrix.ValidateSquareNonNil(rect), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquareNonNil(nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateMulCompatible(sq, rect))
	require.ErrorIs(t, matrix.ValidateMulCompatible(rect, sq), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateSameRows(sq, rect))
	require.ErrorIs(t, matrix.ValidateSameRows(sq, MustDense(t, 3, 1)), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}

func TestValidateFiniteVec(t *testing.T) {
	t.Parallel()
	require.NoError(t, matrix.ValidateFiniteVec([]float64{1, -2, 0}))
	require.NoError(t, matrix.ValidateFiniteVec(nil))
	err := matrix.ValidateFiniteVec([]float64{1, math.Inf(-1)})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "index 1")
	require.ErrorIs(t, matrix.ValidateFiniteVec([]float64{math.NaN()}), matrix.ErrNaNInf)
}

func TestValidateNonZeroDiagonal(t *testing.T) {
	t.Parallel()
	require.NoError(t, matrix.ValidateNonZeroDiagonal(MustFromRows(t, dominant3)))
	err := matrix.ValidateNonZeroDiagonal(MustFromRows(t, [][]float64{{1, 2}, {3, 0}}))
	require.ErrorIs(t, err, matrix.ErrZeroDiagonal)
	require.Contains(t, err.Error(), "row 1")
}

func TestOptionsPanics(t *testing.T) {
	t.Parallel()
	for _, eps := range []float64{0, -1} {
		require.Panics(t, func() { matrix.WithEpsilon(eps) })
	}
	require.NotPanics(t, func() { matrix.WithEpsilon(1e-12) })
}
