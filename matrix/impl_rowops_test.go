// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/matrix"
)

func TestRowOps(t *testing.T) {
	t.Parallel()

	t.Run("SwapRows", func(t *testing.T) {
		t.Parallel()
		m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
		require.NoError(t, m.SwapRows(0, 2))
		assert.Equal(t, [][]float64{{5, 6}, {3, 4}, {1, 2}}, m.ToRows())
		require.NoError(t, m.SwapRows(1, 1))
		assert.Equal(t, [][]float64{{5, 6}, {3, 4}, {1, 2}}, m.ToRows())
		require.ErrorIs(t, m.SwapRows(0, 3), matrix.ErrOutOfRange)
	})
	t.Run("ScaleRow", func(t *testing.T) {
		t.Parallel()
		m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
		require.NoError(t, m.ScaleRow(1, 0.5))
		assert.Equal(t, [][]float64{{1, 2}, {1.5, 2}}, m.ToRows())
		require.ErrorIs(t, m.ScaleRow(-1, 2), matrix.ErrOutOfRange)
		require.ErrorIs(t, m.ScaleRow(0, math.Inf(-1)), matrix.ErrNaNInf)
	})
	t.Run("AddScaledRow", func(t *testing.T) {
		t.Parallel()
		m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
		require.NoError(t, m.AddScaledRow(0, 1, -3))
		assert.Equal(t, [][]float64{{1, 2}, {0, -2}}, m.ToRows())
		require.NoError(t, m.AddScaledRow(1, 1, 1))
		assert.Equal(t, [][]float64{{1, 2}, {0, -4}}, m.ToRows())
		require.ErrorIs(t, m.AddScaledRow(2, 0, 1), matrix.ErrOutOfRange)
		require.ErrorIs(t, m.AddScaledRow(0, 1, math.NaN()), matrix.ErrNaNInf)
	})
	t.Run("nil receiver", func(t *testing.T) {
		t.Parallel()
		var m *matrix.Dense
		require.ErrorIs(t, m.SwapRows(0, 1), matrix.ErrNilMatrix)
		require.ErrorIs(t, m.ScaleRow(0, 1), matrix.ErrNilMatrix)
		require.ErrorIs(t, m.AddScaledRow(0, 1, 1), matrix.ErrNilMatrix)
	})
}

func TestAugment(t *testing.T) {
	t.Parallel()
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{5}, {6}})

	for name, left := range map[string]matrix.Matrix{"dense": a, "fallback": hide{a}} {
		aug, err := matrix.Augment(left, hide{b})
		require.NoError(t, err, name)
		assert.Equal(t, [][]float64{{1, 2, 5}, {3, 4, 6}}, aug.ToRows(), name)
	}

	// The result owns its buffer.
	aug, err := matrix.Augment(a, b)
	require.NoError(t, err)
	require.NoError(t, aug.ScaleRow(0, 10))
	assert.Equal(t, 1.0, MustAt(t, a, 0, 0))

	_, err = matrix.Augment(a, MustDense(t, 3, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Augment(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
