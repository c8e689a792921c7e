// SPDX-License-Identifier: MIT

package sysfile_test

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/internal/sysfile"
)

var dominant = sysfile.System{
	Name:   "dominant",
	Matrix: [][]float64{{9, 1, 1}, {2, 10, 3}, {3, 4, 11}},
	Vector: []float64{10, 19, 0},
}

const systemsYAML = `
systems:
  - name: dominant
    matrix: [[9, 1, 1], [2, 10, 3], [3, 4, 11]]
    vector: [10, 19, 0]
    tolerance: 0.000001
    max_iterations: 50
  - matrix:
      - [1, 2]
      - [3, 1]
    vector: [1, 1]
`

func TestDecodeYAML(t *testing.T) {
	t.Parallel()
	systems, err := sysfile.DecodeYAML(strings.NewReader(systemsYAML))
	require.NoError(t, err)
	require.Len(t, systems, 2)

	assert.Equal(t, "dominant", systems[0].Name)
	assert.Equal(t, dominant.Matrix, systems[0].Matrix)
	assert.Equal(t, dominant.Vector, systems[0].Vector)
	assert.Equal(t, 1e-6, systems[0].Tolerance)
	assert.Equal(t, 50, systems[0].MaxIterations)

	assert.Equal(t, "system-2", systems[1].Name)
	assert.Zero(t, systems[1].Tolerance)

	a, err := systems[1].Dense()
	require.NoError(t, err)
	assert.Equal(t, 2, a.Rows())
}

func TestDecodeYAMLRejects(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"empty":        "",
		"no systems":   "systems: []\n",
		"ragged":       "systems:\n  - matrix: [[1, 2], [3]]\n    vector: [1, 1]\n",
		"non-square":   "systems:\n  - matrix: [[1, 2, 3], [4, 5, 6]]\n    vector: [1, 1]\n",
		"short vector": "systems:\n  - matrix: [[2, 1], [1, 2]]\n    vector: [1]\n",
		"negative tol": "systems:\n  - matrix: [[2]]\n    vector: [1]\n    tolerance: -1\n",
		"infinite tol": "systems:\n  - matrix: [[2]]\n    vector: [1]\n    tolerance: .inf\n",
		"NaN tol":      "systems:\n  - matrix: [[2]]\n    vector: [1]\n    tolerance: .nan\n",
	}
	for name, doc := range cases {
		_, err := sysfile.DecodeYAML(strings.NewReader(doc))
		require.ErrorIs(t, err, sysfile.ErrInvalidSystem, name)
	}

	_, err := sysfile.DecodeYAML(strings.NewReader("systems:\n  - matrx: [[1]]\n"))
	require.Error(t, err, "unknown keys are rejected")
}

func TestYAMLRoundTripThroughFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "systems.yaml")
	var buf bytes.Buffer
	require.NoError(t, sysfile.EncodeYAML(&buf, dominant))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	systems, err := sysfile.Load(path)
	require.NoError(t, err)
	require.Len(t, systems, 1)
	assert.Equal(t, dominant, systems[0])
}

func TestBinaryLayout(t *testing.T) {
	t.Parallel()
	s := sysfile.System{Matrix: [][]float64{{2, -1}, {0.5, 4}}, Vector: []float64{1, math.Pi}}
	var buf bytes.Buffer
	require.NoError(t, sysfile.WriteBinary(&buf, s))

	raw := buf.Bytes()
	require.Len(t, raw, 8+8*(4+2))
	assert.Equal(t, "LSB1", string(raw[:4]))
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(raw[4:8]))
	assert.Equal(t, -1.0, math.Float64frombits(binary.LittleEndian.Uint64(raw[16:24])))
	assert.Equal(t, math.Pi, math.Float64frombits(binary.LittleEndian.Uint64(raw[48:56])))

	got, err := sysfile.DecodeBinary(raw)
	require.NoError(t, err)
	assert.Equal(t, s.Matrix, got.Matrix)
	assert.Equal(t, s.Vector, got.Vector)
}

func TestDecodeBinaryRejects(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, sysfile.WriteBinary(&buf, dominant))
	good := buf.Bytes()

	_, err := sysfile.DecodeBinary(good[:5])
	require.ErrorIs(t, err, sysfile.ErrTruncated)

	_, err = sysfile.DecodeBinary(good[:len(good)-1])
	require.ErrorIs(t, err, sysfile.ErrTruncated)

	bad := bytes.Clone(good)
	copy(bad, "LSB2")
	_, err = sysfile.DecodeBinary(bad)
	require.ErrorIs(t, err, sysfile.ErrBadHeader)

	zero := bytes.Clone(good[:8])
	binary.LittleEndian.PutUint32(zero[4:], 0)
	_, err = sysfile.DecodeBinary(zero)
	require.ErrorIs(t, err, sysfile.ErrBadHeader)

	require.ErrorIs(t, sysfile.WriteBinary(&buf, sysfile.System{}), sysfile.ErrInvalidSystem)
}

func TestLoadBinaryMapped(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "dominant.lsb")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, sysfile.WriteBinary(f, dominant))
	require.NoError(t, f.Close())

	systems, err := sysfile.Load(path)
	require.NoError(t, err)
	require.Len(t, systems, 1)
	assert.Equal(t, dominant, systems[0])

	short := filepath.Join(dir, "short.lsb")
	require.NoError(t, os.WriteFile(short, []byte("LSB"), 0o600))
	_, err = sysfile.Load(short)
	require.ErrorIs(t, err, sysfile.ErrTruncated)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()
	_, err := sysfile.Load("systems.json")
	require.ErrorIs(t, err, sysfile.ErrUnsupportedFormat)

	_, err = sysfile.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
