package report_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/iterative"
	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/report"
)

func TestFormatVector(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "(1.000, 2.000, -1.000)", report.FormatVector([]float64{1, 2, -1}, 3))
	assert.Equal(t, "(0.05, 0.35)", report.FormatVector([]float64{0.050000000000000155, 0.35}, 2))
	assert.Equal(t, "(3)", report.FormatVector([]float64{3.2}, -1))
	assert.Equal(t, "()", report.FormatVector(nil, 3))
}

func TestFormatMatrix(t *testing.T) {
	t.Parallel()
	m, err := matrix.NewDenseFromRows([][]float64{{1, -1}, {0.5, 2}})
	require.NoError(t, err)

	s, err := report.FormatMatrix(m, 1)
	require.NoError(t, err)
	assert.Equal(t, "(1.0, -1.0)\n(0.5, 2.0)\n", s)

	_, err = report.FormatMatrix(nil, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestWriteIterations(t *testing.T) {
	t.Parallel()
	a, err := matrix.NewDenseFromRows([][]float64{{2}})
	require.NoError(t, err)
	s, err := iterative.NewSolver(iterative.MethodJacobi, a, []float64{4})
	require.NoError(t, err)

	var buf bytes.Buffer
	last, err := report.WriteIterations(&buf, s.Steps(), report.TracePrecision)
	require.NoError(t, err)

	want := "" +
		"Iteration  x1         Error\n" +
		"0          0.0000     -\n" +
		"1          2.0000     2.0000\n" +
		"2          2.0000     0.0000\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, 2, last.Index)
	assert.True(t, last.Converged)
	assert.Equal(t, []float64{2}, last.X)
}

func TestWriteIterationsDominantSystem(t *testing.T) {
	t.Parallel()
	a, err := matrix.NewDenseFromRows([][]float64{{9, 1, 1}, {2, 10, 3}, {3, 4, 11}})
	require.NoError(t, err)
	s, err := iterative.NewSolver(iterative.MethodGaussSeidel, a, []float64{10, 19, 0})
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = report.WriteIterations(&buf, s.Steps(), report.TracePrecision)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 7, "header, initial guess and five sweeps")
	assert.Equal(t, "Iteration  x1         x2         x3         Error", lines[0])
	assert.Equal(t, "1          1.1111     1.6778     -0.9131    1.6778", lines[2])
	assert.Equal(t, "5          1.0000     2.0000     -1.0000    0.0002", lines[6])
}

func TestWriteIterationsEmptyAndErrors(t *testing.T) {
	t.Parallel()
	a, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 1}})
	require.NoError(t, err)
	s, err := iterative.NewSolver(iterative.MethodJacobi, a, []float64{1, 1})
	require.NoError(t, err)

	var buf bytes.Buffer
	last, err := report.WriteIterations(&buf, s.Steps(), 4)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
	assert.Nil(t, last.X)

	_, err = report.WriteIterations(&buf, s.Steps(), -1)
	require.ErrorIs(t, err, report.ErrNegativePrecision)

	d, err := matrix.NewDenseFromRows([][]float64{{2}})
	require.NoError(t, err)
	s, err = iterative.NewSolver(iterative.MethodJacobi, d, []float64{4})
	require.NoError(t, err)
	_, err = report.WriteIterations(failingWriter{}, s.Steps(), 4)
	require.ErrorIs(t, err, errWrite)
}

var errWrite = errors.New("write failed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestSummary(t *testing.T) {
	t.Parallel()
	assert.Equal(t,
		"jacobi: no dominant diagonal, the method may not converge",
		report.Summary(iterative.MethodJacobi, iterative.Result{}, 3))
	assert.Equal(t,
		"gauss-seidel: converged after 5 iterations, x = (1.000, 2.000, -1.000)",
		report.Summary(iterative.MethodGaussSeidel, iterative.Result{
			Status:     iterative.Converged,
			X:          []float64{1.0000070, 2.0000165, -1.0000079},
			Iterations: 5,
		}, 3))
}
