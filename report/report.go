// Package report formats matrices, vectors and iteration traces for display.
//
// It is the presentation layer of linsolve: the numeric packages never print,
// they return values and lazy diagnostic sequences which are rendered here.
package report

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/linsolve/iterative"
	"github.com/katalvlaran/linsolve/matrix"
)

// DefaultPrecision is the number of decimals used by the CLI for vectors and matrices.
const DefaultPrecision = 3

// TracePrecision is the number of decimals used in iteration tables.
const TracePrecision = 4

// columnWidth is the left-aligned width of one iteration-table cell.
const columnWidth = 10

// ErrNegativePrecision is returned for a negative number of decimals.
var ErrNegativePrecision = errors.New("report: precision must be >= 0")

// FormatVector renders x as "(v1, v2, ...)" with prec decimals.
// A negative prec is treated as 0.
func FormatVector(x []float64, prec int) string {
	if prec < 0 {
		prec = 0
	}
	parts := make([]string, len(x))
	for i, v := range x {
		parts[i] = strconv.FormatFloat(v, 'f', prec, 64)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// FormatMatrix renders m with one parenthesised row per line.
func FormatMatrix(m matrix.Matrix, prec int) (string, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return "", fmt.Errorf("FormatMatrix: %w", err)
	}
	var b strings.Builder
	row := make([]float64, m.Cols())
	var err error
	for i := 0; i < m.Rows(); i++ {
		for j := range row {
			if row[j], err = m.At(i, j); err != nil {
				return "", fmt.Errorf("FormatMatrix: %w", err)
			}
		}
		b.WriteString(FormatVector(row, prec))
		b.WriteByte('\n')
	}

	return b.String(), nil
}

// WriteIterations consumes steps and writes one table line per record:
//
//	Iteration  x1         x2         ...        Error
//	0          0.0000     0.0000     ...        -
//	1          1.1111     1.9000     ...        1.9000
//
// The header is sized from the first record. It returns the last record with
// an independent copy of X, or a zero Iteration when steps yields nothing.
func WriteIterations(w io.Writer, steps iter.Seq[iterative.Iteration], prec int) (iterative.Iteration, error) {
	if prec < 0 {
		return iterative.Iteration{}, ErrNegativePrecision
	}
	var (
		last   iterative.Iteration
		header bool
		err    error
	)
	for it := range steps {
		if !header {
			if err = writeHeader(w, len(it.X)); err != nil {
				return iterative.Iteration{}, err
			}
			header = true
		}
		if err = writeRow(w, it, prec); err != nil {
			return iterative.Iteration{}, err
		}
		last = it
	}
	last.X = slices.Clone(last.X)

	return last, nil
}

func writeHeader(w io.Writer, n int) error {
	var b strings.Builder
	b.WriteString(pad("Iteration"))
	for i := 1; i <= n; i++ {
		b.WriteString(pad("x" + strconv.Itoa(i)))
	}
	b.WriteString(strings.TrimRight(pad("Error"), " "))
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())

	return err
}

func writeRow(w io.Writer, it iterative.Iteration, prec int) error {
	var b strings.Builder
	b.WriteString(pad(strconv.Itoa(it.Index)))
	for _, v := range it.X {
		b.WriteString(pad(strconv.FormatFloat(v, 'f', prec, 64)))
	}
	if it.Index == 0 {
		b.WriteString("-")
	} else {
		b.WriteString(strconv.FormatFloat(it.Error, 'f', prec, 64))
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())

	return err
}

// pad left-aligns s in a columnWidth cell followed by one space.
func pad(s string) string {
	return fmt.Sprintf("%-*s ", columnWidth, s)
}

// Summary renders a one-line description of a solve result.
func Summary(method iterative.Method, res iterative.Result, prec int) string {
	x, ok := res.Vector()
	if !ok {
		return fmt.Sprintf("%s: no dominant diagonal, the method may not converge", method)
	}

	return fmt.Sprintf("%s: %s after %d iterations, x = %s",
		method, res.Status, res.Iterations, FormatVector(x, prec))
}
