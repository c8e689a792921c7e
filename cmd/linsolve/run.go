package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"
	"time"

	"github.com/gosuri/uilive"

	"github.com/katalvlaran/linsolve/convergence"
	"github.com/katalvlaran/linsolve/internal/sysfile"
	"github.com/katalvlaran/linsolve/iterative"
	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/report"
)

// Built-in demonstration systems.
var (
	inverseDemo = sysfile.System{
		Name:   "inverse",
		Matrix: [][]float64{{1, -1, -2}, {2, -3, -5}, {-1, 3, 5}},
	}
	luDemo = sysfile.System{
		Name:   "lu",
		Matrix: [][]float64{{1, 4, -3}, {-2, 1, 5}, {3, 2, 1}},
		Vector: []float64{1, 1, 1},
	}
	iterativeDemo = sysfile.System{
		Name:   "iterative",
		Matrix: [][]float64{{9, 1, 1}, {2, 10, 3}, {3, 4, 11}},
		Vector: []float64{10, 19, 0},
	}
)

func run(ctx context.Context, cfg config, out io.Writer) error {
	var traces []convergence.Trace

	if cfg.system == "" {
		if cfg.demo == demoAll || cfg.demo == demoInverse {
			if err := runInverse(out, inverseDemo, cfg.precision); err != nil {
				return err
			}
		}
		if cfg.demo == demoAll || cfg.demo == demoLU {
			if err := runLU(out, luDemo, cfg.precision); err != nil {
				return err
			}
		}
		if cfg.demo == demoAll || cfg.demo == demoIterative {
			tr, err := runIterative(ctx, out, iterativeDemo, cfg)
			if err != nil {
				return err
			}
			traces = append(traces, tr...)
		}
	} else {
		systems, err := sysfile.Load(cfg.system)
		if err != nil {
			return err
		}
		for _, sys := range systems {
			fmt.Fprintf(out, "== %s ==\n", sys.Name)
			if err = runInverse(out, sys, cfg.precision); err != nil {
				return err
			}
			if err = runLU(out, sys, cfg.precision); err != nil {
				return err
			}
			tr, err := runIterative(ctx, out, sys, cfg)
			if err != nil {
				return err
			}
			traces = append(traces, tr...)
		}
	}

	if cfg.plot == "" {
		return nil
	}
	if err := convergence.Save(cfg.plot, traces...); err != nil {
		return err
	}
	fmt.Fprintf(out, "convergence chart written to %s\n", cfg.plot)

	return nil
}

// runInverse prints A, A⁻¹, A·A⁻¹, both norms and cond(A).
// A singular matrix is reported and is not an error; any other failure is.
func runInverse(out io.Writer, sys sysfile.System, prec int) error {
	a, err := matrix.NewDenseFromRows(sys.Matrix)
	if err != nil {
		return err
	}
	if err = printMatrix(out, "A", a, prec); err != nil {
		return err
	}
	inv, err := matrix.Inverse(a)
	if errors.Is(err, matrix.ErrSingular) {
		fmt.Fprintf(out, "inverse: %v\n\n", err)
		return nil
	}
	if err != nil {
		return err
	}
	if err = printMatrix(out, "A^-1", inv, prec); err != nil {
		return err
	}
	prod, err := matrix.Mul(a, inv)
	if err != nil {
		return err
	}
	if err = printMatrix(out, "A * A^-1", prod, prec); err != nil {
		return err
	}

	na, err := matrix.InfNorm(a)
	if err != nil {
		return err
	}
	ni, err := matrix.InfNorm(inv)
	if err != nil {
		return err
	}
	cond, err := matrix.ConditionNumber(a)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "||A||inf = %.*f\n||A^-1||inf = %.*f\ncond(A) = %.*f\n\n",
		prec, na, prec, ni, prec, cond)

	return nil
}

// runLU prints L, U and, when b is present, y and x of the LU solve.
func runLU(out io.Writer, sys sysfile.System, prec int) error {
	a, err := matrix.NewDenseFromRows(sys.Matrix)
	if err != nil {
		return err
	}
	l, u, err := matrix.LU(a)
	if err != nil {
		return err
	}
	if err = printMatrix(out, "L", l, prec); err != nil {
		return err
	}
	if err = printMatrix(out, "U", u, prec); err != nil {
		return err
	}
	if len(sys.Vector) == 0 {
		return nil
	}
	y, err := matrix.ForwardSubstitution(l, sys.Vector)
	if err != nil {
		return err
	}
	x, err := matrix.BackwardSubstitution(u, y)
	if err != nil {
		fmt.Fprintf(out, "LU solve: %v\n\n", err)
		return nil
	}
	fmt.Fprintf(out, "y = %s\nx = %s\n", report.FormatVector(y, prec), report.FormatVector(x, prec))
	if err = printResidual(out, a, x, sys.Vector); err != nil {
		return err
	}
	fmt.Fprintln(out)

	return nil
}

// runIterative runs every configured method on sys and returns the error traces.
func runIterative(ctx context.Context, out io.Writer, sys sysfile.System, cfg config) ([]convergence.Trace, error) {
	if len(sys.Vector) == 0 {
		return nil, nil
	}
	a, err := matrix.NewDenseFromRows(sys.Matrix)
	if err != nil {
		return nil, err
	}
	opts := []iterative.Option{
		iterative.WithTolerance(cfg.tol),
		iterative.WithMaxIterations(cfg.maxIter),
	}
	if sys.Tolerance > 0 {
		opts = append(opts, iterative.WithTolerance(sys.Tolerance))
	}
	if sys.MaxIterations > 0 {
		opts = append(opts, iterative.WithMaxIterations(sys.MaxIterations))
	}

	traces := make([]convergence.Trace, 0, len(cfg.methods))
	for _, m := range cfg.methods {
		s, err := iterative.NewSolver(m, a, sys.Vector, opts...)
		if errors.Is(err, matrix.ErrZeroDiagonal) {
			fmt.Fprintf(out, "%s: %v\n", m, err)
			continue
		}
		if err != nil {
			return nil, err
		}
		if !s.Dominant() {
			fmt.Fprintln(out, report.Summary(m, s.Solve(), cfg.precision))
			continue
		}

		fmt.Fprintf(out, "%s:\n", m)
		var (
			tr   convergence.Trace
			last iterative.Iteration
		)
		steps := record(ctx, sys.Name+" "+m.String(), s.Steps(), &tr)
		if cfg.live {
			last, err = watch(out, steps, cfg.delay)
		} else {
			last, err = report.WriteIterations(out, steps, report.TracePrecision)
		}
		if err != nil {
			return nil, err
		}
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		res := iterative.ResultOf(last)
		fmt.Fprintln(out, report.Summary(m, res, cfg.precision))
		if err = printResidual(out, a, res.X, sys.Vector); err != nil {
			return nil, err
		}
		fmt.Fprintln(out)
		traces = append(traces, tr)
	}

	return traces, nil
}

// record passes steps through while appending every sweep error to tr.
// It stops early when ctx is cancelled.
func record(ctx context.Context, name string, steps iter.Seq[iterative.Iteration], tr *convergence.Trace) iter.Seq[iterative.Iteration] {
	tr.Name = name
	return func(yield func(iterative.Iteration) bool) {
		for it := range steps {
			if ctx.Err() != nil {
				return
			}
			if it.Index > 0 {
				tr.Errors = append(tr.Errors, it.Error)
			}
			if !yield(it) {
				return
			}
		}
	}
}

// watch redraws the current iterate in place using uilive and returns the
// last record with X cloned.
func watch(out io.Writer, steps iter.Seq[iterative.Iteration], delay time.Duration) (iterative.Iteration, error) {
	var last iterative.Iteration
	w := uilive.New()
	w.Out = out
	for it := range steps {
		last = it
		last.X = slices.Clone(it.X)
		errText := "-"
		if it.Index > 0 {
			errText = fmt.Sprintf("%.*f", report.TracePrecision, it.Error)
		}
		fmt.Fprintf(w, "iteration %d  x = %s  error = %s\n",
			it.Index, report.FormatVector(it.X, report.TracePrecision), errText)
		if err := w.Flush(); err != nil {
			return last, err
		}
		if delay > 0 {
			time.Sleep(delay)
		}
	}

	return last, nil
}

func printMatrix(out io.Writer, name string, m matrix.Matrix, prec int) error {
	s, err := report.FormatMatrix(m, prec)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s =\n%s\n", name, s)

	return nil
}

// printResidual prints ‖A·x − b‖∞ of a computed solution.
func printResidual(out io.Writer, a matrix.Matrix, x, b []float64) error {
	r, err := matrix.Residual(a, x, b)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "residual = %.2e\n", r)

	return nil
}
