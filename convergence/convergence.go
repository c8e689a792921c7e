// Package convergence renders the error history of iterative solves as charts.
//
// A Trace is the per-sweep update-step norm of one solve. Charts plot the
// sweep index on X and the error on a logarithmic Y axis, one line per trace,
// using gonum.org/v1/plot. The output format follows the file extension (Save)
// or an explicit format name (Render): png, svg, pdf, eps, jpg, tif. An
// interactive HTML page is available through RenderHTML (go-echarts).
package convergence

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/linsolve/iterative"
)

// Default chart size.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// ErrNoData is returned when no trace has a single plottable point.
var ErrNoData = errors.New("convergence: no plottable points")

// Trace is the error history of one solve. Errors[k] belongs to sweep k+1.
type Trace struct {
	Name   string
	Errors []float64
}

// Record drains steps and keeps the error of every sweep (the initial-guess
// record is skipped). It is the one place where a full history is materialized.
func Record(name string, steps iter.Seq[iterative.Iteration]) Trace {
	tr := Trace{Name: name}
	for it := range steps {
		if it.Index == 0 {
			continue
		}
		tr.Errors = append(tr.Errors, it.Error)
	}

	return tr
}

// points converts a trace to XY pairs, dropping values a log axis cannot show
// (zero, negative, NaN, ±Inf).
func (t Trace) points() plotter.XYs {
	pts := make(plotter.XYs, 0, len(t.Errors))
	for k, e := range t.Errors {
		if !plottable(e) {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(k + 1), Y: e})
	}

	return pts
}

func plottable(e float64) bool {
	return e > 0 && !math.IsInf(e, 0) && !math.IsNaN(e)
}

// NewPlot builds the chart for traces without writing it anywhere.
//
// Errors:
//   - ErrNoData when every trace is empty after filtering.
//   - plotter construction errors.
func NewPlot(traces ...Trace) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Convergence"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "max |x_new - x_old|"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	plotted := 0
	for i, tr := range traces {
		pts := tr.points()
		if len(pts) == 0 {
			continue
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("convergence: trace %q: %w", tr.Name, err)
		}
		line.LineStyle.Color = plotutil.Color(i)
		line.LineStyle.Width = vg.Points(1.5)

		marks, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("convergence: trace %q: %w", tr.Name, err)
		}
		marks.GlyphStyle.Color = plotutil.Color(i)
		marks.GlyphStyle.Shape = plotutil.Shape(i)

		p.Add(line, marks)
		p.Legend.Add(tr.Name, line, marks)
		plotted++
	}
	if plotted == 0 {
		return nil, ErrNoData
	}
	p.Legend.Top = true

	return p, nil
}

// Save writes the chart to path; the format follows the file extension.
// ".html" produces an interactive page (RenderHTML), anything else a static
// image through gonum/plot.
func Save(path string, traces ...Trace) error {
	if strings.EqualFold(filepath.Ext(path), ".html") {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("convergence: %w", err)
		}
		if err = RenderHTML(f, traces...); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}

	p, err := NewPlot(traces...)
	if err != nil {
		return err
	}
	if err = p.Save(DefaultWidth, DefaultHeight, path); err != nil {
		return fmt.Errorf("convergence: save %s: %w", path, err)
	}

	return nil
}

// Render writes the chart to w in the named format.
func Render(w io.Writer, format string, traces ...Trace) error {
	p, err := NewPlot(traces...)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(DefaultWidth, DefaultHeight, format)
	if err != nil {
		return fmt.Errorf("convergence: format %q: %w", format, err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("convergence: write: %w", err)
	}

	return nil
}
