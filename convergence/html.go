package convergence

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// missing marks a point echarts should leave out of a series.
const missing = "-"

// NewLineChart builds an interactive ECharts line chart for traces.
// Points a log axis cannot show are left as gaps.
func NewLineChart(traces ...Trace) (*charts.Line, error) {
	longest := 0
	for _, tr := range traces {
		if len(tr.points()) > 0 && len(tr.Errors) > longest {
			longest = len(tr.Errors)
		}
	}
	if longest == 0 {
		return nil, ErrNoData
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Convergence",
			Theme:     types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Convergence",
			Subtitle: "max |x_new - x_old| per sweep",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Right: "10"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "iteration"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "error", Type: "log"}),
	)

	sweeps := make([]int, longest)
	for k := range sweeps {
		sweeps[k] = k + 1
	}
	line.SetXAxis(sweeps)

	for _, tr := range traces {
		if len(tr.points()) == 0 {
			continue
		}
		data := make([]opts.LineData, longest)
		for k := range data {
			data[k].Value = missing
			if k < len(tr.Errors) && plottable(tr.Errors[k]) {
				data[k].Value = tr.Errors[k]
			}
		}
		line.AddSeries(tr.Name, data)
	}

	return line, nil
}

// RenderHTML writes a standalone HTML page with the interactive chart.
func RenderHTML(w io.Writer, traces ...Trace) error {
	line, err := NewLineChart(traces...)
	if err != nil {
		return err
	}
	if err = line.Render(w); err != nil {
		return fmt.Errorf("convergence: render html: %w", err)
	}

	return nil
}
