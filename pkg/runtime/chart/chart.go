package chart

import (
	"io"
	"math"

	"github.com/de-tools/pnl-dashboard/pkg/models/domain"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const DefaultTitle = "Revenue Graph"

// NewLine builds a line chart with one series per dataset over the shared labels.
func NewLine(data domain.ChartData, title string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title}),
		charts.WithTitleOpts(opts.Title{Title: title, Left: "center"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category"}),
	)

	line.SetXAxis(data.Labels)
	for _, ds := range data.Datasets {
		line.AddSeries(ds.Label, toLineData(ds.Data),
			charts.WithLineStyleOpts(opts.LineStyle{Color: ds.BorderColor}),
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(ds.Tension > 0)}),
		)
	}
	return line
}

// Render writes the chart as a standalone HTML page.
func Render(w io.Writer, data domain.ChartData) error {
	return NewLine(data, DefaultTitle).Render(w)
}

// values that are not numbers become gaps in the line
func toLineData(series []float64) []opts.LineData {
	line := make([]opts.LineData, len(series))
	for i, v := range series {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			line[i] = opts.LineData{Value: nil}
			continue
		}
		line[i] = opts.LineData{Value: v}
	}
	return line
}
