package report

import "github.com/de-tools/pnl-dashboard/pkg/models/domain"

const (
	RevenueSeriesLabel = "Revenue"
	revenueLineColor   = "rgb(90, 180, 180)"
	revenueLineTension = 0.1
)

// BuildChartData packages normalized records as a single revenue series.
// Labels and values are taken from the records as they are, in order.
func BuildChartData(records []domain.DisplayRecord) domain.ChartData {
	labels := make([]string, 0, len(records))
	revenues := make([]float64, 0, len(records))
	for _, r := range records {
		labels = append(labels, r.Date)
		revenues = append(revenues, r.Revenue)
	}

	return domain.ChartData{
		Labels: labels,
		Datasets: []domain.Dataset{{
			Label:       RevenueSeriesLabel,
			Data:        revenues,
			Fill:        false,
			BorderColor: revenueLineColor,
			Tension:     revenueLineTension,
		}},
	}
}
