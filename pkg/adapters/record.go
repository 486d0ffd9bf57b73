package adapters

import (
	"github.com/de-tools/pnl-dashboard/pkg/models/api"
	"github.com/de-tools/pnl-dashboard/pkg/models/domain"
)

func MapDisplayRecordDomainToApi(record domain.DisplayRecord) api.Record {
	return api.Record{
		Date:    record.Date,
		Revenue: api.Amount(record.Revenue),
		COGS:    api.Amount(record.COGS),
		AdsCost: api.Amount(record.AdsCost),
		PL:      record.PL,
	}
}

func MapDisplayRecordsDomainToApi(records []domain.DisplayRecord) []api.Record {
	out := make([]api.Record, 0, len(records))
	for _, r := range records {
		out = append(out, MapDisplayRecordDomainToApi(r))
	}
	return out
}

func MapChartDataDomainToApi(chart domain.ChartData) api.ChartData {
	apiChart := api.ChartData{
		Labels:   append([]string{}, chart.Labels...),
		Datasets: []api.ChartDataset{},
	}

	for _, ds := range chart.Datasets {
		apiChart.Datasets = append(apiChart.Datasets, MapDatasetDomainToApi(ds))
	}

	return apiChart
}

func MapDatasetDomainToApi(ds domain.Dataset) api.ChartDataset {
	data := make([]api.Amount, 0, len(ds.Data))
	for _, v := range ds.Data {
		data = append(data, api.Amount(v))
	}

	return api.ChartDataset{
		Label:       ds.Label,
		Data:        data,
		Fill:        ds.Fill,
		BorderColor: ds.BorderColor,
		Tension:     ds.Tension,
	}
}
