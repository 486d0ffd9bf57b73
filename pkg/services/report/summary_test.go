package report

import (
	"testing"

	"github.com/de-tools/pnl-dashboard/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	records := []domain.DisplayRecord{
		{Date: "2024-01-03", Revenue: 300, COGS: 100, AdsCost: 25.75},
		{Date: InvalidDate, Revenue: 0, COGS: 0, AdsCost: 0},
		{Date: "2024-01-01", Revenue: 10, COGS: 20.25, AdsCost: 15},
	}

	report := Summarize(records)

	assert.Equal(t, "Profit and Loss (P&L)", report.Title)
	assert.Equal(t, domain.DatePeriod{Start: "2024-01-01", End: "2024-01-03", Days: 3}, report.Period)
	assert.Equal(t, 310.0, report.Totals.Revenue)
	assert.Equal(t, 120.25, report.Totals.COGS)
	assert.Equal(t, 40.75, report.Totals.AdsCost)
	assert.Equal(t, "149.00", report.Totals.PL)
	assert.Len(t, report.Records, 3)
}

func TestSummarize_Empty(t *testing.T) {
	report := Summarize(nil)

	assert.Equal(t, domain.DatePeriod{}, report.Period)
	assert.Equal(t, "0.00", report.Totals.PL)
}
