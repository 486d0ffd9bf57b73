package report

import (
	"time"

	"github.com/de-tools/pnl-dashboard/pkg/models/domain"
)

const reportTitle = "Profit and Loss (P&L)"

// Summarize builds a report over records: column totals and the covered date
// range. Invalid dates are left out of the range.
func Summarize(records []domain.DisplayRecord) *domain.Report {
	report := &domain.Report{
		Title:    reportTitle,
		Records:  records,
		Currency: "USD",
	}

	for _, r := range records {
		report.Totals.Revenue += r.Revenue
		report.Totals.COGS += r.COGS
		report.Totals.AdsCost += r.AdsCost

		if r.Date == InvalidDate {
			continue
		}
		if report.Period.Start == "" || r.Date < report.Period.Start {
			report.Period.Start = r.Date
		}
		if r.Date > report.Period.End {
			report.Period.End = r.Date
		}
	}
	report.Totals.PL = ProfitLoss(report.Totals.Revenue, report.Totals.COGS, report.Totals.AdsCost)
	report.Period.Days = periodDays(report.Period.Start, report.Period.End)

	return report
}

func periodDays(start, end string) int {
	s, err := time.Parse(time.DateOnly, start)
	if err != nil {
		return 0
	}
	e, err := time.Parse(time.DateOnly, end)
	if err != nil {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}
