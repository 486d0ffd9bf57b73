package report

import "github.com/de-tools/pnl-dashboard/pkg/models/domain"

// Normalize maps raw records to display records in their original order.
// It returns a new slice and never touches the input.
func Normalize(raw []domain.RawRecord) []domain.DisplayRecord {
	records := make([]domain.DisplayRecord, 0, len(raw))
	for _, r := range raw {
		records = append(records, NormalizeRecord(r))
	}
	return records
}

// NormalizeRecord coerces one raw record and attaches its P&L.
func NormalizeRecord(r domain.RawRecord) domain.DisplayRecord {
	revenue := ParseAmount(r.Revenue)
	cogs := ParseAmount(r.COGS)
	adsCost := ParseAmount(r.AdsCost)

	return domain.DisplayRecord{
		Date:    NormalizeDate(r.Date),
		Revenue: revenue,
		COGS:    cogs,
		AdsCost: adsCost,
		PL:      ProfitLoss(revenue, cogs, adsCost),
	}
}
