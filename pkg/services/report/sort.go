package report

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/de-tools/pnl-dashboard/pkg/models/domain"
)

const (
	ColumnDate    = "date"
	ColumnRevenue = "revenue"
	ColumnCOGS    = "cogs"
	ColumnAdsCost = "ads_cost"
	ColumnPL      = "p_l"
)

// Columns lists the table columns in display order.
var Columns = []string{ColumnDate, ColumnRevenue, ColumnCOGS, ColumnAdsCost, ColumnPL}

// SortRecords returns a stably sorted copy of records ordered by column.
// Values that are not numbers (and invalid dates) always sort last.
func SortRecords(records []domain.DisplayRecord, column string, descending bool) ([]domain.DisplayRecord, error) {
	var compare func(a, b domain.DisplayRecord) int
	switch column {
	case ColumnDate:
		compare = func(a, b domain.DisplayRecord) int {
			return compareDates(a.Date, b.Date, descending)
		}
	case ColumnRevenue:
		compare = byAmount(func(r domain.DisplayRecord) float64 { return r.Revenue }, descending)
	case ColumnCOGS:
		compare = byAmount(func(r domain.DisplayRecord) float64 { return r.COGS }, descending)
	case ColumnAdsCost:
		compare = byAmount(func(r domain.DisplayRecord) float64 { return r.AdsCost }, descending)
	case ColumnPL:
		compare = byAmount(plValue, descending)
	default:
		return nil, fmt.Errorf("unknown column %q, expected one of %v", column, Columns)
	}

	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, compare)
	return sorted, nil
}

func byAmount(value func(domain.DisplayRecord) float64, descending bool) func(a, b domain.DisplayRecord) int {
	return func(a, b domain.DisplayRecord) int {
		va, vb := value(a), value(b)
		aNaN, bNaN := math.IsNaN(va), math.IsNaN(vb)
		switch {
		case aNaN && bNaN:
			return 0
		case aNaN:
			return 1
		case bNaN:
			return -1
		}
		if descending {
			return cmp.Compare(vb, va)
		}
		return cmp.Compare(va, vb)
	}
}

func compareDates(a, b string, descending bool) int {
	aInvalid, bInvalid := a == InvalidDate, b == InvalidDate
	switch {
	case aInvalid && bInvalid:
		return 0
	case aInvalid:
		return 1
	case bInvalid:
		return -1
	}
	if descending {
		return cmp.Compare(b, a)
	}
	return cmp.Compare(a, b)
}

func plValue(r domain.DisplayRecord) float64 {
	v, err := strconv.ParseFloat(r.PL, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
