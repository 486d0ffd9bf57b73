package domain

// Report represents a rendered P&L report
type Report struct {
	Title    string
	Period   DatePeriod
	Records  []DisplayRecord
	Totals   Totals
	Currency string
}

// DatePeriod is the normalized date range covered by the records
type DatePeriod struct {
	Start string
	End   string
	Days  int
}

// Totals are column sums over a record set
type Totals struct {
	Revenue float64
	COGS    float64
	AdsCost float64
	PL      string
}
