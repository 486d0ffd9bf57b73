package export

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/de-tools/pnl-dashboard/pkg/models/domain"
)

type TableConfig struct {
	DateWidth    int
	RevenueWidth int
	COGSWidth    int
	AdsCostWidth int
	PLWidth      int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		DateWidth:    12,
		RevenueWidth: 14,
		COGSWidth:    18,
		AdsCostWidth: 14,
		PLWidth:      14,
	}
}

// Reporter prints the P&L records as a fixed width table
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(report *domain.Report) error {
	funcMap := template.FuncMap{
		"formatRow": func(date, revenue, cogs, adsCost, pl string) string {
			return fmt.Sprintf("| %-*s | %*s | %*s | %*s | %*s |",
				c.config.DateWidth, date,
				c.config.RevenueWidth, revenue,
				c.config.COGSWidth, cogs,
				c.config.AdsCostWidth, adsCost,
				c.config.PLWidth, pl)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.DateWidth+2),
				strings.Repeat("-", c.config.RevenueWidth+2),
				strings.Repeat("-", c.config.COGSWidth+2),
				strings.Repeat("-", c.config.AdsCostWidth+2),
				strings.Repeat("-", c.config.PLWidth+2))
		},
		"amount": FormatAmount,
	}

	tmpl := `
{{.Title}}
{{if .Period.Start}}Period: {{.Period.Start}} to {{.Period.End}} ({{.Period.Days}} days)
{{end}}
{{separator}}
{{formatRow "Date" "Revenue" "Cost of Goods Sold" "Ads Cost" "Profit & Loss"}}
{{separator}}
{{range .Records}}{{formatRow .Date (amount .Revenue) (amount .COGS) (amount .AdsCost) .PL}}
{{end}}{{separator}}
{{formatRow "Total" (amount .Totals.Revenue) (amount .Totals.COGS) (amount .Totals.AdsCost) .Totals.PL}}
{{separator}}
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}

// FormatAmount renders v with the shortest representation that round-trips.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
