package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/pnl-dashboard/pkg/models/domain"
)

// Reporter outputs the report totals to the console in a formatted text form
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(report *domain.Report) error {
	tmpl := `
{{.Title}}{{if .Period.Start}} ({{.Period.Days}} days)
Period: {{.Period.Start}} to {{.Period.End}}{{end}}
Records: {{len .Records}}
Revenue: {{.Currency}} {{printf "%.2f" .Totals.Revenue}}
Cost of Goods Sold: {{.Currency}} {{printf "%.2f" .Totals.COGS}}
Ads Cost: {{.Currency}} {{printf "%.2f" .Totals.AdsCost}}
Profit & Loss: {{.Currency}} {{.Totals.PL}}
`
	t, err := template.New("summary").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
