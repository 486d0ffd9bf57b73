package commands

import (
	"context"
	"fmt"

	"github.com/de-tools/pnl-dashboard/pkg/models/domain"
	"github.com/de-tools/pnl-dashboard/pkg/services/report"
	"github.com/de-tools/pnl-dashboard/pkg/services/view"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// ControllerFactory builds the view controller a command loads records through
type ControllerFactory func(ctx context.Context) (view.Controller, error)

type Reporter interface {
	Handle(report *domain.Report) error
}

type ReportCmd struct {
	sortBy     string
	descending bool
	format     string
	factory    ControllerFactory
	reporters  map[string]Reporter
}

func NewReportCmd(factory ControllerFactory, reporters map[string]Reporter) *cobra.Command {
	rc := &ReportCmd{factory: factory, reporters: reporters}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Fetch daily records and print the profit and loss table",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.sortBy, "sort", "", "Column to sort by (date, revenue, cogs, ads_cost, p_l)")
	cmd.Flags().BoolVar(&rc.descending, "desc", false, "Sort in descending order")
	cmd.Flags().StringVar(&rc.format, "format", "table", "Output format (table, summary)")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	reporter, ok := rc.reporters[rc.format]
	if !ok {
		return fmt.Errorf("unsupported format %q", rc.format)
	}

	snapshot, err := loadSnapshot(ctx, rc.factory)
	if err != nil {
		return err
	}
	if snapshot.Status == view.StatusFailed {
		zerolog.Ctx(ctx).Warn().Msg("report endpoint unavailable, showing an empty table")
	}

	records := snapshot.Records
	if rc.sortBy != "" {
		records, err = report.SortRecords(records, rc.sortBy, rc.descending)
		if err != nil {
			return err
		}
	}

	return reporter.Handle(report.Summarize(records))
}

// loadSnapshot runs one view activation to completion and returns its state.
func loadSnapshot(ctx context.Context, factory ControllerFactory) (view.Snapshot, error) {
	ctrl, err := factory(ctx)
	if err != nil {
		return view.Snapshot{}, fmt.Errorf("failed to create view controller: %w", err)
	}
	defer ctrl.Deactivate()

	select {
	case <-ctrl.Activate(ctx):
	case <-ctx.Done():
		return view.Snapshot{}, ctx.Err()
	}
	return ctrl.Snapshot(), nil
}
