package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/de-tools/pnl-dashboard/pkg/runtime/chart"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type ChartCmd struct {
	out     string
	factory ControllerFactory
}

func NewChartCmd(factory ControllerFactory) *cobra.Command {
	cc := &ChartCmd{factory: factory}
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render the revenue line chart as an HTML page",
		RunE:  cc.run,
	}

	cmd.Flags().StringVarP(&cc.out, "out", "o", "revenue.html", "Output file, - for stdout")

	return cmd
}

func (cc *ChartCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	snapshot, err := loadSnapshot(ctx, cc.factory)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if cc.out != "-" {
		f, err := os.Create(cc.out)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", cc.out, err)
		}
		defer f.Close()
		w = f
	}

	if err := chart.Render(w, snapshot.Chart); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	zerolog.Ctx(ctx).Info().
		Str("out", cc.out).
		Int("points", len(snapshot.Chart.Labels)).
		Msg("chart rendered")
	return nil
}
