package view

import (
	"context"
	"slices"
	"sync"

	"github.com/de-tools/pnl-dashboard/pkg/models/domain"
	"github.com/de-tools/pnl-dashboard/pkg/services/report"
	"github.com/de-tools/pnl-dashboard/pkg/store/client"
	"github.com/rs/zerolog"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// Snapshot is a read-only copy of the display state.
type Snapshot struct {
	Status  Status
	Records []domain.DisplayRecord
	Chart   domain.ChartData
}

type Controller interface {
	Activate(ctx context.Context) <-chan struct{}
	Deactivate()
	Snapshot() Snapshot
}

type activation struct {
	cancelFunc context.CancelFunc
	done       chan struct{}
}

// DefaultController owns the display state. The fetch goroutine of the current
// activation is its only writer.
type DefaultController struct {
	client client.ReportClient

	mu     sync.Mutex
	active *activation
	state  Snapshot
}

func NewController(reportClient client.ReportClient) *DefaultController {
	return &DefaultController{
		client: reportClient,
		state:  newSnapshot(StatusIdle, nil),
	}
}

// Activate starts the single fetch of this activation and returns a channel
// closed once its result has been published or dropped. Calling Activate on
// an active controller returns the pending channel without fetching again.
func (ctrl *DefaultController) Activate(ctx context.Context) <-chan struct{} {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()

	if ctrl.active != nil {
		return ctrl.active.done
	}

	ctx, cancel := context.WithCancel(ctx)
	act := &activation{
		cancelFunc: cancel,
		done:       make(chan struct{}),
	}
	ctrl.active = act
	ctrl.state = newSnapshot(StatusLoading, nil)

	go ctrl.load(ctx, act)
	return act.done
}

// Deactivate cancels the pending fetch, waits for it to exit and discards
// the display state.
func (ctrl *DefaultController) Deactivate() {
	ctrl.mu.Lock()
	act := ctrl.active
	ctrl.active = nil
	ctrl.state = newSnapshot(StatusIdle, nil)
	ctrl.mu.Unlock()

	if act == nil {
		return
	}
	act.cancelFunc()
	<-act.done
}

func (ctrl *DefaultController) Snapshot() Snapshot {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()

	return Snapshot{
		Status:  ctrl.state.Status,
		Records: slices.Clone(ctrl.state.Records),
		Chart:   cloneChart(ctrl.state.Chart),
	}
}

func (ctrl *DefaultController) load(ctx context.Context, act *activation) {
	defer close(act.done)
	logger := zerolog.Ctx(ctx)

	raw, err := ctrl.client.FetchRecords(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to fetch report records")
		ctrl.publish(ctx, act, StatusFailed, nil)
		return
	}

	records := report.Normalize(raw)
	logger.Info().Int("records", len(records)).Msg("report records loaded")
	ctrl.publish(ctx, act, StatusReady, records)
}

// publish replaces the display state in one assignment, unless act has been
// deactivated in the meantime.
func (ctrl *DefaultController) publish(ctx context.Context, act *activation, status Status, records []domain.DisplayRecord) {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()

	if ctrl.active != act || ctx.Err() != nil {
		zerolog.Ctx(ctx).Debug().Str("status", string(status)).Msg("view deactivated, dropping fetch result")
		return
	}
	ctrl.state = newSnapshot(status, records)
}

func newSnapshot(status Status, records []domain.DisplayRecord) Snapshot {
	if records == nil {
		records = []domain.DisplayRecord{}
	}
	return Snapshot{
		Status:  status,
		Records: records,
		Chart:   report.BuildChartData(records),
	}
}

func cloneChart(chart domain.ChartData) domain.ChartData {
	datasets := make([]domain.Dataset, 0, len(chart.Datasets))
	for _, ds := range chart.Datasets {
		ds.Data = slices.Clone(ds.Data)
		datasets = append(datasets, ds)
	}
	return domain.ChartData{
		Labels:   slices.Clone(chart.Labels),
		Datasets: datasets,
	}
}
