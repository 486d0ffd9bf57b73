package dashboard

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/de-tools/pnl-dashboard/pkg/adapters"
	"github.com/de-tools/pnl-dashboard/pkg/models/api"
	"github.com/de-tools/pnl-dashboard/pkg/runtime/chart"
	"github.com/de-tools/pnl-dashboard/pkg/services/report"
	"github.com/de-tools/pnl-dashboard/pkg/services/view"
	"github.com/rs/zerolog"
)

const (
	orderAsc  = "asc"
	orderDesc = "desc"
)

type Handler struct {
	view view.Controller
}

func NewHandler(viewCtrl view.Controller) *Handler {
	return &Handler{view: viewCtrl}
}

// ListRecords serves the P&L table, optionally sorted by ?sort=<column>&order=asc|desc.
func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	column := r.URL.Query().Get("sort")
	descending, err := parseOrder(r.URL.Query().Get("order"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	snapshot := h.view.Snapshot()
	records := snapshot.Records
	if column != "" {
		records, err = report.SortRecords(records, column, descending)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	response := api.RecordsResponse{
		Status:  string(snapshot.Status),
		Records: adapters.MapDisplayRecordsDomainToApi(records),
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode records")
	}
}

func (h *Handler) GetChartData(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	snapshot := h.view.Snapshot()

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(adapters.MapChartDataDomainToApi(snapshot.Chart))
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode chart data")
	}
}

func (h *Handler) RenderChart(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	snapshot := h.view.Snapshot()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := chart.Render(w, snapshot.Chart)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to render chart")
	}
}

func parseOrder(order string) (bool, error) {
	switch order {
	case "", orderAsc:
		return false, nil
	case orderDesc:
		return true, nil
	default:
		return false, fmt.Errorf("invalid order %q. Expected %s or %s", order, orderAsc, orderDesc)
	}
}
