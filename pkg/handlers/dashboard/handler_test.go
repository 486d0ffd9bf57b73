package dashboard

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/de-tools/pnl-dashboard/pkg/models/api"
	"github.com/de-tools/pnl-dashboard/pkg/models/domain"
	"github.com/de-tools/pnl-dashboard/pkg/services/report"
	"github.com/de-tools/pnl-dashboard/pkg/services/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockViewController struct {
	mock.Mock
}

func (m *mockViewController) Activate(ctx context.Context) <-chan struct{} {
	args := m.Called(ctx)
	return args.Get(0).(<-chan struct{})
}

func (m *mockViewController) Deactivate() {
	m.Called()
}

func (m *mockViewController) Snapshot() view.Snapshot {
	args := m.Called()
	return args.Get(0).(view.Snapshot)
}

func readySnapshot() view.Snapshot {
	records := []domain.DisplayRecord{
		{Date: "2024-01-01", Revenue: 100.5, COGS: 40, AdsCost: 10.5, PL: "50.00"},
		{Date: "2024-01-02", Revenue: 250, COGS: 100, AdsCost: 20, PL: "130.00"},
		{Date: "2024-01-03", Revenue: math.NaN(), COGS: 10, AdsCost: 1, PL: "NaN"},
	}
	return view.Snapshot{
		Status:  view.StatusReady,
		Records: records,
		Chart:   report.BuildChartData(records),
	}
}

func TestListRecords(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		snapshot       view.Snapshot
		expectedStatus int
		expectedState  string
		expectedDates  []string
	}{
		{
			name:           "records in source order",
			snapshot:       readySnapshot(),
			expectedStatus: http.StatusOK,
			expectedState:  "ready",
			expectedDates:  []string{"2024-01-01", "2024-01-02", "2024-01-03"},
		},
		{
			name:           "sorted by revenue descending",
			query:          "?sort=revenue&order=desc",
			snapshot:       readySnapshot(),
			expectedStatus: http.StatusOK,
			expectedState:  "ready",
			expectedDates:  []string{"2024-01-02", "2024-01-01", "2024-01-03"},
		},
		{
			name:           "sorted by p_l ascending",
			query:          "?sort=p_l",
			snapshot:       readySnapshot(),
			expectedStatus: http.StatusOK,
			expectedState:  "ready",
			expectedDates:  []string{"2024-01-01", "2024-01-02", "2024-01-03"},
		},
		{
			name: "failed fetch renders empty table",
			snapshot: view.Snapshot{
				Status:  view.StatusFailed,
				Records: []domain.DisplayRecord{},
			},
			expectedStatus: http.StatusOK,
			expectedState:  "failed",
			expectedDates:  []string{},
		},
		{
			name:           "unknown column",
			query:          "?sort=margin",
			snapshot:       readySnapshot(),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid order",
			query:          "?sort=date&order=sideways",
			snapshot:       readySnapshot(),
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viewCtrl := new(mockViewController)
			viewCtrl.On("Snapshot").Return(tt.snapshot).Maybe()
			handler := NewHandler(viewCtrl)

			req := httptest.NewRequest("GET", "/api/v1/records"+tt.query, nil)
			rec := httptest.NewRecorder()

			handler.ListRecords(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var response api.RecordsResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
			assert.Equal(t, tt.expectedState, response.Status)

			dates := make([]string, 0, len(response.Records))
			for _, r := range response.Records {
				dates = append(dates, r.Date)
			}
			assert.Equal(t, tt.expectedDates, dates)
		})
	}
}

func TestListRecords_EncodesTableRow(t *testing.T) {
	viewCtrl := new(mockViewController)
	viewCtrl.On("Snapshot").Return(readySnapshot())
	handler := NewHandler(viewCtrl)

	req := httptest.NewRequest("GET", "/api/v1/records", nil)
	rec := httptest.NewRecorder()
	handler.ListRecords(rec, req)

	var raw struct {
		Records []map[string]interface{} `json:"records"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&raw))
	require.Len(t, raw.Records, 3)
	assert.Equal(t, map[string]interface{}{
		"date":     "2024-01-01",
		"revenue":  100.5,
		"cogs":     40.0,
		"ads_cost": 10.5,
		"p_l":      "50.00",
	}, raw.Records[0])
	assert.Nil(t, raw.Records[2]["revenue"])
	assert.Equal(t, "NaN", raw.Records[2]["p_l"])
	viewCtrl.AssertExpectations(t)
}

func TestGetChartData(t *testing.T) {
	viewCtrl := new(mockViewController)
	viewCtrl.On("Snapshot").Return(readySnapshot())
	handler := NewHandler(viewCtrl)

	req := httptest.NewRequest("GET", "/api/v1/chart", nil)
	rec := httptest.NewRecorder()
	handler.GetChartData(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"labels": ["2024-01-01", "2024-01-02", "2024-01-03"],
		"datasets": [{
			"label": "Revenue",
			"data": [100.5, 250, null],
			"fill": false,
			"borderColor": "rgb(90, 180, 180)",
			"tension": 0.1
		}]
	}`, rec.Body.String())
	viewCtrl.AssertExpectations(t)
}

func TestRenderChart(t *testing.T) {
	viewCtrl := new(mockViewController)
	viewCtrl.On("Snapshot").Return(readySnapshot())
	handler := NewHandler(viewCtrl)

	req := httptest.NewRequest("GET", "/chart", nil)
	rec := httptest.NewRecorder()
	handler.RenderChart(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Revenue Graph")
	viewCtrl.AssertExpectations(t)
}
