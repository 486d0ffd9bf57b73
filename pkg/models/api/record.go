package api

import (
	"bytes"
	"encoding/json"
	"math"
)

// Amount is a float64 that encodes NaN and ±Inf as JSON null.
type Amount float64

func (a Amount) MarshalJSON() ([]byte, error) {
	f := float64(a)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*a = Amount(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*a = Amount(f)
	return nil
}

type Record struct {
	Date    string `json:"date"`
	Revenue Amount `json:"revenue"`
	COGS    Amount `json:"cogs"`
	AdsCost Amount `json:"ads_cost"`
	PL      string `json:"p_l"`
}

type RecordsResponse struct {
	Status  string   `json:"status"`
	Records []Record `json:"records"`
}

type ChartDataset struct {
	Label       string   `json:"label"`
	Data        []Amount `json:"data"`
	Fill        bool     `json:"fill"`
	BorderColor string   `json:"borderColor"`
	Tension     float64  `json:"tension"`
}

type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}
