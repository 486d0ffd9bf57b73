package domain

import "github.com/tidwall/gjson"

// RawRecord is a single day's entry as delivered by the reporting endpoint.
// Fields keep the raw JSON value: a number, a numeric string, or anything else.
type RawRecord struct {
	Date    gjson.Result
	Revenue gjson.Result
	COGS    gjson.Result
	AdsCost gjson.Result
}

// DisplayRecord is a RawRecord after numeric coercion, date normalization
// and profit/loss derivation.
type DisplayRecord struct {
	Date    string  // 2024-01-01
	Revenue float64 // NaN when the source value is not numeric
	COGS    float64
	AdsCost float64
	PL      string // Revenue - COGS - AdsCost, two decimals
}

type Dataset struct {
	Label       string
	Data        []float64
	Fill        bool
	BorderColor string
	Tension     float64
}

// ChartData is one labeled series for a line chart renderer.
type ChartData struct {
	Labels   []string
	Datasets []Dataset
}
