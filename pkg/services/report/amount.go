package report

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

const (
	// NaNMarker is rendered in place of a P&L value that cannot be computed.
	NaNMarker = "NaN"

	plPlaces = 2
)

// leadingFloat matches the longest decimal literal at the start of a string.
var leadingFloat = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

// ParseAmount coerces a raw JSON value into a float64. Numbers are taken as-is.
// Strings are parsed by their leading numeric prefix, so "12.5 USD" yields 12.5.
// Everything else, including strings without a numeric prefix, yields NaN.
func ParseAmount(v gjson.Result) float64 {
	switch v.Type {
	case gjson.Number:
		return v.Num
	case gjson.String:
		return parseLeadingFloat(v.Str)
	default:
		return math.NaN()
	}
}

func parseLeadingFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	literal := leadingFloat.FindString(s)
	if literal == "" {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		var numErr *strconv.NumError
		// out of range literals overflow to ±Inf, which ParseFloat still returns
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return f
		}
		return math.NaN()
	}
	return f
}

// ProfitLoss returns revenue - cogs - adsCost formatted with two decimals.
func ProfitLoss(revenue, cogs, adsCost float64) string {
	return FormatPL(revenue - cogs - adsCost)
}

// FormatPL renders v with exactly two decimal digits. The magnitude is rounded
// half away from zero on its shortest decimal representation and the sign is
// kept even when the rounded magnitude is zero: 0.125 -> "0.13",
// -0.004 -> "-0.00", 1.005 -> "1.01".
func FormatPL(v float64) string {
	switch {
	case math.IsNaN(v):
		return NaNMarker
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	fixed := decimal.NewFromFloat(math.Abs(v)).StringFixed(plPlaces)
	if v < 0 {
		return "-" + fixed
	}
	return fixed
}
