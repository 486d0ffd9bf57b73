package report

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/tidwall/gjson"
)

// InvalidDate is the normalized form of a date that could not be parsed.
const InvalidDate = "NaN-NaN-NaN"

// maxEpochMillis bounds the representable timestamp range (±100,000,000 days).
const maxEpochMillis = 8.64e15

// date-only ISO forms are read as UTC
var utcDateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006",
}

// date-time ISO forms; the ones without a zone are read in localZone
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

var localZone = time.Local

// endOfDay matches an ISO 24:00 time, which denotes midnight of the next day.
var endOfDay = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})T24:00(?::00(?:\.0+)?)?(Z|[+-]\d{2}:\d{2})?$`)

// NormalizeDate renders a timestamp as YYYY-MM-DD using its UTC calendar
// fields. Strings are parsed as ISO-8601 (with a lenient fallback for other
// common layouts), numbers are epoch milliseconds. Anything else, or a string
// that does not parse, yields InvalidDate.
func NormalizeDate(v gjson.Result) string {
	var (
		t  time.Time
		ok bool
	)
	switch v.Type {
	case gjson.String:
		t, ok = parseTimestamp(v.Str)
	case gjson.Number:
		t, ok = fromEpochMillis(v.Num)
	}
	if !ok {
		return InvalidDate
	}
	return FormatDate(t)
}

// FormatDate renders the UTC calendar date of t.
func FormatDate(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if m := endOfDay.FindStringSubmatch(s); m != nil {
		t, ok := parseTimestamp(m[1] + "T00:00" + m[2])
		if !ok {
			return time.Time{}, false
		}
		return t.AddDate(0, 0, 1), true
	}

	for _, layout := range utcDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, localZone); err == nil {
			return t, true
		}
	}

	t, err := cast.ToTimeInDefaultLocationE(s, localZone)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func fromEpochMillis(ms float64) (time.Time, bool) {
	if math.IsNaN(ms) || math.Abs(ms) > maxEpochMillis {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(ms)).UTC(), true
}
