// Package dateutil resolves timestamps to canonical calendar days in a fixed
// timezone. Every edition is keyed by the day as observed in IST (UTC+5:30),
// regardless of where the server or the client happens to run.
package dateutil

import (
	"fmt"
	"time"
)

// DayFormat is the canonical key format for editions.
const DayFormat = "2006-01-02"

// IST is the single timezone all calendar math happens in.
var IST = time.FixedZone("IST", 5*3600+30*60)

// Normalize converts an arbitrary date or timestamp string into the canonical
// 'YYYY-MM-DD' day key.
//
// Parsing rule: a date-only string ('2006-01-02') is taken as an IST calendar
// day directly (midnight IST, not midnight UTC). A full RFC3339 timestamp is
// converted into IST first and then truncated to the day. This keeps
// '2025-02-10' meaning Feb 10 no matter which machine parses it.
func Normalize(s string) (string, error) {
	if t, err := time.ParseInLocation(DayFormat, s, IST); err == nil {
		return t.Format(DayFormat), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(IST).Format(DayFormat), nil
	}
	return "", fmt.Errorf("dateutil: cannot parse %q as a date", s)
}

// NormalizeTime converts an instant into the canonical day key.
func NormalizeTime(t time.Time) string {
	return t.In(IST).Format(DayFormat)
}

// Today returns the current IST day key.
func Today() string {
	return NormalizeTime(time.Now())
}

// Yesterday returns the IST day key for one day before now.
func Yesterday() string {
	return NormalizeTime(time.Now().AddDate(0, 0, -1))
}

// DayBefore returns the canonical day one calendar day before the given one.
func DayBefore(day string) (string, error) {
	t, err := time.ParseInLocation(DayFormat, day, IST)
	if err != nil {
		return "", fmt.Errorf("dateutil: invalid day %q: %w", day, err)
	}
	return t.AddDate(0, 0, -1).Format(DayFormat), nil
}

// IsFuture reports whether the given canonical day is after today in IST.
// Day keys sort lexicographically, so string comparison is exact.
func IsFuture(day string) bool {
	return day > Today()
}

// MonthDays lists every canonical day key in the given month, in order.
func MonthDays(year, month int) []string {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, IST)
	days := make([]string, 0, 31)
	for d := first; d.Month() == time.Month(month); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(DayFormat))
	}
	return days
}
