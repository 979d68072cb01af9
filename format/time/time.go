// Package time translates ISO 8601 style date format patterns into Go
// reference time layouts and parses datetime text leniently against them.
package time

import (
	"strings"
	"time"
)

var dateFormatToTimeLayoutReplacer = strings.NewReplacer(
	"YYYY", "2006",
	"yyyy", "2006",
	"MM", "01",
	"M", "1",
	"DD", "02",
	"dd", "02",
	"D", "2",
	"+hh:mm", "Z07:00",
	"+hhmm", "Z0700",
	"+hh", "Z07",
	"-hh:mm", "Z07:00",
	"-hhmm", "Z0700",
	"HH", "15",
	"hh", "15",
	"mm", "04",
	"m", "4",
	"ss", "05",
	".SSS", ".999",
	".SS", ".99",
	".S", ".9",
	"-hh", "Z07",
	"Z", "Z07:00",
)

// DateFormatToTimeLayout converts an ISO style date format pattern to a Go
// reference time layout. Text already in layout form passes through intact.
func DateFormatToTimeLayout(dateFormat string) string {
	return dateFormatToTimeLayoutReplacer.Replace(dateFormat)
}

// Parse parses value against layout in UTC, tolerating a T/space fragment
// mismatch and truncated value or layout endings.
func Parse(layout, value string) (time.Time, error) {
	if layout == "" {
		layout = time.RFC3339
	}
	if strings.Contains(value, "T") != strings.Contains(layout, "T") {
		layout = strings.Replace(layout, "T", " ", 1)
		value = strings.Replace(value, "T", " ", 1)
	}
	t, err := time.ParseInLocation(layout, value, time.UTC)
	if err != nil {
		if len(value) > len(layout) {
			t, err = time.ParseInLocation(layout, value[:len(layout)], time.UTC)
		} else {
			t, err = time.ParseInLocation(layout[:len(value)], value, time.UTC)
		}
	}
	return t, err
}

// Format renders ts with the supplied layout, defaulting to RFC3339.
func Format(layout string, ts time.Time) string {
	if layout == "" {
		layout = time.RFC3339
	}
	return ts.Format(layout)
}
