// Package datetime provides date and time utility functions.
package datetime

import (
	"time"

	"github.com/iwvelando/paint-bid/pkg/constants"
)

// DateLayout is the format of job dates in config files and bid records.
const DateLayout = constants.DateLayout

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseJobDate parses a job date in DateLayout.
func ParseJobDate(date string) (time.Time, error) {
	return time.Parse(DateLayout, date)
}

// FormatJobDate renders a job date in layout. A date that does not parse is
// returned unchanged.
func FormatJobDate(date, layout string) string {
	t, err := ParseJobDate(date)
	if err != nil {
		return date
	}
	return t.Format(layout)
}

// OffsetDays returns the date the given number of days after t, formatted
// with layout.
func OffsetDays(t time.Time, layout string, days int) string {
	return t.AddDate(0, 0, days).Format(layout)
}
