// Package dateutils provides the calendar-date helpers used by the transaction core.
// Transaction dates carry no time of day: they are normalised to midnight UTC.
package dateutils

import (
	"regexp"
	"strings"
	"time"
)

// Date layouts
const (
	LayoutBR  = "02/01/2006"
	LayoutISO = "2006-01-02"
)

// Bounds used when a date range is open on one side.
var (
	MinDate = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	MaxDate = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
)

var spaces = regexp.MustCompile(`\s+`)

// CleanDateString trims and collapses whitespace.
func CleanDateString(dateStr string) string {
	return spaces.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// Normalize drops the time of day and location, keeping the calendar date as seen in t's location.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date in local time, normalised.
func Today(now time.Time) time.Time {
	return Normalize(now.Local())
}

// FormatDate formats a date using layout, defaulting to LayoutBR.
func FormatDate(date time.Time, layout string) string {
	if layout == "" {
		layout = LayoutBR
	}
	return date.Format(layout)
}

// OrMin returns MinDate for the zero time.
func OrMin(t time.Time) time.Time {
	if t.IsZero() {
		return MinDate
	}
	return t
}

// OrMax returns MaxDate for the zero time.
func OrMax(t time.Time) time.Time {
	if t.IsZero() {
		return MaxDate
	}
	return t
}
