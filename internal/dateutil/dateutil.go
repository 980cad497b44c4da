// Package dateutil handles the calendar-day keys used throughout the
// system. Days are ISO dates (YYYY-MM-DD) carried as strings and compared
// lexicographically; "today" is always derived from the configured process
// timezone, never the machine's local clock.
package dateutil

import (
	"fmt"
	"time"
)

// DayLayout is the wire and storage format for calendar days.
const DayLayout = "2006-01-02"

// MonthLayout identifies a calendar month (YYYY-MM).
const MonthLayout = "2006-01"

// Key formats an instant as the day key of its calendar day in t's location.
func Key(t time.Time) string {
	return t.Format(DayLayout)
}

// KeyIn formats an instant as a day key after shifting into loc.
func KeyIn(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DayLayout)
}

// Today returns the current day key in the given location.
func Today(loc *time.Location) string {
	return time.Now().In(loc).Format(DayLayout)
}

// Parse converts a day key to midnight UTC of that day.
func Parse(key string) (time.Time, error) {
	t, err := time.Parse(DayLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing day %q: %w", key, err)
	}
	return t, nil
}

// Valid reports whether key is a well-formed day key.
func Valid(key string) bool {
	_, err := time.Parse(DayLayout, key)
	return err == nil
}

// AddDays shifts a day key by n calendar days.
func AddDays(key string, n int) string {
	t, err := Parse(key)
	if err != nil {
		return key
	}
	return t.AddDate(0, 0, n).Format(DayLayout)
}

// Range returns every day key from from to to inclusive. An inverted range
// yields nil.
func Range(from, to string) []string {
	start, err := Parse(from)
	if err != nil {
		return nil
	}
	end, err := Parse(to)
	if err != nil {
		return nil
	}

	var days []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(DayLayout))
	}
	return days
}

// MonthBounds returns the first and last day keys of a YYYY-MM month.
func MonthBounds(month string) (from, to string, err error) {
	t, err := time.Parse(MonthLayout, month)
	if err != nil {
		return "", "", fmt.Errorf("parsing month %q: %w", month, err)
	}
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format(DayLayout), last.Format(DayLayout), nil
}

// WeekdayIndex returns the Monday-first weekday index (Monday = 0) of a day
// key, matching the heatmap's column layout.
func WeekdayIndex(key string) int {
	t, err := Parse(key)
	if err != nil {
		return 0
	}
	return (int(t.Weekday()) + 6) % 7
}

// DayOfMonth returns the 1-based day number of a day key.
func DayOfMonth(key string) int {
	t, err := Parse(key)
	if err != nil {
		return 0
	}
	return t.Day()
}
