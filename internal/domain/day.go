package domain

import (
	"strings"
	"time"
)

// Day-aligned timestamps are the addressable unit of the trip timeline:
// a time.Time truncated to midnight UTC of its calendar day. All Start/End/
// Day fields in this package hold day-aligned values.

// DayAlign normalizes t to midnight UTC of its calendar day.
func DayAlign(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NextDay returns the day-aligned timestamp one calendar day after d.
func NextDay(d time.Time) time.Time {
	return d.AddDate(0, 0, 1)
}

// PrevDay returns the day-aligned timestamp one calendar day before d.
func PrevDay(d time.Time) time.Time {
	return d.AddDate(0, 0, -1)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DayAlign(a).Equal(DayAlign(b))
}

// DaysIn returns every day-aligned timestamp in [start, end] inclusive,
// in ascending order. An inverted range yields nil.
func DaysIn(start, end time.Time) []time.Time {
	start, end = DayAlign(start), DayAlign(end)
	var days []time.Time
	for d := start; !d.After(end); d = NextDay(d) {
		days = append(days, d)
	}
	return days
}

// DayNumber returns the 1-based position of day within a trip starting at
// start (start itself is day 1).
func DayNumber(start, day time.Time) int {
	start, day = DayAlign(start), DayAlign(day)
	return int(day.Sub(start).Hours()/24) + 1
}

// FirstNonBlank returns the first value that is not blank after trimming
// whitespace, or "" when every value is blank. Location and label fallback
// chains use it so the precedence stays in one auditable place.
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
