package pkg

import "time"

// Streaks and weekly challenges run on time-zone-naive UTC calendar days.

// UTCDate truncates t to midnight UTC.
func UTCDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the Monday 00:00 UTC of the week containing t.
func WeekStart(t time.Time) time.Time {
	day := UTCDate(t)
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return day.AddDate(0, 0, -offset)
}

// SameDay reports whether a and b fall on the same UTC calendar date.
func SameDay(a, b time.Time) bool {
	return UTCDate(a).Equal(UTCDate(b))
}

// DaysBetween returns whole calendar days from a to b (positive if b is
// later).
func DaysBetween(a, b time.Time) int {
	return int(UTCDate(b).Sub(UTCDate(a)).Hours() / 24)
}

// UntilEndOfDay returns the duration from now until the next UTC midnight.
func UntilEndOfDay(now time.Time) time.Duration {
	return UTCDate(now).AddDate(0, 0, 1).Sub(now.UTC())
}

// UntilEndOfWeek returns the duration from now until next Monday 00:00 UTC.
func UntilEndOfWeek(now time.Time) time.Duration {
	return WeekStart(now).AddDate(0, 0, 7).Sub(now.UTC())
}
