package pkg

import (
	"testing"
	"time"
)

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "monday maps to itself",
			in:   time.Date(2024, 7, 1, 15, 30, 0, 0, time.UTC),
			want: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "wednesday maps back to monday",
			in:   time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday belongs to the preceding monday",
			in:   time.Date(2024, 7, 7, 23, 59, 59, 0, time.UTC),
			want: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "week spanning a month boundary",
			in:   time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC),
			want: time.Date(2024, 7, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			// 01:00 UTC+9 on Monday is still Sunday in UTC
			name: "non-utc zone is normalised first",
			in:   time.Date(2024, 7, 8, 1, 0, 0, 0, time.FixedZone("UTC+9", 9*60*60)),
			want: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekStart(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("WeekStart(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 7, 1, 23, 59, 0, 0, time.UTC)
	b := time.Date(2024, 7, 1, 0, 1, 0, 0, time.UTC)
	if !SameDay(a, b) {
		t.Error("expected same UTC day")
	}

	c := time.Date(2024, 7, 2, 0, 0, 1, 0, time.UTC)
	if SameDay(a, c) {
		t.Error("expected different UTC days")
	}

	// 01:00 UTC+9 is still the previous day in UTC
	d := time.Date(2024, 7, 2, 1, 0, 0, 0, time.FixedZone("UTC+9", 9*60*60))
	if !SameDay(a, d) {
		t.Error("expected zone-normalised times to share a UTC day")
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{
			name: "consecutive days",
			a:    time.Date(2024, 7, 1, 23, 59, 0, 0, time.UTC),
			b:    time.Date(2024, 7, 2, 0, 1, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "same day",
			a:    time.Date(2024, 7, 1, 1, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 7, 1, 23, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "gap across month boundary",
			a:    time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 7, 2, 12, 0, 0, 0, time.UTC),
			want: 2,
		},
		{
			name: "negative when b precedes a",
			a:    time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			want: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("DaysBetween(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestUntilEndOfDay(t *testing.T) {
	now := time.Date(2024, 7, 1, 23, 0, 0, 0, time.UTC)
	if got := UntilEndOfDay(now); got != time.Hour {
		t.Errorf("UntilEndOfDay = %v, want 1h", got)
	}
}

func TestUntilEndOfWeek(t *testing.T) {
	// Sunday 23:00, next Monday is one hour away
	now := time.Date(2024, 7, 7, 23, 0, 0, 0, time.UTC)
	if got := UntilEndOfWeek(now); got != time.Hour {
		t.Errorf("UntilEndOfWeek = %v, want 1h", got)
	}
}
