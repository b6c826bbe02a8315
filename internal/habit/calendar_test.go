package habit

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthDiff(t *testing.T) {
	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want int
	}{
		{
			name: "same month",
			a:    date(2024, time.July, 9),
			b:    date(2024, time.July, 30),
			want: 0,
		},
		{
			name: "adjacent months",
			a:    date(2024, time.August, 1),
			b:    date(2024, time.July, 31),
			want: 1,
		},
		{
			name: "full year apart",
			a:    date(2024, time.July, 9),
			b:    date(2023, time.July, 9),
			want: 12,
		},
		{
			name: "year boundary",
			a:    date(2024, time.January, 2),
			b:    date(2023, time.December, 28),
			want: 1,
		},
		{
			name: "negative when a precedes b",
			a:    date(2023, time.July, 9),
			b:    date(2024, time.July, 9),
			want: -12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthDiff(tt.a, tt.b); got != tt.want {
				t.Errorf("MonthDiff(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestWeekDiff(t *testing.T) {
	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want int
	}{
		{
			name: "same week different days",
			a:    date(2024, time.July, 10), // Wednesday
			b:    date(2024, time.July, 8),  // Monday
			want: 0,
		},
		{
			name: "adjacent weeks",
			a:    date(2024, time.July, 15),
			b:    date(2024, time.July, 10),
			want: 1,
		},
		{
			name: "year boundary week 52 to week 1",
			a:    date(2024, time.January, 1),   // Monday, ISO week 1
			b:    date(2023, time.December, 25), // Monday, ISO week 52
			want: 1,
		},
		{
			name: "negative direction",
			a:    date(2023, time.December, 25),
			b:    date(2024, time.January, 1),
			want: -1,
		},
		{
			name: "sunday belongs to the preceding monday's week",
			a:    date(2024, time.July, 14), // Sunday
			b:    date(2024, time.July, 8),  // Monday
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekDiff(tt.a, tt.b); got != tt.want {
				t.Errorf("WeekDiff(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDayDiff(t *testing.T) {
	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want int
	}{
		{"same day ignores time", time.Date(2024, time.July, 9, 23, 0, 0, 0, time.UTC), time.Date(2024, time.July, 9, 1, 0, 0, 0, time.UTC), 0},
		{"next day", date(2024, time.July, 10), date(2024, time.July, 9), 1},
		{"year boundary", date(2024, time.January, 1), date(2023, time.December, 31), 1},
		{"leap february", date(2024, time.March, 1), date(2024, time.February, 28), 2},
		{"negative", date(2024, time.July, 9), date(2024, time.July, 12), -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayDiff(tt.a, tt.b); got != tt.want {
				t.Errorf("DayDiff(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{7, 7, 1},
		{6, 7, 0},
		{0, 7, 0},
		{-7, 7, -1},
		{-1, 7, -1}, // floor, not truncation toward zero
		{-8, 7, -2},
	}

	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
