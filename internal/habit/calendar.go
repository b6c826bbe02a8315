package habit

import "time"

// Midnight returns the calendar date of t at midnight UTC. Anchoring day
// arithmetic to UTC midnights keeps subtraction exact in whole days across
// DST transitions.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayDiff returns the number of calendar days from b's date to a's date.
// Negative when a is before b.
func DayDiff(a, b time.Time) int {
	return int(Midnight(a).Sub(Midnight(b)) / (24 * time.Hour))
}

// MonthDiff returns the number of calendar-month boundaries crossed from b
// to a. Both timestamps are normalized to the first of their month, and the
// year difference is carried into the count, so July 2023 to July 2024 is
// 12, not 0.
func MonthDiff(a, b time.Time) int {
	return (a.Year()-b.Year())*12 + int(a.Month()) - int(b.Month())
}

// WeekDiff returns the number of calendar weeks from b to a. Both
// timestamps are normalized to the Monday of their week and the day
// difference is floor-divided by seven, so week counting stays correct
// across year boundaries where ISO week numbers wrap.
func WeekDiff(a, b time.Time) int {
	return floorDiv(DayDiff(mondayOf(a), mondayOf(b)), 7)
}

func mondayOf(t time.Time) time.Time {
	d := Midnight(t)
	// time.Weekday counts from Sunday; shift so Monday is 0
	return d.AddDate(0, 0, -((int(d.Weekday()) + 6) % 7))
}

// floorDiv divides rounding toward negative infinity, not toward zero.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
