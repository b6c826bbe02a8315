// Package analytics provides pure ranking and grouping queries over
// collections of habits. Nothing here mutates its input; callers get fresh
// slices back.
package analytics

import (
	"sort"

	"github.com/mkarner/cadence/internal/habit"
	"github.com/mkarner/cadence/internal/models"
)

// Best returns the habits sorted descending by current streak. The sort is
// stable, so habits with equal streaks keep their input order.
func Best(habits []*habit.Habit) []*habit.Habit {
	out := append([]*habit.Habit(nil), habits...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Streak > out[j].Streak
	})
	return out
}

// Worst returns the habits sorted descending by the number of times they
// were broken.
func Worst(habits []*habit.Habit) []*habit.Habit {
	out := append([]*habit.Habit(nil), habits...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FailCount > out[j].FailCount
	})
	return out
}

// GroupByPeriod partitions habits into daily/weekly/monthly buckets, each
// sorted via Best. Every bucket is present in the result even when empty.
func GroupByPeriod(habits []*habit.Habit) map[models.Period][]*habit.Habit {
	buckets := map[models.Period][]*habit.Habit{
		models.PeriodDaily:   {},
		models.PeriodWeekly:  {},
		models.PeriodMonthly: {},
	}
	for _, h := range habits {
		buckets[h.Period] = append(buckets[h.Period], h)
	}
	for period, group := range buckets {
		buckets[period] = Best(group)
	}
	return buckets
}
