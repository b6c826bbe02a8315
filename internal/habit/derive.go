package habit

import (
	"time"

	"github.com/mkarner/cadence/internal/models"
)

// Derived holds every field recomputed from a habit's log. None of it is
// stored independently; a replay of the log is the single source of truth.
type Derived struct {
	// Streak is the current consecutive run of successes.
	Streak int
	// Streaks lists every streak that ever ended, with the in-progress
	// streak (possibly zero) appended last. Never empty after a replay.
	Streaks       []int
	LongestStreak int
	FailCount     int
	LastSuccess   *time.Time
	LastFail      *time.Time
	LastRestart   *time.Time
}

// Replay walks the log in ascending timestamp order and recomputes the
// derived fields: successes extend the streak, failures and restarts end it
// (failures also count), and the last timestamp of each kind is kept.
func Replay(log []models.Event) Derived {
	var d Derived
	for i := range log {
		ev := &log[i]
		switch ev.Kind {
		case models.EventSuccess:
			d.Streak++
			t := ev.Time
			d.LastSuccess = &t
		case models.EventRestart:
			d.Streaks = append(d.Streaks, d.Streak)
			d.Streak = 0
			t := ev.Time
			d.LastRestart = &t
		case models.EventFailure:
			d.Streaks = append(d.Streaks, d.Streak)
			d.Streak = 0
			d.FailCount++
			t := ev.Time
			d.LastFail = &t
		}
	}
	// the in-progress streak is always recorded, even when zero
	d.Streaks = append(d.Streaks, d.Streak)

	for _, s := range d.Streaks {
		if s > d.LongestStreak {
			d.LongestStreak = s
		}
	}
	return d
}
