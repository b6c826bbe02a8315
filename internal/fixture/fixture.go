// Package fixture builds deterministic sample habits with four weeks of
// history relative to an injected clock. The seed command loads them into
// storage; analytics tests replay them directly.
package fixture

import (
	"time"

	"github.com/google/uuid"

	"github.com/mkarner/cadence/internal/habit"
	"github.com/mkarner/cadence/internal/models"
)

// Seed pairs a habit identity with a prebuilt event log.
type Seed struct {
	Record models.HabitRecord
	Log    []models.Event
}

// Sample returns five example habits relative to now: an unbroken daily
// walk, a weekly run broken once and restarted, a daily reading habit
// broken mid-way and again by now, a monthly tuition payment, and an
// unbroken weekly meditation.
func Sample(now time.Time) []Seed {
	start := habit.Midnight(now.AddDate(0, 0, -28))

	walk := Seed{
		Record: models.HabitRecord{
			Name:      "Take a walk",
			Period:    models.PeriodDaily,
			StartDate: start,
			CreatedAt: start,
		},
	}
	for i := 27; i >= 1; i-- {
		walk.Log = append(walk.Log, event("Take a walk", now.AddDate(0, 0, -i), models.EventSuccess))
	}

	run := Seed{
		Record: models.HabitRecord{
			Name:      "Run",
			Period:    models.PeriodWeekly,
			StartDate: start,
			CreatedAt: start,
		},
		Log: []models.Event{
			event("Run", start.AddDate(0, 0, 7), models.EventSuccess),
			event("Run", start.AddDate(0, 0, 14), models.EventSuccess),
			event("Run", start.AddDate(0, 0, 21), models.EventFailure),
			event("Run", start.AddDate(0, 0, 21), models.EventRestart),
		},
	}

	read := Seed{
		Record: models.HabitRecord{
			Name:      "Read for 15 minutes",
			Period:    models.PeriodDaily,
			StartDate: start,
			CreatedAt: start,
		},
	}
	for i := 1; i <= 8; i++ {
		read.Log = append(read.Log, event("Read for 15 minutes", start.AddDate(0, 0, i), models.EventSuccess))
	}
	read.Log = append(read.Log,
		event("Read for 15 minutes", start.AddDate(0, 0, 13), models.EventFailure),
		event("Read for 15 minutes", start.AddDate(0, 0, 13), models.EventRestart),
	)
	for i := 14; i <= 26; i++ {
		read.Log = append(read.Log, event("Read for 15 minutes", start.AddDate(0, 0, i), models.EventSuccess))
	}

	tuitionStart := habit.Midnight(now.AddDate(0, 0, -31))
	tuition := Seed{
		Record: models.HabitRecord{
			Name:      "Pay tuition",
			Period:    models.PeriodMonthly,
			StartDate: tuitionStart,
			CreatedAt: tuitionStart,
		},
		Log: []models.Event{
			event("Pay tuition", tuitionStart, models.EventSuccess),
		},
	}

	meditate := Seed{
		Record: models.HabitRecord{
			Name:      "Meditate",
			Period:    models.PeriodWeekly,
			StartDate: start,
			CreatedAt: start,
		},
	}
	for i := 0; i <= 21; i += 7 {
		meditate.Log = append(meditate.Log, event("Meditate", start.AddDate(0, 0, i), models.EventSuccess))
	}

	return []Seed{walk, run, read, tuition, meditate}
}

func event(name string, at time.Time, kind models.EventKind) models.Event {
	return models.Event{
		ID:        uuid.New().String(),
		HabitName: name,
		Time:      at,
		Kind:      kind,
	}
}
