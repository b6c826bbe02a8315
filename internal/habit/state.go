package habit

import (
	"time"

	"github.com/google/uuid"

	"github.com/mkarner/cadence/internal/models"
)

// State represents a habit's readiness relative to "now"
type State string

const (
	// StateReady means exactly one period has elapsed since the last
	// check-off or restart: the habit is due.
	StateReady State = "ready"
	// StateUnready means the habit was already acted on within the
	// current period.
	StateUnready State = "unready"
	// StateBroken means at least one full period was skipped.
	StateBroken State = "broken"
)

// Evaluate computes the readiness state at the given instant without
// mutating the habit. When the habit turns out to be broken it also returns
// the Failure event that records the break; the caller appends it to the
// log. The event is nil when the habit is not broken, or when the log's
// last entry already is a Failure, so repeated evaluations never record the
// same break twice.
func (h *Habit) Evaluate(now time.Time) (State, *models.Event) {
	compare := h.StartDate
	if h.LastSuccess != nil || h.LastRestart != nil {
		compare = laterOf(h.LastSuccess, h.LastRestart)
	}

	var differential int
	switch h.Period {
	case models.PeriodDaily:
		differential = DayDiff(now, compare)
	case models.PeriodWeekly:
		differential = WeekDiff(now, compare)
	case models.PeriodMonthly:
		differential = MonthDiff(now, compare)
	}

	switch {
	case differential == 1:
		return StateReady, nil
	case differential < 1:
		return StateUnready, nil
	}

	if n := len(h.Log); n > 0 && h.Log[n-1].Kind == models.EventFailure {
		return StateBroken, nil
	}
	return StateBroken, &models.Event{
		ID:        uuid.New().String(),
		HabitName: h.Name,
		Time:      now,
		Kind:      models.EventFailure,
	}
}

// laterOf picks the more recent of two optional timestamps; at least one
// must be non-nil.
func laterOf(a, b *time.Time) time.Time {
	switch {
	case a == nil:
		return *b
	case b == nil:
		return *a
	case a.Before(*b):
		return *b
	}
	return *a
}
