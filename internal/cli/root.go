package cli

import (
	"time"

	"github.com/mkarner/cadence/internal/backup"
	"github.com/mkarner/cadence/internal/habit"
	"github.com/mkarner/cadence/internal/logger"
	"github.com/mkarner/cadence/internal/models"
	"github.com/mkarner/cadence/internal/storage"
	"github.com/mkarner/cadence/internal/storage/sqlite"
)

type Context struct {
	Store storage.Provider
}

// PerformAutomaticBackup creates an automatic backup and silently handles
// errors. Backups are only supported for SQLite storage.
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Store.(*sqlite.Store); !ok {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// NewHabit validates and persists a brand-new habit with an empty log.
func (c *Context) NewHabit(name string, period models.Period, startDate, now time.Time) (*habit.Habit, error) {
	h, err := habit.New(name, period, startDate, nil, now)
	if err != nil {
		return nil, err
	}

	rec := h.Record()
	rec.CreatedAt = now
	if err := c.Store.AddHabit(rec); err != nil {
		return nil, err
	}
	if len(h.Log) > 0 {
		if err := c.Store.SaveLog(h.Name, h.Log); err != nil {
			return nil, err
		}
	}

	return h, nil
}

// LoadHabit reads a habit's record and log from the store and derives its
// current state. Evaluation may synthesize a Failure event when the habit
// turns out to be broken; the grown log is persisted immediately so the
// break is recorded even if the user takes no further action.
func (c *Context) LoadHabit(name string, now time.Time) (*habit.Habit, error) {
	rec, err := c.Store.GetHabit(name)
	if err != nil {
		return nil, err
	}

	events, err := c.Store.GetLog(name)
	if err != nil {
		return nil, err
	}

	h, err := habit.New(rec.Name, rec.Period, rec.StartDate, events, now)
	if err != nil {
		return nil, err
	}

	if len(h.Log) > len(events) {
		if err := c.Store.SaveLog(name, h.Log); err != nil {
			return nil, err
		}
	}

	return h, nil
}

// LoadAllHabits derives every stored habit at the given instant, in
// creation order.
func (c *Context) LoadAllHabits(now time.Time) ([]*habit.Habit, error) {
	records, err := c.Store.GetAllHabits()
	if err != nil {
		return nil, err
	}

	habits := make([]*habit.Habit, 0, len(records))
	for _, rec := range records {
		h, err := c.LoadHabit(rec.Name, now)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}

	return habits, nil
}

// SaveHabit persists a habit's log after a mutation.
func (c *Context) SaveHabit(h *habit.Habit) error {
	return c.Store.SaveLog(h.Name, h.Log)
}

func periodUnit(p models.Period) string {
	switch p {
	case models.PeriodDaily:
		return "day"
	case models.PeriodWeekly:
		return "week"
	case models.PeriodMonthly:
		return "month"
	default:
		return "period"
	}
}

// StateBadge returns a short display marker for a habit state.
func StateBadge(s habit.State) string {
	switch s {
	case habit.StateReady:
		return "●"
	case habit.StateUnready:
		return "✓"
	case habit.StateBroken:
		return "✗"
	default:
		return "?"
	}
}

// EventMarker returns a display marker for a log event kind.
func EventMarker(k models.EventKind) string {
	switch k {
	case models.EventSuccess:
		return "✅"
	case models.EventFailure:
		return "❌"
	case models.EventRestart:
		return "🔄"
	default:
		return "?"
	}
}
