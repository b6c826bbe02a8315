package habit

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/mkarner/cadence/internal/constants"
	"github.com/mkarner/cadence/internal/models"
)

// Validation sentinels, surfaced at construction time. Derivation and
// state evaluation are total and never return errors.
var (
	ErrNameEmpty     = errors.New("habit name must not be empty")
	ErrNameTooLong   = fmt.Errorf("habit name must be %d characters or fewer", constants.MaxHabitNameLen)
	ErrInvalidPeriod = errors.New("habit period must be daily, weekly, or monthly")
)

// Habit couples a habit's identity (name, periodicity, start date) with its
// event log and the state derived from it. Every mutation appends to the
// log and rederives; nothing derived is ever written directly.
//
// The engine is deliberately permissive: CheckOff and Restart succeed
// regardless of the current state. Gating (for example only allowing a
// check-off while Ready) belongs to the presentation layer.
type Habit struct {
	Name      string
	Period    models.Period
	StartDate time.Time
	Log       []models.Event

	Derived
	State State
}

// New builds a fully derived Habit from an identity and an optional initial
// log at the given instant. The initial log is copied and sorted ascending
// by timestamp before replay; evaluation may append one synthesized Failure
// to the copy when the habit turns out to be broken (callers can detect
// this by comparing log lengths).
func New(name string, period models.Period, startDate time.Time, log []models.Event, now time.Time) (*Habit, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameEmpty
	}
	if utf8.RuneCountInString(name) > constants.MaxHabitNameLen {
		return nil, ErrNameTooLong
	}
	if !period.Valid() {
		return nil, ErrInvalidPeriod
	}

	h := &Habit{
		Name:      name,
		Period:    period,
		StartDate: startDate,
		Log:       append([]models.Event(nil), log...),
	}
	models.SortEvents(h.Log)
	h.refresh(now)
	return h, nil
}

// CheckOff appends a Success event at now and rederives.
func (h *Habit) CheckOff(now time.Time) {
	h.append(models.EventSuccess, now)
}

// Restart appends a Restart event at now, ending the current streak, and
// rederives.
func (h *Habit) Restart(now time.Time) {
	h.append(models.EventRestart, now)
}

// Record returns the persisted identity of the habit.
func (h *Habit) Record() models.HabitRecord {
	return models.HabitRecord{
		Name:      h.Name,
		Period:    h.Period,
		StartDate: h.StartDate,
	}
}

func (h *Habit) append(kind models.EventKind, now time.Time) {
	// runtime appends carry "now" and are therefore monotonic; no re-sort
	h.Log = append(h.Log, models.Event{
		ID:        uuid.New().String(),
		HabitName: h.Name,
		Time:      now,
		Kind:      kind,
	})
	h.refresh(now)
}

// refresh replays the log, evaluates state, and appends the synthesized
// Failure (replaying once more) when a break was detected.
func (h *Habit) refresh(now time.Time) {
	h.Derived = Replay(h.Log)
	state, failure := h.Evaluate(now)
	if failure != nil {
		h.Log = append(h.Log, *failure)
		h.Derived = Replay(h.Log)
	}
	h.State = state
}
