package models

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// EventKind represents the kind of a log event
type EventKind string

// Period represents the recurrence unit of a habit
type Period string

const (
	EventSuccess EventKind = "success"
	EventFailure EventKind = "failure"
	EventRestart EventKind = "restart"

	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// Event is a single immutable entry in a habit's log: the habit it belongs
// to, when it happened, and what happened. The ID preserves identity across
// persistence round-trips so that events sharing a timestamp keep their
// insertion order.
type Event struct {
	ID        string    `json:"id"`
	HabitName string    `json:"habit_name"`
	Time      time.Time `json:"time"`
	Kind      EventKind `json:"kind"`
}

// Valid reports whether the kind is one of the three recognized values.
func (k EventKind) Valid() bool {
	switch k {
	case EventSuccess, EventFailure, EventRestart:
		return true
	}
	return false
}

// Valid reports whether the period is one of the three recognized values.
func (p Period) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	}
	return false
}

// ParsePeriod parses a period string case-insensitively.
func ParsePeriod(s string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("invalid period %q (expected daily, weekly, or monthly)", s)
	}
	return p, nil
}

// ParseEventKind parses an event kind string case-insensitively.
func ParseEventKind(s string) (EventKind, error) {
	k := EventKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("invalid event kind %q (expected success, failure, or restart)", s)
	}
	return k, nil
}

// SortEvents orders a log ascending by timestamp. The sort is stable so
// that events with equal timestamps keep their insertion order.
func SortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time.Before(events[j].Time)
	})
}
